package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"carelink/domain"
	"carelink/repositories"
	"carelink/services"
	"carelink/session"
)

// commandSet groups the slash commands of the terminal screen.
type commandSet struct {
	ctx          context.Context
	session      *session.Session
	index        *repositories.SearchIndex
	meds         *services.MedicationsService
	appointments *services.AppointmentsService
	reminders    *services.RemindersService
	relations    *services.RelationsService
	seniors      *services.SeniorsService
	users        *services.UsersService
	stats        *services.StatsService
	reports      *services.ReportsService
}

// handle runs one slash command; it returns true when the user quits.
func (c commandSet) handle(line string) bool {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return false
	}
	seniorID := c.session.Conversation().SeniorID

	switch fields[0] {
	case "/quit", "/exit":
		return true
	case "/help":
		color.Cyan.Println("/history /search <terms> /meds /appointments /reminders /team /seniors /users /stats /report <monthly|weekly> /quit")
	case "/history":
		for _, msg := range c.session.Transcript().Messages() {
			printMessage(domain.User{}, msg)
		}
	case "/search":
		if c.index == nil {
			color.Yellow.Println("Search is disabled (BLUGE_FILEPATH not set).")
			return false
		}
		if len(fields) < 2 {
			color.Yellow.Println("Usage: /search <terms>")
			return false
		}
		terms := strings.Join(fields[1:], " ")
		hits, err := c.index.Search(c.ctx, c.session.Conversation().ID, terms, 10)
		if err != nil {
			color.Red.Printf("Search failed: %v\n", err)
			return false
		}
		for _, hit := range hits {
			color.Gray.Printf("#%d ", hit.MessageID)
			fmt.Println(hit.Content)
		}
	case "/meds":
		medications, err := c.meds.GetMedications(c.ctx, seniorID)
		if err != nil {
			color.Red.Printf("Could not load medications: %v\n", err)
			return false
		}
		renderMedications(medications)
	case "/appointments":
		appointments, err := c.appointments.GetAppointments(c.ctx, seniorID)
		if err != nil {
			color.Red.Printf("Could not load appointments: %v\n", err)
			return false
		}
		renderAppointments(appointments)
	case "/reminders":
		reminders, err := c.reminders.GetReminders(c.ctx, seniorID)
		if err != nil {
			color.Red.Printf("Could not load reminders: %v\n", err)
			return false
		}
		renderReminders(reminders)
	case "/team":
		team, err := c.relations.GetTeam(c.ctx, seniorID)
		if err != nil {
			color.Red.Printf("Could not load care team: %v\n", err)
			return false
		}
		renderTeam(team)
	case "/seniors":
		seniors, err := c.seniors.GetSeniors(c.ctx)
		if err != nil {
			color.Red.Printf("Could not load seniors: %v\n", err)
			return false
		}
		renderSeniors(seniors)
	case "/users":
		users, err := c.users.GetUsers(c.ctx)
		if err != nil {
			color.Red.Printf("Could not load users: %v\n", err)
			return false
		}
		renderUsers(users)
	case "/stats":
		dashboard, err := c.stats.GetDashboard(c.ctx, &seniorID)
		if err != nil {
			color.Red.Printf("Could not load dashboard: %v\n", err)
			return false
		}
		quick, err := c.reports.GetQuickStats(c.ctx, seniorID, 7)
		if err != nil {
			color.Red.Printf("Could not load quick stats: %v\n", err)
			return false
		}
		renderStats(dashboard, quick)
	case "/report":
		reportType := "weekly"
		if len(fields) > 1 {
			reportType = fields[1]
		}
		report, err := c.reports.CreateReport(c.ctx, seniorID, reportPeriod(reportType))
		if err != nil {
			color.Red.Printf("Could not generate report: %v\n", err)
			return false
		}
		color.Green.Printf("Report %d (%s) generated, covering %s to %s.\n",
			report.ID, report.ReportType, report.StartDate, report.EndDate)
	default:
		color.Yellow.Printf("Unknown command %s (try /help)\n", fields[0])
	}
	return false
}

// printMessage renders one transcript line; the viewer's own messages
// are highlighted.
func printMessage(viewer domain.User, msg domain.Message) {
	sender := msg.SenderName
	if sender == "" {
		sender = "user " + strconv.FormatInt(msg.SenderUserID, 10)
	}
	stamp := msg.SentAt.Local().Format(time.TimeOnly)
	if viewer.ID != 0 && msg.SenderUserID == viewer.ID {
		color.Green.Printf("[%s] %s: ", stamp, sender)
	} else {
		color.Cyan.Printf("[%s] %s: ", stamp, sender)
	}
	fmt.Println(msg.Content)
}

func renderMedications(medications []domain.Medication) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Dose", "Unit", "Notes"})
	for _, med := range medications {
		table.Append([]string{
			strconv.FormatInt(med.ID, 10),
			med.Name,
			med.Dose,
			med.Unit,
			med.Notes,
		})
	}
	table.Render()
}

func renderAppointments(appointments []domain.Appointment) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Starts", "Location", "Reason", "Status"})
	for _, appointment := range appointments {
		table.Append([]string{
			strconv.FormatInt(appointment.ID, 10),
			appointment.StartsAt.Local().Format(time.RFC822),
			appointment.Location,
			appointment.Reason,
			appointment.Status,
		})
	}
	table.Render()
}

func renderReminders(reminders []domain.Reminder) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Title", "Scheduled", "Status"})
	for _, reminder := range reminders {
		table.Append([]string{
			strconv.FormatInt(reminder.ID, 10),
			reminder.Title,
			reminder.ScheduledAt.Local().Format(time.RFC822),
			reminder.Status,
		})
	}
	table.Render()
}

// reportPeriod maps a report type to its date range ending today.
func reportPeriod(reportType string) domain.ReportCreate {
	end := time.Now()
	start := end.AddDate(0, 0, -7)
	if reportType == "monthly" {
		start = end.AddDate(0, -1, 0)
	}
	return domain.ReportCreate{
		ReportType: reportType,
		StartDate:  start.Format(time.DateOnly),
		EndDate:    end.Format(time.DateOnly),
	}
}

func renderStats(dashboard domain.DashboardStats, quick domain.QuickStats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Medications", "Upcoming appts", "Pending reminders", "Adherence (7d)"})
	table.Append([]string{
		strconv.Itoa(dashboard.TotalMedications),
		strconv.Itoa(dashboard.UpcomingAppointments),
		strconv.Itoa(dashboard.PendingReminders),
		fmt.Sprintf("%.0f%%", quick.MedicationAdherence*100),
	})
	table.Render()
	for _, activity := range dashboard.RecentActivities {
		color.Gray.Printf("[%s] ", activity.Timestamp.Local().Format(time.TimeOnly))
		fmt.Printf("%s: %s\n", activity.Type, activity.Description)
	}
}

func renderSeniors(seniors []domain.Senior) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Conditions", "Emergency contact"})
	for _, senior := range seniors {
		table.Append([]string{
			strconv.FormatInt(senior.ID, 10),
			senior.FullName,
			senior.Conditions,
			senior.EmergencyContactName,
		})
	}
	table.Render()
}

func renderUsers(users []domain.User) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Email", "Role"})
	for _, user := range users {
		table.Append([]string{
			strconv.FormatInt(user.ID, 10),
			user.FullName,
			user.Email,
			user.Role,
		})
	}
	table.Render()
}

func renderTeam(team []domain.TeamMember) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User", "Email", "Role"})
	for _, member := range team {
		table.Append([]string{member.UserName, member.UserEmail, member.UserRole})
	}
	table.Render()
}
