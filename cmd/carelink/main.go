package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"carelink/api"
	"carelink/auth"
	"carelink/contract"
	"carelink/domain"
	"carelink/internal"
	"carelink/moderation"
	"carelink/repositories"
	"carelink/services"
	"carelink/session"
	"carelink/transport"
)

// Exit codes for the terminal client.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carelink: %v\n", err)
	}
	os.Exit(code)
}

// run wires the whole client: config, credential store, REST services,
// optional local stores and one chat session, then drives the read loop
// until Ctrl+C or EOF.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Credential store and REST layer.
	store := auth.NewTokenStore(config.TokenFilepath)
	client := api.NewClient(log, config.APIBaseURL, config.HTTPTimeout, store)
	authService := services.NewAuthService(client, store)
	chatService := services.NewChatService(client)
	medsService := services.NewMedicationsService(client)
	appointmentsService := services.NewAppointmentsService(client)
	remindersService := services.NewRemindersService(client)
	relationsService := services.NewRelationsService(client)
	seniorsService := services.NewSeniorsService(client)
	usersService := services.NewUsersService(client)
	statsService := services.NewStatsService(client)
	reportsService := services.NewReportsService(client)

	if err := ensureLogin(ctx, config, store, authService); err != nil {
		return exitRuntime, err
	}
	user, err := authService.CurrentUser(ctx)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not resolve current user: %w", err)
	}
	color.Green.Printf("Signed in as %s (%s)\n", user.FullName, user.Role)

	// 4. Optional local stores.
	var cache contract.MessageCache
	if config.BadgerFilepath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return exitRuntime, fmt.Errorf("failed to open message cache: %w", err)
		}
		defer func() {
			log.Info("Closing message cache...")
			_ = db.Close()
		}()
		cache = repositories.NewMessageCache(db, log)
	}

	var index *repositories.SearchIndex
	if config.BlugeFilepath != "" {
		writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
		if err != nil {
			return exitRuntime, fmt.Errorf("failed to open search index: %w", err)
		}
		defer func() {
			log.Info("Closing search index...")
			_ = writer.Close()
		}()
		index = repositories.NewSearchIndex(writer, log)
	}

	var censor *moderation.Moderator
	if config.CensoredWords != "" {
		replacement, err := internal.CharacterRune(config.CensoredChar)
		if err != nil {
			return exitConfig, err
		}
		censor, err = moderation.NewModerator(strings.Split(config.CensoredWords, ","), replacement)
		if err != nil {
			return exitRuntime, fmt.Errorf("moderator: %w", err)
		}
	}

	// 5. Chat session: live channel factory plus view wiring.
	retry := transport.RetryPolicy{
		MaxAttempts: config.ReconnectMaxAttempts,
		Step:        config.ReconnectStep,
	}
	factory := func(conversationID int64, sink contract.MessageSink) contract.LiveChannel {
		return transport.NewChannel(log, config.WSBaseURL, conversationID,
			store, sink, retry, config.HandshakeTimeout)
	}

	chat := session.New(log, chatService, factory, cache)
	chat.Transcript().OnAppend(func(msg domain.Message) {
		printMessage(user, msg)
		if index != nil {
			if err := index.Index(msg); err != nil {
				log.Warn(fmt.Sprintf("Search indexing failed for message %d: %v", msg.ID, err))
			}
		}
	})

	if err := chat.Start(ctx, user); err != nil {
		return exitRuntime, fmt.Errorf("could not start chat session: %w", err)
	}
	defer chat.Close()

	color.Cyan.Printf("Care-team chat for conversation %d. Type /help for commands, Ctrl+C to quit.\n",
		chat.Conversation().ID)

	commands := commandSet{
		ctx:          ctx,
		session:      chat,
		index:        index,
		meds:         medsService,
		appointments: appointmentsService,
		reminders:    remindersService,
		relations:    relationsService,
		seniors:      seniorsService,
		users:        usersService,
		stats:        statsService,
		reports:      reportsService,
	}

	// 6. Input loop. Stdin reads happen on their own goroutine so a
	// signal still interrupts an idle prompt.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			if strings.HasPrefix(strings.TrimSpace(line), "/") {
				if quit := commands.handle(line); quit {
					return exitOK, nil
				}
				continue
			}
			text := line
			if censor != nil {
				var masked bool
				if text, masked = censor.Censor(text); masked {
					color.Yellow.Println("Some words were masked before sending.")
				}
			}
			if err := chat.Send(ctx, text); err != nil {
				color.Red.Printf("Message not delivered: %v\n", err)
			}
		}
	}
}

// ensureLogin makes sure a usable credential exists: a live access
// token, a refresh token the HTTP layer can trade in, or a fresh login
// from the configured credentials.
func ensureLogin(ctx context.Context, config internal.Config,
	store *auth.TokenStore, authService *services.AuthService) error {
	creds, err := store.Load()
	if err != nil {
		return err
	}
	if creds.AccessToken != "" && !auth.IsExpired(creds.AccessToken) {
		return nil
	}
	if creds.RefreshToken != "" {
		// The API client refreshes on the first 401.
		return nil
	}
	if config.Email == "" || config.Password == "" {
		return fmt.Errorf("not signed in; set CARELINK_EMAIL and CARELINK_PASSWORD")
	}
	return authService.Login(ctx, domain.LoginRequest{
		Email:    config.Email,
		Password: config.Password,
	})
}
