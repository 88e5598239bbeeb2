// Package domain contains the core records of the caregiving client.
// This file defines chat messages and their ordering rules.
// Messages are immutable; ids are assigned by the backend, never locally.
package domain

import "time"

// MaxContentLength bounds the size of a single chat message, in runes.
const MaxContentLength = 500

// Message represents one immutable chat utterance.
type Message struct {
	ID             int64      `json:"id"`
	ConversationID int64      `json:"conversation_id"`
	SenderUserID   int64      `json:"sender_user_id"`
	SenderName     string     `json:"sender_name,omitempty"`
	Content        string     `json:"content"`
	SentAt         time.Time  `json:"sent_at"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}

// Before reports whether m sorts ahead of other in a transcript.
// Ordering is by sent timestamp, ties broken by the server-assigned id.
func (m Message) Before(other Message) bool {
	if m.SentAt.Equal(other.SentAt) {
		return m.ID < other.ID
	}
	return m.SentAt.Before(other.SentAt)
}
