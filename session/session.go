// Package session is the view-model behind a chat screen: it resolves
// the conversation, owns the live channel and the transcript, and routes
// every send through exactly one delivery path.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"carelink/contract"
	"carelink/domain"
	"carelink/errors"
	"carelink/projection"
)

// ChannelFactory builds the live channel once the conversation id is
// known. Injected so the session can be tested without a socket.
type ChannelFactory func(conversationID int64, sink contract.MessageSink) contract.LiveChannel

// Session ties one screen instance to one conversation. It is never
// shared across conversations and never resumed after Close; a re-opened
// screen constructs a fresh Session.
type Session struct {
	id         uuid.UUID
	log        *slog.Logger
	chat       contract.ChatAPI
	newChannel ChannelFactory
	cache      contract.MessageCache // optional
	transcript *projection.Transcript

	conversation domain.Conversation
	channel      contract.LiveChannel
	started      bool
}

func New(log *slog.Logger, chat contract.ChatAPI, factory ChannelFactory,
	cache contract.MessageCache) *Session {
	return &Session{
		id:         uuid.New(),
		log:        log,
		chat:       chat,
		newChannel: factory,
		cache:      cache,
		transcript: projection.NewTranscript(),
	}
}

// Start bootstraps the session for the given principal: resolve the
// conversation, warm the transcript from the local cache, fetch history
// and open the live channel. History or connection failures degrade the
// session to fallback-only mode instead of failing the screen.
func (s *Session) Start(ctx context.Context, principal domain.User) error {
	conversation, err := s.resolveConversation(ctx, principal)
	if err != nil {
		return err
	}
	s.conversation = conversation
	s.started = true

	if s.cache != nil {
		s.warmFromCache()
		s.transcript.OnAppend(func(msg domain.Message) {
			if err := s.cache.Store(msg); err != nil {
				s.log.Warn("Message cache write failed",
					slog.Int64("message", msg.ID),
					slog.String("error", err.Error()))
			}
		})
	}

	history, err := s.chat.GetMessages(ctx, conversation.ID)
	if err != nil {
		s.log.Warn("History fetch failed, transcript may lag",
			slog.Int64("conversation", conversation.ID),
			slog.String("error", err.Error()))
	}
	for _, msg := range history {
		s.transcript.Append(msg)
	}

	s.channel = s.newChannel(conversation.ID, contract.MessageSinkFunc(
		func(_ context.Context, msg domain.Message) error {
			s.transcript.Append(msg)
			return nil
		}))
	s.channel.Connect(ctx)

	s.log.Info("Chat session started",
		slog.String("session", s.id.String()),
		slog.Int64("conversation", conversation.ID))
	return nil
}

// Send routes one user intent through exactly one delivery path: the
// live channel when it is open, otherwise the request/response fallback.
// Empty input is a silent no-op; only a fallback failure reaches the
// caller, since then the user has no other signal the message was lost.
func (s *Session) Send(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if !s.started {
		return errors.ErrSessionNotStarted
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxContentLength {
		return errors.ErrContentTooLong
	}

	if s.channel != nil && s.channel.IsOpen() {
		err := s.channel.Send(trimmed)
		if err == nil {
			// No optimistic echo: the message shows up when the server
			// fan-out loops it back through the inbound sink.
			return nil
		}
		s.log.Warn("Live send failed, using fallback",
			slog.String("session", s.id.String()),
			slog.String("error", err.Error()))
	}

	msg, err := s.chat.SendMessage(ctx, s.conversation.ID, trimmed)
	if err != nil {
		return fmt.Errorf("fallback send: %w", err)
	}
	s.transcript.Append(msg)
	return nil
}

// Transcript exposes the merged, ordered view for rendering.
func (s *Session) Transcript() *projection.Transcript {
	return s.transcript
}

// Conversation returns the resolved conversation; zero until Start.
func (s *Session) Conversation() domain.Conversation {
	return s.conversation
}

// Close tears the session down. Must be called when the screen goes
// away so a leaked connection cannot keep feeding a dead view. Safe to
// call multiple times.
func (s *Session) Close() {
	if s.channel != nil {
		s.channel.Disconnect()
	}
}

// resolveConversation implements the bootstrap rules. A senior gets the
// conversation tied to their own profile, created on demand at most once
// per bootstrap. Care-team members land on the conversation of the
// senior they follow, or the first listed when nothing narrows it down.
func (s *Session) resolveConversation(ctx context.Context, principal domain.User) (domain.Conversation, error) {
	conversations, err := s.chat.GetConversations(ctx)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("bootstrap: %w", err)
	}

	if principal.SeniorID != nil {
		seniorID := *principal.SeniorID
		if conversation, found := lo.Find(conversations, func(c domain.Conversation) bool {
			return c.SeniorID == seniorID
		}); found {
			return conversation, nil
		}
		created, err := s.chat.CreateConversation(ctx, domain.ConversationCreate{SeniorID: seniorID})
		if err != nil {
			return domain.Conversation{}, fmt.Errorf("bootstrap: %w", err)
		}
		return created, nil
	}

	if len(conversations) == 0 {
		return domain.Conversation{}, errors.ErrNoConversation
	}
	return conversations[0], nil
}

func (s *Session) warmFromCache() {
	cached, err := s.cache.List(s.conversation.ID)
	if err != nil {
		s.log.Warn("Message cache read failed",
			slog.Int64("conversation", s.conversation.ID),
			slog.String("error", err.Error()))
		return
	}
	for _, msg := range cached {
		s.transcript.Append(msg)
	}
}
