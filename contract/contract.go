//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"carelink/domain"
)

// TokenSource yields the current bearer token. An empty token with a nil
// error is a valid logged-out state, not a failure.
type TokenSource interface {
	AccessToken() (string, error)
}

// MessageSink receives every structurally valid chat message exactly once,
// in arrival order.
type MessageSink interface {
	Consume(ctx context.Context, msg domain.Message) error
}

// MessageSinkFunc adapts a plain function to the MessageSink interface.
type MessageSinkFunc func(ctx context.Context, msg domain.Message) error

func (f MessageSinkFunc) Consume(ctx context.Context, msg domain.Message) error {
	return f(ctx, msg)
}

// LiveChannel is the real-time leg of a conversation.
// Connect absorbs its own failures; Send must be called only while the
// channel reports itself open and never queues.
type LiveChannel interface {
	Connect(ctx context.Context)
	Send(text string) error
	Disconnect()
	IsOpen() bool
}

// ChatAPI is the request/response boundary of the chat backend.
type ChatAPI interface {
	GetConversations(ctx context.Context) ([]domain.Conversation, error)
	CreateConversation(ctx context.Context, payload domain.ConversationCreate) (domain.Conversation, error)
	GetMessages(ctx context.Context, conversationID int64) ([]domain.Message, error)
	SendMessage(ctx context.Context, conversationID int64, content string) (domain.Message, error)
}

// MessageCache persists messages locally so a transcript can be warm
// started before the network answers.
type MessageCache interface {
	Store(msg domain.Message) error
	List(conversationID int64) ([]domain.Message, error)
}
