package services

import (
	"context"
	"fmt"

	"carelink/api"
	"carelink/contract"
	"carelink/domain"
)

// ChatService is the request/response half of the chat feature: history,
// conversation lookup/creation and the fallback send path. The live half
// lives in the transport package.
type ChatService struct {
	api *api.Client
}

var _ contract.ChatAPI = (*ChatService)(nil)

func NewChatService(client *api.Client) *ChatService {
	return &ChatService{api: client}
}

func (s *ChatService) GetConversations(ctx context.Context) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	if err := s.api.Get(ctx, "/chat/conversations", &conversations); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return conversations, nil
}

func (s *ChatService) CreateConversation(ctx context.Context, payload domain.ConversationCreate) (domain.Conversation, error) {
	var conversation domain.Conversation
	if err := s.api.Post(ctx, "/chat/conversations", payload, &conversation); err != nil {
		return domain.Conversation{}, fmt.Errorf("create conversation: %w", err)
	}
	return conversation, nil
}

func (s *ChatService) GetMessages(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	var messages []domain.Message
	path := fmt.Sprintf("/chat/conversations/%d/messages", conversationID)
	if err := s.api.Get(ctx, path, &messages); err != nil {
		return nil, fmt.Errorf("message history: %w", err)
	}
	return messages, nil
}

func (s *ChatService) SendMessage(ctx context.Context, conversationID int64, content string) (domain.Message, error) {
	var message domain.Message
	path := fmt.Sprintf("/chat/conversations/%d/messages", conversationID)
	if err := s.api.Post(ctx, path, map[string]string{"content": content}, &message); err != nil {
		return domain.Message{}, fmt.Errorf("send message: %w", err)
	}
	return message, nil
}
