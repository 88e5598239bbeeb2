package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"carelink/contract"
	"carelink/domain"
	"carelink/errors"
	"carelink/mocks"
)

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelError)
}

func seniorPrincipal(seniorID int64) domain.User {
	return domain.User{ID: 7, SeniorID: &seniorID}
}

func caregiverPrincipal() domain.User {
	return domain.User{ID: 8}
}

func conversationFor(id, seniorID int64) domain.Conversation {
	return domain.Conversation{ID: id, SeniorID: seniorID, Status: "active"}
}

func liveMessage(id int64, content string) domain.Message {
	return domain.Message{
		ID:             id,
		ConversationID: 1,
		SenderUserID:   7,
		Content:        content,
		SentAt:         time.Date(2025, 6, 1, 10, 0, int(id), 0, time.UTC),
	}
}

// startedSession boots a session against a single-conversation backend
// and hands back the channel mock for per-test expectations.
func startedSession(t *testing.T, ctrl *gomock.Controller) (*Session, *mocks.MockChatAPI, *mocks.MockLiveChannel) {
	t.Helper()
	chat := mocks.NewMockChatAPI(ctrl)
	channel := mocks.NewMockLiveChannel(ctrl)

	chat.EXPECT().GetConversations(gomock.Any()).
		Return([]domain.Conversation{conversationFor(1, 3)}, nil)
	chat.EXPECT().GetMessages(gomock.Any(), int64(1)).
		Return(nil, nil)
	channel.EXPECT().Connect(gomock.Any())

	s := New(testLogger(), chat, func(int64, contract.MessageSink) contract.LiveChannel {
		return channel
	}, nil)
	require.NoError(t, s.Start(context.Background(), caregiverPrincipal()))
	return s, chat, channel
}

func TestSession_Start_Senior_Finds_Own_Conversation(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockChatAPI(ctrl)
	channel := mocks.NewMockLiveChannel(ctrl)

	chat.EXPECT().GetConversations(gomock.Any()).Return([]domain.Conversation{
		conversationFor(10, 1),
		conversationFor(11, 3),
	}, nil)
	chat.EXPECT().GetMessages(gomock.Any(), int64(11)).Return(nil, nil)

	var channelConversation int64
	channel.EXPECT().Connect(gomock.Any())
	s := New(testLogger(), chat, func(conversationID int64, _ contract.MessageSink) contract.LiveChannel {
		channelConversation = conversationID
		return channel
	}, nil)

	req.NoError(s.Start(context.Background(), seniorPrincipal(3)))
	req.Equal(int64(11), s.Conversation().ID)
	req.Equal(int64(11), channelConversation)
}

func TestSession_Start_Senior_Creates_Conversation_Once(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockChatAPI(ctrl)
	channel := mocks.NewMockLiveChannel(ctrl)

	chat.EXPECT().GetConversations(gomock.Any()).Return(nil, nil)
	chat.EXPECT().CreateConversation(gomock.Any(), domain.ConversationCreate{SeniorID: 3}).
		Times(1).
		Return(conversationFor(20, 3), nil)
	chat.EXPECT().GetMessages(gomock.Any(), int64(20)).Return(nil, nil)
	channel.EXPECT().Connect(gomock.Any())

	s := New(testLogger(), chat, func(int64, contract.MessageSink) contract.LiveChannel {
		return channel
	}, nil)

	req.NoError(s.Start(context.Background(), seniorPrincipal(3)))
	req.Equal(int64(20), s.Conversation().ID)
}

func TestSession_Start_Caregiver_Picks_First_Conversation(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockChatAPI(ctrl)
	channel := mocks.NewMockLiveChannel(ctrl)

	chat.EXPECT().GetConversations(gomock.Any()).Return([]domain.Conversation{
		conversationFor(30, 5),
		conversationFor(31, 6),
	}, nil)
	chat.EXPECT().GetMessages(gomock.Any(), int64(30)).Return(nil, nil)
	channel.EXPECT().Connect(gomock.Any())

	s := New(testLogger(), chat, func(int64, contract.MessageSink) contract.LiveChannel {
		return channel
	}, nil)

	req.NoError(s.Start(context.Background(), caregiverPrincipal()))
	req.Equal(int64(30), s.Conversation().ID)
}

func TestSession_Start_Caregiver_Without_Conversation_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockChatAPI(ctrl)

	chat.EXPECT().GetConversations(gomock.Any()).Return(nil, nil)

	s := New(testLogger(), chat, func(int64, contract.MessageSink) contract.LiveChannel {
		t.Fatal("no channel may be built without a conversation")
		return nil
	}, nil)

	err := s.Start(context.Background(), caregiverPrincipal())
	req.ErrorIs(err, errors.ErrNoConversation)
}

func TestSession_Start_Degrades_When_History_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockChatAPI(ctrl)
	channel := mocks.NewMockLiveChannel(ctrl)

	chat.EXPECT().GetConversations(gomock.Any()).
		Return([]domain.Conversation{conversationFor(1, 3)}, nil)
	chat.EXPECT().GetMessages(gomock.Any(), int64(1)).
		Return(nil, fmt.Errorf("history endpoint down"))
	channel.EXPECT().Connect(gomock.Any())

	s := New(testLogger(), chat, func(int64, contract.MessageSink) contract.LiveChannel {
		return channel
	}, nil)

	// A dead history endpoint must not block the screen.
	req.NoError(s.Start(context.Background(), caregiverPrincipal()))
	req.Equal(0, s.Transcript().Len())
}

func TestSession_Start_Merges_History_Into_Transcript(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockChatAPI(ctrl)
	channel := mocks.NewMockLiveChannel(ctrl)

	chat.EXPECT().GetConversations(gomock.Any()).
		Return([]domain.Conversation{conversationFor(1, 3)}, nil)
	chat.EXPECT().GetMessages(gomock.Any(), int64(1)).
		Return([]domain.Message{liveMessage(2, "second"), liveMessage(1, "first")}, nil)
	channel.EXPECT().Connect(gomock.Any())

	s := New(testLogger(), chat, func(int64, contract.MessageSink) contract.LiveChannel {
		return channel
	}, nil)

	req.NoError(s.Start(context.Background(), caregiverPrincipal()))
	ordered := s.Transcript().Messages()
	req.Len(ordered, 2)
	req.Equal(int64(1), ordered[0].ID)
	req.Equal(int64(2), ordered[1].ID)
}

func TestSession_Live_Push_Reaches_Transcript(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockChatAPI(ctrl)
	channel := mocks.NewMockLiveChannel(ctrl)

	chat.EXPECT().GetConversations(gomock.Any()).
		Return([]domain.Conversation{conversationFor(1, 3)}, nil)
	chat.EXPECT().GetMessages(gomock.Any(), int64(1)).Return(nil, nil)
	channel.EXPECT().Connect(gomock.Any())

	var sink contract.MessageSink
	s := New(testLogger(), chat, func(_ int64, channelSink contract.MessageSink) contract.LiveChannel {
		sink = channelSink
		return channel
	}, nil)
	req.NoError(s.Start(context.Background(), caregiverPrincipal()))

	req.NoError(sink.Consume(context.Background(), liveMessage(5, "incoming")))
	req.NoError(sink.Consume(context.Background(), liveMessage(5, "incoming")))

	req.Equal(1, s.Transcript().Len())
	last, ok := s.Transcript().Last()
	req.True(ok)
	req.Equal("incoming", last.Content)
}

func TestSession_Send_Empty_Input_Is_A_NoOp(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	s, _, _ := startedSession(t, ctrl)

	// No Send or SendMessage expectation: any network call fails the test.
	req.NoError(s.Send(context.Background(), ""))
	req.NoError(s.Send(context.Background(), "   \t  \n"))
	req.Equal(0, s.Transcript().Len())
}

func TestSession_Send_Before_Start_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockChatAPI(ctrl)

	s := New(testLogger(), chat, func(int64, contract.MessageSink) contract.LiveChannel {
		return nil
	}, nil)

	err := s.Send(context.Background(), "hello")
	req.ErrorIs(err, errors.ErrSessionNotStarted)
}

func TestSession_Send_Rejects_Oversized_Content(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	s, _, _ := startedSession(t, ctrl)

	err := s.Send(context.Background(), strings.Repeat("é", domain.MaxContentLength+1))
	req.ErrorIs(err, errors.ErrContentTooLong)

	// Rune count, not byte count, decides the limit.
	channel := mocksChannelFor(s)
	channel.EXPECT().IsOpen().Return(true)
	channel.EXPECT().Send(strings.Repeat("é", domain.MaxContentLength)).Return(nil)
	req.NoError(s.Send(context.Background(), strings.Repeat("é", domain.MaxContentLength)))
}

// mocksChannelFor recovers the mock injected by startedSession.
func mocksChannelFor(s *Session) *mocks.MockLiveChannel {
	return s.channel.(*mocks.MockLiveChannel)
}

func TestSession_Send_Uses_Live_Channel_When_Open(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	s, _, channel := startedSession(t, ctrl)

	channel.EXPECT().IsOpen().Return(true)
	channel.EXPECT().Send("hello").Return(nil)

	// No fallback call and no optimistic echo: the transcript fills in
	// when the server loops the message back.
	req.NoError(s.Send(context.Background(), "  hello  "))
	req.Equal(0, s.Transcript().Len())
}

func TestSession_Send_Falls_Back_When_Channel_Closed(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	s, chat, channel := startedSession(t, ctrl)

	channel.EXPECT().IsOpen().Return(false)
	chat.EXPECT().SendMessage(gomock.Any(), int64(1), "hello").
		Times(1).
		Return(liveMessage(9, "hello"), nil)

	req.NoError(s.Send(context.Background(), "hello"))

	// The fallback response is the only copy; it lands in the transcript.
	req.Equal(1, s.Transcript().Len())
	last, _ := s.Transcript().Last()
	req.Equal(int64(9), last.ID)
}

func TestSession_Send_Falls_Back_When_Live_Send_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	s, chat, channel := startedSession(t, ctrl)

	channel.EXPECT().IsOpen().Return(true)
	channel.EXPECT().Send("hello").Return(errors.ErrChannelNotOpen)
	chat.EXPECT().SendMessage(gomock.Any(), int64(1), "hello").
		Times(1).
		Return(liveMessage(9, "hello"), nil)

	req.NoError(s.Send(context.Background(), "hello"))
	req.Equal(1, s.Transcript().Len())
}

func TestSession_Send_Surfaces_Fallback_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	s, chat, channel := startedSession(t, ctrl)

	channel.EXPECT().IsOpen().Return(false)
	chat.EXPECT().SendMessage(gomock.Any(), int64(1), "hello").
		Return(domain.Message{}, fmt.Errorf("503"))

	err := s.Send(context.Background(), "hello")
	req.Error(err)
	req.Contains(err.Error(), "fallback send")
	req.Equal(0, s.Transcript().Len())
}

func TestSession_Start_Warms_Transcript_From_Cache(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockChatAPI(ctrl)
	channel := mocks.NewMockLiveChannel(ctrl)
	cache := mocks.NewMockMessageCache(ctrl)

	chat.EXPECT().GetConversations(gomock.Any()).
		Return([]domain.Conversation{conversationFor(1, 3)}, nil)
	cache.EXPECT().List(int64(1)).
		Return([]domain.Message{liveMessage(1, "cached")}, nil)
	chat.EXPECT().GetMessages(gomock.Any(), int64(1)).
		Return([]domain.Message{liveMessage(1, "cached"), liveMessage(2, "fresh")}, nil)
	// Only the genuinely new message is written back.
	cache.EXPECT().Store(liveMessage(2, "fresh")).Return(nil)
	channel.EXPECT().Connect(gomock.Any())

	s := New(testLogger(), chat, func(int64, contract.MessageSink) contract.LiveChannel {
		return channel
	}, cache)

	req.NoError(s.Start(context.Background(), caregiverPrincipal()))
	req.Equal(2, s.Transcript().Len())
}

func TestSession_Close_Disconnects_The_Channel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	s, _, channel := startedSession(t, ctrl)

	channel.EXPECT().Disconnect().Times(2)
	s.Close()
	s.Close()
	req.Equal(int64(1), s.Conversation().ID)
}
