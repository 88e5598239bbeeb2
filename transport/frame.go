package transport

import (
	"encoding/json"
	"time"

	"carelink/domain"
)

// frameTypeMessage is the discriminator the backend puts on chat frames.
// Frames carrying any other type are not chat payloads.
const frameTypeMessage = "message"

type inboundFrame struct {
	Type           string    `json:"type"`
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	SenderUserID   int64     `json:"sender_user_id"`
	SenderName     string    `json:"sender_name"`
	Content        string    `json:"content"`
	SentAt         time.Time `json:"sent_at"`
}

type outboundFrame struct {
	Content string `json:"content"`
}

// DecodeFrame parses one inbound wire frame. The boolean is false for
// anything that is not a well-formed chat message: unparseable body,
// wrong discriminator, or empty content. Such frames are dropped by the
// caller without surfacing an error.
func DecodeFrame(data []byte) (domain.Message, bool) {
	var f inboundFrame
	if err := json.Unmarshal(data, &f); err != nil {
		return domain.Message{}, false
	}
	if f.Type != frameTypeMessage || f.Content == "" {
		return domain.Message{}, false
	}
	return domain.Message{
		ID:             f.ID,
		ConversationID: f.ConversationID,
		SenderUserID:   f.SenderUserID,
		SenderName:     f.SenderName,
		Content:        f.Content,
		SentAt:         f.SentAt,
	}, true
}
