package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"carelink/domain"
)

// MessageCache persists transcript messages in BadgerDB so a reopened
// screen can render immediately while the network history fetch is in
// flight. The transcript's idempotent merge makes the overlap harmless.
type MessageCache struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageCache(db *badger.DB, log *slog.Logger) *MessageCache {
	return &MessageCache{db: db, log: log}
}

// cacheKey formats "msg:{conversation}:{timestamp_padded}:{id_padded}" so
// a plain prefix scan yields chronological order; the padded server id
// disambiguates messages sharing the same nanosecond.
func cacheKey(msg domain.Message) []byte {
	return []byte(fmt.Sprintf("msg:%d:%019d:%010d",
		msg.ConversationID,
		msg.SentAt.UnixNano(),
		msg.ID,
	))
}

func (c *MessageCache) Store(msg domain.Message) error {
	bytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(msg), bytes)
	})
}

// List returns all cached messages of a conversation in key order.
func (c *MessageCache) List(conversationID int64) ([]domain.Message, error) {
	var messages []domain.Message
	err := c.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%d:", conversationID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var msg domain.Message
				if err := json.Unmarshal(value, &msg); err != nil {
					// A corrupt entry should not hide the rest of the
					// history.
					c.log.Warn("Skipping corrupt cache entry",
						slog.String("key", string(it.Item().Key())))
					return nil
				}
				messages = append(messages, msg)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}
