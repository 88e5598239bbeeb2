package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/blugelabs/bluge"

	"carelink/domain"
)

// SearchHit is one transcript match.
type SearchHit struct {
	MessageID int64
	Content   string
}

// SearchIndex maintains a Bluge full-text index over message content,
// fed from transcript appends. Indexing by server id keeps re-indexing
// of duplicates idempotent.
type SearchIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewSearchIndex(writer *bluge.Writer, log *slog.Logger) *SearchIndex {
	return &SearchIndex{writer: writer, log: log}
}

func (s *SearchIndex) Index(msg domain.Message) error {
	docID := strconv.FormatInt(msg.ID, 10)
	doc := bluge.NewDocument(docID).
		AddField(bluge.NewKeywordField("conversation_id",
			strconv.FormatInt(msg.ConversationID, 10))).
		AddField(bluge.NewTextField("content", msg.Content).StoreValue()).
		AddField(bluge.NewDateTimeField("sent_at", msg.SentAt))
	return s.writer.Update(doc.ID(), doc)
}

// Search returns up to limit matches for terms within one conversation.
func (s *SearchIndex) Search(ctx context.Context, conversationID int64, terms string, limit int) ([]SearchHit, error) {
	reader, err := s.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("content")).
		AddMust(bluge.NewTermQuery(strconv.FormatInt(conversationID, 10)).
			SetField("conversation_id"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var hits []SearchHit
	match, err := iterator.Next()
	for err == nil && match != nil {
		var hit SearchHit
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.MessageID, _ = strconv.ParseInt(string(value), 10, 64)
			case "content":
				hit.Content = string(value)
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return hits, nil
}
