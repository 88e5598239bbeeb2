// Package projection builds the local transcript from observed messages.
// Handles ordering and deduplication across delivery paths.
// Does not perform I/O or interact with the view directly.
package projection

import (
	"sort"
	"sync"

	"carelink/domain"
)

// Transcript is the single merged view of one conversation.
// Messages may arrive from the initial history fetch, from live pushes
// and from fallback send responses, in any interleaving; the transcript
// keeps each server id exactly once, ordered by (sent_at, id).
type Transcript struct {
	mu       sync.RWMutex
	messages []domain.Message
	seen     map[int64]struct{}
	onAppend []func(domain.Message)
}

func NewTranscript() *Transcript {
	return &Transcript{
		seen: make(map[int64]struct{}),
	}
}

// OnAppend registers a callback fired for every message that actually
// enters the transcript. Duplicates never trigger it.
func (t *Transcript) OnAppend(fn func(domain.Message)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onAppend = append(t.onAppend, fn)
}

// Append merges one candidate message. A message whose id is already
// present is a no-op; otherwise it is inserted at its chronological
// position. Returns whether the transcript changed.
func (t *Transcript) Append(msg domain.Message) bool {
	t.mu.Lock()
	if _, ok := t.seen[msg.ID]; ok {
		t.mu.Unlock()
		return false
	}
	t.seen[msg.ID] = struct{}{}

	i := sort.Search(len(t.messages), func(i int) bool {
		return msg.Before(t.messages[i])
	})
	t.messages = append(t.messages, domain.Message{})
	copy(t.messages[i+1:], t.messages[i:])
	t.messages[i] = msg

	callbacks := t.onAppend
	t.mu.Unlock()

	for _, fn := range callbacks {
		fn(msg)
	}
	return true
}

// Messages returns a copy of the ordered transcript.
func (t *Transcript) Messages() []domain.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// Last returns the newest message, if any.
func (t *Transcript) Last() (domain.Message, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.messages) == 0 {
		return domain.Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}
