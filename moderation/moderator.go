// Package moderation guards outgoing chat text. The word list is
// configurable per deployment; matching is resilient to spacing,
// punctuation and common leet substitutions.
package moderation

import (
	"unicode"

	"github.com/abadojack/whatlanggo"
	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// NewModerator builds the Aho-Corasick automaton from the normalized
// word list. An empty list yields a moderator that never censors.
func NewModerator(words []string, replacement rune) (*Moderator, error) {
	if len(words) == 0 {
		return &Moderator{replacement: replacement}, nil
	}
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		normalized, _ := normalize([]rune(word))
		if len(normalized) > 0 {
			patterns = append(patterns, normalized)
		}
	}
	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: machine, replacement: replacement}, nil
}

// Censor masks every forbidden span in text, preserving its length and
// spacing. The boolean reports whether anything was masked.
func (m *Moderator) Censor(text string) (string, bool) {
	if m.matcher == nil {
		return text, false
	}
	original := []rune(text)
	normalized, positions := normalize(original)
	if len(normalized) == 0 {
		return text, false
	}

	spans := m.matcher.MultiPatternSearch(normalized, false)
	if len(spans) == 0 {
		return text, false
	}

	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(positions) {
			continue
		}
		// positions maps normalized indexes back onto the original
		// runes, noise characters included in between stay visible.
		for i := positions[start]; i <= positions[end-1]; i++ {
			original[i] = m.replacement
		}
	}
	return string(original), true
}

// DetectLanguage tags text with an ISO 639-1 code, empty when detection
// is inconclusive.
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	return info.Lang.Iso6391()
}

// normalize lowercases, strips noise and undoes leet substitutions,
// keeping a map from normalized index to original rune index.
func normalize(input []rune) ([]rune, []int) {
	normalized := make([]rune, 0, len(input))
	positions := make([]int, 0, len(input))
	for i, r := range input {
		plain := unleet(r)
		if unicode.IsPunct(plain) || unicode.IsSpace(plain) || unicode.IsSymbol(plain) {
			continue
		}
		normalized = append(normalized, unicode.ToLower(plain))
		positions = append(positions, i)
	}
	return normalized, positions
}

func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
