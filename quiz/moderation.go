package quiz

import (
	"strings"

	goaway "github.com/TwiN/go-away"
)

// Moderator checks candidate display names against the built-in profanity list
// plus custom banned terms loaded from the store. Build one per request so
// banned-term updates apply without shared mutable filter state.
//
// Custom terms match by case-insensitive containment. go-away's sanitizer
// strips non-ASCII runes before matching, so Cyrillic terms would never hit
// its dictionary; plain containment keeps them enforceable.
type Moderator struct {
	detector *goaway.ProfanityDetector
	banned   []string
}

// NewModerator builds a moderator over the default dictionary extended with
// the supplied banned terms. The input slice is not retained or mutated.
func NewModerator(banned []string) *Moderator {
	terms := make([]string, 0, len(banned))
	for _, term := range banned {
		term = strings.TrimSpace(strings.ToLower(term))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return &Moderator{
		detector: goaway.NewProfanityDetector(),
		banned:   terms,
	}
}

// IsProfane reports whether the name matches any banned entry, case-insensitively
func (m *Moderator) IsProfane(name string) bool {
	if m.detector.IsProfane(name) {
		return true
	}
	lowered := strings.ToLower(name)
	for _, term := range m.banned {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
