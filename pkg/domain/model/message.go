package model

import (
	"unicode"

	"github.com/secmon-lab/chiron/pkg/domain/types"
)

// Message is a single conversation turn. Messages are immutable once
// created and live only for the duration of a request; the server never
// stores them.
type Message struct {
	Role    types.Role `json:"role"`
	Content string     `json:"content"`
}

// History is the full conversation sent by the client, oldest first
type History []Message

// LatestUser returns the most recent user message, scanning from the end.
// The second value is false when the history has no user message.
func (x History) LatestUser() (Message, bool) {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i].Role == types.RoleUser {
			return x[i], true
		}
	}
	return Message{}, false
}

// BeforeLatestUser returns the portion of the history preceding the most
// recent user message. With no user message it returns the history as-is.
func (x History) BeforeLatestUser() History {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i].Role == types.RoleUser {
			return x[:i]
		}
	}
	return x
}

// SpeakerLabel is the display name used when a message is quoted back to
// the user, e.g. in conversation summaries.
func (x Message) SpeakerLabel() string {
	switch x.Role {
	case types.RoleUser:
		return "You"
	case types.RoleAssistant:
		return "Assistant"
	default:
		return capitalize(string(x.Role))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
