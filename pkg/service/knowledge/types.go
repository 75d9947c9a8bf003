package knowledge

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors for knowledge entry validation
var (
	ErrEmptyID      = goerr.New("knowledge entry ID is required")
	ErrNoTopics     = goerr.New("knowledge entry requires at least one topic pattern")
	ErrEmptyAdvice  = goerr.New("knowledge entry advice is required")
	ErrInvalidTopic = goerr.New("knowledge topic pattern does not compile")
)

// Entry is one knowledge-base topic: a set of trigger patterns and the
// canned advice returned when any of them matches.
type Entry struct {
	ID     string
	Topics []string
	Advice string

	patterns []*regexp.Regexp
}

// NewEntry validates and compiles a knowledge entry. Topic patterns are
// regular expressions matched case-insensitively against the user text.
func NewEntry(id string, topics []string, advice string) (*Entry, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if len(topics) == 0 {
		return nil, goerr.Wrap(ErrNoTopics, "invalid entry", goerr.V("id", id))
	}
	if advice == "" {
		return nil, goerr.Wrap(ErrEmptyAdvice, "invalid entry", goerr.V("id", id))
	}

	entry := &Entry{
		ID:     id,
		Topics: topics,
		Advice: advice,
	}
	for _, topic := range topics {
		re, err := regexp.Compile("(?i)" + topic)
		if err != nil {
			return nil, goerr.Wrap(ErrInvalidTopic, "invalid entry",
				goerr.V("id", id), goerr.V("pattern", topic))
		}
		entry.patterns = append(entry.patterns, re)
	}
	return entry, nil
}

// Match reports whether any topic pattern matches the text
func (x *Entry) Match(text string) bool {
	for _, re := range x.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
