package agent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/secmon-lab/chiron/pkg/domain/model"
	"github.com/secmon-lab/chiron/pkg/domain/types"
	"github.com/secmon-lab/chiron/pkg/service/calc"
)

// fillerPrefixes are polite lead-ins stripped so templates read naturally
// when the goal text is quoted back, e.g. "Help me plan a workout" -> "a workout".
var fillerPrefixes = []string{
	"help me to",
	"help me",
	"can you",
	"could you",
	"please",
	"i want to",
	"i need to",
	"i'd like to",
	"let's",
}

// topicOf extracts the subject of the request from the raw message text.
// It drops a leading filler phrase and the intent verb itself, then trims
// trailing punctuation. Falls back to a generic placeholder when nothing
// remains.
func topicOf(text string, intentVerbs ...string) string {
	s := strings.TrimSpace(text)
	lower := strings.ToLower(s)

	for _, prefix := range fillerPrefixes {
		if strings.HasPrefix(lower, prefix+" ") {
			s = strings.TrimSpace(s[len(prefix):])
			lower = strings.ToLower(s)
			break
		}
	}
	for _, verb := range intentVerbs {
		if lower == verb {
			s = ""
			break
		}
		if strings.HasPrefix(lower, verb+" ") {
			s = strings.TrimSpace(s[len(verb):])
			break
		}
	}

	s = strings.Trim(s, " \t.?!")
	if s == "" {
		return "your goal"
	}
	return s
}

// respondMath evaluates an arithmetic expression embedded in the message.
// Evaluation failures become explanatory assistant text, never an error.
func respondMath(text string) string {
	v, err := calc.Evaluate(text)
	switch {
	case errors.Is(err, calc.ErrNonFiniteResult):
		return "That expression doesn't evaluate to a number I can represent " +
			"(dividing by zero does this), so I can't give you a result."
	case err != nil:
		return "I spotted some numbers but couldn't evaluate them as an " +
			"arithmetic expression. Try a plain expression like `(1200 + 300) / 3` " +
			"using + - * / % ^ and parentheses."
	}

	expr := calc.Sanitize(text)
	return fmt.Sprintf("%s = %s", expr, calc.Format(v))
}

// respondPlan renders the fixed 5-step plan template around the stated goal
func respondPlan(text string) string {
	goal := topicOf(text, "plan", "schedule")

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here's a five-step plan for %s:\n\n", goal)
	fmt.Fprintf(&sb, "1. Define done: write one sentence describing what finishing %s looks like.\n", goal)
	sb.WriteString("2. List the three biggest pieces of work between you and that outcome.\n")
	sb.WriteString("3. Break the first piece into actions small enough to start today.\n")
	sb.WriteString("4. Block time on your calendar for the first action and protect it.\n")
	sb.WriteString("5. Set a checkpoint to review progress and adjust the remaining steps.")
	return sb.String()
}

// respondBrainstorm renders the four fixed ideation angles around the topic
func respondBrainstorm(text string) string {
	topic := topicOf(text, "brainstorm")

	var sb strings.Builder
	fmt.Fprintf(&sb, "Four angles to generate ideas for %s:\n\n", topic)
	fmt.Fprintf(&sb, "- Invert it: what would make %s fail completely? Avoiding those is a plan.\n", topic)
	fmt.Fprintf(&sb, "- Steal a frame: how would a chef, a coach, or an architect approach %s?\n", topic)
	fmt.Fprintf(&sb, "- Remove a constraint: what would you try if budget or time were not a factor?\n")
	fmt.Fprintf(&sb, "- Shrink it: what's the smallest version of %s you could ship this week?", topic)
	return sb.String()
}

// summaryWindow is how many recent messages a recap covers
const summaryWindow = 6

// emptySummaryText is returned when there is no prior conversation to recap
const emptySummaryText = "There's nothing to summarize yet. Once we've talked a bit, " +
	"ask me again and I'll recap the conversation."

// respondSummary recaps the conversation preceding the triggering message:
// the last 6 non-system messages, oldest first, one bullet per message.
func respondSummary(prior model.History) string {
	var window model.History
	for _, msg := range prior {
		if msg.Role == types.RoleSystem {
			continue
		}
		window = append(window, msg)
	}
	if len(window) > summaryWindow {
		window = window[len(window)-summaryWindow:]
	}
	if len(window) == 0 {
		return emptySummaryText
	}

	var sb strings.Builder
	sb.WriteString("Here's a quick recap of the conversation so far:\n\n")
	for i, msg := range window {
		fmt.Fprintf(&sb, "- %s: %s", msg.SpeakerLabel(), flatten(msg.Content))
		if i < len(window)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// flatten collapses runs of whitespace so multi-line messages stay on one
// bullet line.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// reflectivePrompt is the insight fallback when no knowledge entry matches
const reflectivePrompt = "I don't have a ready-made answer for that one, so let me " +
	"turn it around: what outcome are you hoping for, and what's the first obstacle " +
	"in the way? Naming those two things usually points at the next step."
