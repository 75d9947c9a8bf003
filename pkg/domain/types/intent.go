package types

import "fmt"

// Intent is the category assigned to a user message. It selects which
// response generator runs.
type Intent string

const (
	IntentMath       Intent = "math"
	IntentPlan       Intent = "plan"
	IntentBrainstorm Intent = "brainstorm"
	IntentSummarize  Intent = "summarize"
	IntentPrioritize Intent = "prioritize"
	IntentInsight    Intent = "insight"
)

// AllIntents returns all valid intents
func AllIntents() []Intent {
	return []Intent{
		IntentMath,
		IntentPlan,
		IntentBrainstorm,
		IntentSummarize,
		IntentPrioritize,
		IntentInsight,
	}
}

// IsValid checks if the intent is valid
func (x Intent) IsValid() bool {
	switch x {
	case IntentMath,
		IntentPlan,
		IntentBrainstorm,
		IntentSummarize,
		IntentPrioritize,
		IntentInsight:
		return true
	default:
		return false
	}
}

// String returns the string representation of the intent
func (x Intent) String() string {
	return string(x)
}

// ParseIntent parses a string into an Intent
func ParseIntent(s string) (Intent, error) {
	intent := Intent(s)
	if !intent.IsValid() {
		return "", fmt.Errorf("invalid intent: %s", s)
	}
	return intent, nil
}
