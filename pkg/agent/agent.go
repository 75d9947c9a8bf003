package agent

import (
	"fmt"

	"github.com/secmon-lab/chiron/pkg/domain/model"
	"github.com/secmon-lab/chiron/pkg/domain/types"
	"github.com/secmon-lab/chiron/pkg/service/knowledge"
)

// Agent is the rule-based responder. It holds no mutable state, so a single
// instance is safe for unlimited concurrent Respond calls.
type Agent struct {
	knowledge *knowledge.Service
}

// Option is a functional option for Agent configuration
type Option func(*Agent)

// WithKnowledge replaces the knowledge service used for insight lookups
func WithKnowledge(svc *knowledge.Service) Option {
	return func(a *Agent) {
		a.knowledge = svc
	}
}

// New creates an agent backed by the builtin knowledge table unless
// WithKnowledge overrides it.
func New(opts ...Option) *Agent {
	a := &Agent{}
	for _, opt := range opts {
		opt(a)
	}
	if a.knowledge == nil {
		a.knowledge = knowledge.New()
	}
	return a
}

// idleSuggestions are offered when the history has no user message yet
var idleSuggestions = []string{
	"Help me plan a focused 30-minute workout",
	"Brainstorm names for a weekend hiking club",
	"What is (1200 + 300) / 3?",
}

// suggestionTable maps each intent to its fixed follow-up prompts
var suggestionTable = map[types.Intent][]string{
	types.IntentMath: {
		"What is 15% of 2,400?",
		"Evaluate 2^10 - 24",
		"Help me plan my week",
	},
	types.IntentPlan: {
		"Break step 1 down further",
		"Prioritize these steps: research, outline, draft",
		"Summarize our conversation",
	},
	types.IntentBrainstorm: {
		"Turn the best idea into a plan",
		"Give me four more angles",
		"Which idea is fastest to try?",
	},
	types.IntentSummarize: {
		"What should I do first?",
		"Turn the recap into a plan",
		"Brainstorm next steps",
	},
	types.IntentPrioritize: {
		"Make a plan for the top task",
		"What can I drop entirely?",
		"Summarize our conversation",
	},
	types.IntentInsight: {
		"Help me plan my next step",
		"Brainstorm ways to approach this",
		"Prioritize: reply to email, prepare launch deck, book 1:1",
	},
}

// Respond produces one reply for the given conversation history. It never
// fails: degenerate input falls through to generator-level guidance text.
// The returned intent is the classification of the latest user message, or
// insight when there is none.
func (x *Agent) Respond(history model.History) (*model.Reply, types.Intent) {
	latest, ok := history.LatestUser()
	if !ok {
		return idleReply(), types.IntentInsight
	}

	intent := DetectIntent(latest.Content)
	steps := []model.Step{{
		Title:   "Intent detected",
		Content: fmt.Sprintf("The latest message reads like a %q request.", intent),
	}}

	var content, method string
	switch intent {
	case types.IntentMath:
		content = respondMath(latest.Content)
		method = "Evaluated the expression with the built-in calculator."
	case types.IntentPlan:
		content = respondPlan(latest.Content)
		method = "Filled in the five-step planning template."
	case types.IntentBrainstorm:
		content = respondBrainstorm(latest.Content)
		method = "Applied the four fixed ideation angles."
	case types.IntentSummarize:
		content = respondSummary(history.BeforeLatestUser())
		method = "Recapped the recent conversation turns."
	case types.IntentPrioritize:
		content = respondPrioritize(latest.Content)
		method = "Ranked the listed tasks by urgency and impact."
	default:
		if entry, found := x.knowledge.Lookup(latest.Content); found {
			content = entry.Advice
			method = fmt.Sprintf("Matched knowledge-base topic %q.", entry.ID)
		} else {
			content = reflectivePrompt
			method = "No knowledge-base topic matched; used the reflective prompt."
		}
	}
	steps = append(steps, model.Step{Title: "Method selected", Content: method})

	suggestions := suggestionTable[intent]
	steps = append(steps, model.Step{
		Title:   "Suggestions attached",
		Content: fmt.Sprintf("Added %d follow-up suggestions for the %q intent.", len(suggestions), intent),
	})

	return &model.Reply{
		Role:        types.RoleAssistant,
		Content:     content,
		Steps:       steps,
		Suggestions: suggestions,
	}, intent
}

// idleReply greets a conversation that has no user message yet
func idleReply() *model.Reply {
	return &model.Reply{
		Role: types.RoleAssistant,
		Content: "Hi! I'm Chiron. Ask me to plan something, brainstorm ideas, " +
			"rank your tasks, recap our conversation, or crunch some numbers.",
		Steps: []model.Step{{
			Title:   "Waiting for input",
			Content: "The history contains no user message, so this is the idle greeting.",
		}},
		Suggestions: idleSuggestions,
	}
}
