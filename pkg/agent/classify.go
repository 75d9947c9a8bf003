package agent

import (
	"regexp"

	"github.com/secmon-lab/chiron/pkg/domain/types"
)

// mathPattern requires two number tokens joined by an operator, with
// optional parens and sign between them. Plain digits without an operator
// never classify as math.
var mathPattern = regexp.MustCompile(`\d[\d.,]*\s*[+*/%^-]\s*[-+(\s]*\d`)

type intentRule struct {
	intent  types.Intent
	pattern *regexp.Regexp
}

// intentRules is evaluated in order; the first match wins
var intentRules = []intentRule{
	{types.IntentMath, mathPattern},
	{types.IntentPlan, regexp.MustCompile(`(?i)\b(plan|schedule|roadmap|steps?|strategy)\b`)},
	{types.IntentBrainstorm, regexp.MustCompile(`(?i)\b(ideas?|brainstorm|creative|names?)\b`)},
	{types.IntentSummarize, regexp.MustCompile(`(?i)\b(summar(?:y|ize|ise)|recap|tl;?dr)\b`)},
	{types.IntentPrioritize, regexp.MustCompile(`(?i)\b(prioriti[sz]e|priorit(?:y|ies)|rank(?:ing)?|order tasks|what to do first)\b`)},
}

// DetectIntent classifies a user message into exactly one intent,
// defaulting to insight when no rule matches.
func DetectIntent(text string) types.Intent {
	for _, rule := range intentRules {
		if rule.pattern.MatchString(text) {
			return rule.intent
		}
	}
	return types.IntentInsight
}
