package agent_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/chiron/pkg/agent"
)

func TestRespondPrioritize(t *testing.T) {
	t.Run("urgent high-impact task ranks first", func(t *testing.T) {
		got := agent.RespondPrioritize("Prioritize these: Draft email, Launch campaign today")

		lines := strings.Split(got, "\n")
		var ranked []string
		for _, line := range lines {
			if strings.HasPrefix(line, "1. ") || strings.HasPrefix(line, "2. ") {
				ranked = append(ranked, line)
			}
		}
		gt.Array(t, ranked).Length(2)
		gt.S(t, ranked[0]).Contains("Launch campaign today")
		gt.S(t, ranked[0]).Contains("score 9")
		gt.S(t, ranked[1]).Contains("Draft email")
		gt.S(t, ranked[1]).Contains("score 4")
	})

	t.Run("stable sort preserves input order on ties", func(t *testing.T) {
		got := agent.RespondPrioritize("rank these: water the plants, feed the goldfish, sweep the porch")

		gt.S(t, got).Contains("1. water the plants")
		gt.S(t, got).Contains("2. feed the goldfish")
		gt.S(t, got).Contains("3. sweep the porch")
	})

	t.Run("short fragments are discarded", func(t *testing.T) {
		got := agent.RespondPrioritize("prioritize: and, task one with detail, it")

		gt.S(t, got).Contains("1. task one with detail")
		gt.B(t, strings.Contains(got, "2. ")).False()
	})

	t.Run("newline and semicolon separators", func(t *testing.T) {
		got := agent.RespondPrioritize("order tasks:\nship the release today; review the draft")

		gt.S(t, got).Contains("1. ship the release today")
		gt.S(t, got).Contains("2. review the draft")
	})

	t.Run("no tasks yields guidance text", func(t *testing.T) {
		gt.S(t, agent.RespondPrioritize("prioritize")).Equal(agent.EmptyTaskListText)
	})
}
