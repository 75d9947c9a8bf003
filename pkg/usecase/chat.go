package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chiron/pkg/agent"
	"github.com/secmon-lab/chiron/pkg/domain/model"
	"github.com/secmon-lab/chiron/pkg/domain/types"
	"github.com/secmon-lab/chiron/pkg/utils/logging"
)

// ChatUseCase handles one conversation turn: it runs the agent over the
// submitted history, assigns a reply ID for tracing, and logs the outcome.
type ChatUseCase struct {
	agent *agent.Agent
}

// NewChatUseCase creates a new ChatUseCase instance
func NewChatUseCase(a *agent.Agent) *ChatUseCase {
	return &ChatUseCase{agent: a}
}

// Chat produces the agent reply for the given history. An empty history is
// the caller's error (ErrEmptyHistory); a history without a user message is
// valid and yields the idle greeting.
func (uc *ChatUseCase) Chat(ctx context.Context, history model.History) (*model.Reply, error) {
	if len(history) == 0 {
		return nil, goerr.Wrap(ErrEmptyHistory, "empty chat history")
	}

	start := time.Now()
	reply, intent := uc.agent.Respond(history)
	reply.ID = types.NewReplyID()

	logging.From(ctx).Info("chat handled",
		"reply_id", reply.ID,
		"intent", intent,
		"messages", len(history),
		"steps", len(reply.Steps),
		"duration", time.Since(start),
	)

	return reply, nil
}
