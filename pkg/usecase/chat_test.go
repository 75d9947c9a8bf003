package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/chiron/pkg/agent"
	"github.com/secmon-lab/chiron/pkg/domain/model"
	"github.com/secmon-lab/chiron/pkg/domain/types"
	"github.com/secmon-lab/chiron/pkg/usecase"
)

func TestChat(t *testing.T) {
	uc := usecase.New(agent.New())

	t.Run("empty history is rejected", func(t *testing.T) {
		_, err := uc.Chat.Chat(t.Context(), nil)
		gt.Error(t, err).Is(usecase.ErrEmptyHistory)
	})

	t.Run("assigns a reply ID", func(t *testing.T) {
		reply, err := uc.Chat.Chat(t.Context(), model.History{
			{Role: types.RoleUser, Content: "2+2"},
		})
		gt.NoError(t, err).Required()

		gt.Value(t, reply.Role).Equal(types.RoleAssistant)
		gt.S(t, reply.ID.String()).NotEqual("")
		gt.S(t, reply.Content).Contains("4")
	})

	t.Run("history without user message yields idle reply", func(t *testing.T) {
		reply, err := uc.Chat.Chat(t.Context(), model.History{
			{Role: types.RoleAssistant, Content: "hello"},
		})
		gt.NoError(t, err).Required()

		gt.Array(t, reply.Suggestions).Length(3)
	})

	t.Run("distinct requests get distinct reply IDs", func(t *testing.T) {
		history := model.History{{Role: types.RoleUser, Content: "plan my day"}}

		first, err := uc.Chat.Chat(t.Context(), history)
		gt.NoError(t, err).Required()
		second, err := uc.Chat.Chat(t.Context(), history)
		gt.NoError(t, err).Required()

		gt.Value(t, first.ID).NotEqual(second.ID)
	})
}
