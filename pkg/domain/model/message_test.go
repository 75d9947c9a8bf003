package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/chiron/pkg/domain/model"
	"github.com/secmon-lab/chiron/pkg/domain/types"
)

func TestHistoryLatestUser(t *testing.T) {
	t.Run("finds the most recent user message", func(t *testing.T) {
		history := model.History{
			{Role: types.RoleUser, Content: "first"},
			{Role: types.RoleAssistant, Content: "reply"},
			{Role: types.RoleUser, Content: "second"},
			{Role: types.RoleAssistant, Content: "reply again"},
		}

		msg, ok := history.LatestUser()
		gt.B(t, ok).True()
		gt.S(t, msg.Content).Equal("second")
	})

	t.Run("no user message", func(t *testing.T) {
		history := model.History{
			{Role: types.RoleAssistant, Content: "hello"},
			{Role: types.RoleSystem, Content: "setup"},
		}

		_, ok := history.LatestUser()
		gt.B(t, ok).False()
	})

	t.Run("empty history", func(t *testing.T) {
		_, ok := model.History{}.LatestUser()
		gt.B(t, ok).False()
	})
}

func TestHistoryBeforeLatestUser(t *testing.T) {
	t.Run("cuts at the latest user message", func(t *testing.T) {
		history := model.History{
			{Role: types.RoleUser, Content: "first"},
			{Role: types.RoleAssistant, Content: "reply"},
			{Role: types.RoleUser, Content: "second"},
		}

		prior := history.BeforeLatestUser()
		gt.Array(t, prior).Length(2)
		gt.S(t, prior[1].Content).Equal("reply")
	})

	t.Run("no user message returns history as-is", func(t *testing.T) {
		history := model.History{
			{Role: types.RoleAssistant, Content: "hello"},
		}
		gt.Array(t, history.BeforeLatestUser()).Length(1)
	})
}

func TestSpeakerLabel(t *testing.T) {
	tests := []struct {
		role types.Role
		want string
	}{
		{role: types.RoleUser, want: "You"},
		{role: types.RoleAssistant, want: "Assistant"},
		{role: types.Role("moderator"), want: "Moderator"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			msg := model.Message{Role: tt.role, Content: "x"}
			gt.S(t, msg.SpeakerLabel()).Equal(tt.want)
		})
	}
}
