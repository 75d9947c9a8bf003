package usecase

import (
	"github.com/secmon-lab/chiron/pkg/agent"
)

type UseCases struct {
	Chat *ChatUseCase
}

func New(a *agent.Agent) *UseCases {
	return &UseCases{
		Chat: NewChatUseCase(a),
	}
}
