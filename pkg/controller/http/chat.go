package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chiron/pkg/domain/model"
	"github.com/secmon-lab/chiron/pkg/usecase"
	"github.com/secmon-lab/chiron/pkg/utils/errutil"
	"github.com/secmon-lab/chiron/pkg/utils/safe"
)

// Static client-facing error messages. Internals never leak to the client.
const (
	msgEmptyHistory = "Please provide at least one user message."
	msgAgentError   = "Unexpected agent error. Please try again."
)

// replyIDHeader carries the trace ID of the reply; it is not part of the
// JSON body.
const replyIDHeader = "X-Chiron-Reply-ID"

type chatRequest struct {
	Messages model.History `json:"messages"`
}

// chatHandler serves POST /api/chat: decode the history, run the chat use
// case, and write the assembled reply.
func chatHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode chat request"),
				http.StatusBadRequest, msgEmptyHistory)
			return
		}

		reply, err := uc.Chat.Chat(ctx, req.Messages)
		if err != nil {
			if errors.Is(err, usecase.ErrEmptyHistory) {
				errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest, msgEmptyHistory)
				return
			}
			errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError, msgAgentError)
			return
		}

		data, err := json.Marshal(reply)
		if err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal chat reply"),
				http.StatusInternalServerError, msgAgentError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(replyIDHeader, reply.ID.String())
		safe.Write(ctx, w, data)
	}
}
