package errutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chiron/pkg/utils/logging"
	"github.com/secmon-lab/chiron/pkg/utils/safe"
)

// HandleHTTP logs the error and writes a JSON error body with the given
// status code. The userMessage is the only detail exposed to the client;
// internals stay in the log. 5xx errors are also reported to Sentry when
// the SDK is configured.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int, userMessage string) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error("HTTP error",
			"status", statusCode,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error("HTTP error",
			"status", statusCode,
			"error", err.Error(),
		)
	}

	if statusCode >= http.StatusInternalServerError {
		sentry.CaptureException(err)
	}

	body, marshalErr := json.Marshal(map[string]string{"error": userMessage})
	if marshalErr != nil {
		http.Error(w, userMessage, statusCode)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	safe.Write(ctx, w, body)
}
