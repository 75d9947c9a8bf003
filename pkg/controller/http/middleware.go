package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chiron/pkg/utils/errutil"
)

// recoverJSON converts a panic anywhere below into the static 500 JSON
// body instead of chi's plain-text recoverer output.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			var err error
			switch v := rec.(type) {
			case error:
				err = goerr.Wrap(v, "panic in HTTP handler")
			case string:
				err = goerr.Wrap(goerr.New(v), "panic in HTTP handler")
			default:
				err = goerr.New("panic in HTTP handler", goerr.V("panic", v))
			}

			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError, msgAgentError)
		}()

		next.ServeHTTP(w, r)
	})
}
