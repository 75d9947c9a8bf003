package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/chiron/pkg/agent"
	httpctrl "github.com/secmon-lab/chiron/pkg/controller/http"
	"github.com/secmon-lab/chiron/pkg/usecase"
)

func newTestServer(t *testing.T) *httpctrl.Server {
	t.Helper()
	srv, err := httpctrl.New(usecase.New(agent.New()))
	gt.NoError(t, err).Required()
	return srv
}

func postChat(t *testing.T, srv *httpctrl.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

type replyBody struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Steps   []struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	} `json:"steps"`
	Suggestions []string `json:"suggestions"`
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer(t)

	t.Run("plan request returns five numbered steps", func(t *testing.T) {
		rec := postChat(t, srv, `{"messages":[{"role":"user","content":"Help me plan a focused 30-minute workout"}]}`)
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Header().Get("Content-Type")).Equal("application/json")
		gt.S(t, rec.Header().Get("X-Chiron-Reply-ID")).NotEqual("")

		var reply replyBody
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply)).Required()
		gt.S(t, reply.Role).Equal("assistant")
		gt.S(t, reply.Content).Contains("5. ")
		gt.B(t, strings.Contains(reply.Content, "6. ")).False()
		gt.Array(t, reply.Steps).Length(3)
		gt.Array(t, reply.Suggestions).Length(3)
	})

	t.Run("math request returns the result", func(t *testing.T) {
		rec := postChat(t, srv, `{"messages":[{"role":"user","content":"2+2"}]}`)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var reply replyBody
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply)).Required()
		gt.S(t, reply.Content).Contains("4")
	})

	t.Run("reply body has no id field", func(t *testing.T) {
		rec := postChat(t, srv, `{"messages":[{"role":"user","content":"2+2"}]}`)

		var raw map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw)).Required()
		_, found := raw["id"]
		gt.B(t, found).False()
	})
}

func TestChatEndpointBadRequest(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty messages", body: `{"messages":[]}`},
		{name: "missing messages", body: `{}`},
		{name: "messages not an array", body: `{"messages":"hello"}`},
		{name: "malformed JSON", body: `{"messages":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postChat(t, srv, tt.body)
			gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

			var errResp map[string]string
			gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp)).Required()
			gt.S(t, errResp["error"]).Equal(httpctrl.MsgEmptyHistory)
		})
	}
}

func TestRecoverJSON(t *testing.T) {
	handler := httpctrl.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusInternalServerError)

	var errResp map[string]string
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp)).Required()
	gt.S(t, errResp["error"]).Equal(httpctrl.MsgAgentError)
}

func TestSPAFallback(t *testing.T) {
	srv := newTestServer(t)

	t.Run("root serves index", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains("Chiron")
	})

	t.Run("unknown path falls back to index", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/no/such/page", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Header().Get("Content-Type")).Equal("text/html")
		gt.S(t, rec.Body.String()).Contains("Chiron")
	})
}
