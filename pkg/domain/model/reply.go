package model

import "github.com/secmon-lab/chiron/pkg/domain/types"

// Step is a human-readable trace entry explaining one stage of the
// dispatcher's decision process. Steps are descriptive only; they have no
// behavioral effect.
type Step struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Reply is the assembled agent response for one request. It is constructed
// once by the dispatcher and immutable afterwards; the JSON form is the
// HTTP response body. ID is assigned by the use case layer for tracing and
// is deliberately excluded from the body.
type Reply struct {
	ID          types.ReplyID `json:"-"`
	Role        types.Role    `json:"role"`
	Content     string        `json:"content"`
	Steps       []Step        `json:"steps"`
	Suggestions []string      `json:"suggestions"`
}
