package types

import "github.com/google/uuid"

// ReplyID identifies a single agent reply in logs and response headers.
// It is not part of the JSON reply body.
type ReplyID string

// NewReplyID generates a time-ordered reply ID
func NewReplyID() ReplyID {
	return ReplyID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of the ReplyID
func (x ReplyID) String() string {
	return string(x)
}
