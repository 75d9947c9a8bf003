package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	ErrEmptyHistory = goerr.New("at least one message is required")
)
