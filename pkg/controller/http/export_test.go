package http

// Export internal functions for testing
var (
	RecoverJSON = recoverJSON
)

const (
	MsgEmptyHistory = msgEmptyHistory
	MsgAgentError   = msgAgentError
)
