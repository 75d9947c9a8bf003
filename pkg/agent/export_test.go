package agent

// Export internal functions for testing
var (
	RespondMath       = respondMath
	RespondPlan       = respondPlan
	RespondBrainstorm = respondBrainstorm
	RespondSummary    = respondSummary
	RespondPrioritize = respondPrioritize
	TopicOf           = topicOf
)

const (
	EmptySummaryText  = emptySummaryText
	EmptyTaskListText = emptyTaskListText
	ReflectivePrompt  = reflectivePrompt
)
