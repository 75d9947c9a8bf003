package agent

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// task is one candidate item extracted from a prioritization request
type task struct {
	text    string
	urgency int
	impact  int
}

func (x task) score() int {
	return 2*x.urgency + x.impact
}

var (
	urgencyPattern = regexp.MustCompile(`(?i)\b(today|urgent|now|soon|asap)\b`)
	// Impact tiers: launch-critical work scores 3, routine production work
	// scores 2, everything else 1.
	impactHighPattern = regexp.MustCompile(`(?i)\b(launch|ship|release|customer|client|revenue|deadline)\b`)
	impactMidPattern  = regexp.MustCompile(`(?i)\b(draft|write|review|prepare|plan|email)\b`)

	taskSeparator = regexp.MustCompile(`[\n,;]+`)

	// leadingTrigger drops the request phrasing itself ("prioritize these
	// tasks") so it is never ranked as a task.
	leadingTrigger = regexp.MustCompile(`(?i)^\s*(?:(?:please|help me|can you)\s+)*(?:prioriti[sz]e|rank(?:ing)?|order)(?:\s+(?:these|those|my|the))?(?:\s+tasks?)?\s*:?\s*`)
)

// minTaskLength filters out fragments left over from splitting, e.g. "and"
const minTaskLength = 4

// parseTasks extracts candidate tasks from free text. A leading trigger
// clause ending in ':' ("prioritize these:") is dropped, then the rest is
// split on newlines, commas and semicolons. Entries at or below
// minTaskLength characters are discarded.
func parseTasks(text string) []task {
	if idx := strings.Index(text, ":"); idx >= 0 && !strings.ContainsAny(text[:idx], "\n,;") {
		text = text[idx+1:]
	}
	text = leadingTrigger.ReplaceAllString(text, "")

	var tasks []task
	for _, part := range taskSeparator.Split(text, -1) {
		part = strings.TrimSpace(part)
		if len(part) <= minTaskLength {
			continue
		}
		tasks = append(tasks, task{
			text:    part,
			urgency: urgencyOf(part),
			impact:  impactOf(part),
		})
	}
	return tasks
}

func urgencyOf(s string) int {
	if urgencyPattern.MatchString(s) {
		return 3
	}
	return 1
}

func impactOf(s string) int {
	switch {
	case impactHighPattern.MatchString(s):
		return 3
	case impactMidPattern.MatchString(s):
		return 2
	default:
		return 1
	}
}

// emptyTaskListText guides the user when no tasks could be extracted
const emptyTaskListText = "I couldn't find any tasks to rank. List them separated " +
	"by commas or line breaks, like: \"prepare slides, email the team, book the venue\", " +
	"and I'll order them by urgency and impact."

// respondPrioritize ranks the tasks in the message by 2*urgency + impact,
// highest first. The sort is stable: tied tasks keep their input order.
func respondPrioritize(text string) string {
	tasks := parseTasks(text)
	if len(tasks) == 0 {
		return emptyTaskListText
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].score() > tasks[j].score()
	})

	var sb strings.Builder
	sb.WriteString("Here's the order I'd tackle these in:\n\n")
	for i, t := range tasks {
		fmt.Fprintf(&sb, "%d. %s (score %d: urgency %d, impact %d)", i+1, t.text, t.score(), t.urgency, t.impact)
		if i < len(tasks)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
