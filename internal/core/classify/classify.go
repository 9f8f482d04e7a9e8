// Package classify decides whether a finished session looks like a failure.
package classify

import "strings"

// ErrorKeywords are matched case-insensitively as substrings of the last
// assistant message. Extend this list to catch new failure markers without
// touching extraction or formatting.
var ErrorKeywords = []string{
	"API Error:",
}

// Classification carries the derived flags for one terminal event. The two
// flags are independent: the warning comes from the event itself, the error
// from message content.
type Classification struct {
	IsError       bool
	ActiveWarning bool
}

// Classify inspects the extracted message text. An empty message is never an
// error.
func Classify(message string, stillActive bool) Classification {
	c := Classification{ActiveWarning: stillActive}
	if message == "" {
		return c
	}
	lower := strings.ToLower(message)
	for _, kw := range ErrorKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			c.IsError = true
			break
		}
	}
	return c
}
