package notify

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/cbroglie/mustache"
	"github.com/dustin/go-humanize"

	"github.com/kwchen/ccnotify/internal/core/classify"
	"github.com/kwchen/ccnotify/internal/core/event"
	"github.com/kwchen/ccnotify/internal/core/transcript"
	"github.com/kwchen/ccnotify/pkg/feishu"
)

const (
	maxMessageRunes  = 1000
	truncationNote   = "...\n\n*💡 See console for full content*"
	pushSummaryRunes = 100
)

// Card titles and theme colors for terminal events.
const (
	titleCompleted = "✅ Task completed"
	titleFailed    = "❌ Task failed"
	themeGreen     = "green"
	themeRed       = "red"
)

// FormatStop builds the card for a terminal (Stop) event.
func FormatStop(ev event.Event, ex transcript.Result, cls classify.Classification) *feishu.Message {
	var b strings.Builder

	if cls.ActiveWarning {
		b.WriteString("**⚠️ Warning:** stop hook is still active\n\n")
	}

	if ex.LastMessage != "" {
		b.WriteString(truncate(ex.LastMessage, maxMessageRunes))
	} else {
		fmt.Fprintf(&b, "Session %s... has ended\n\n", ev.ShortSession())
		if ev.TranscriptPath != "" {
			fmt.Fprintf(&b, "**📁 Debug - transcript path:**\n`%s`", ev.TranscriptPath)
		} else {
			b.WriteString("**⚠️ Debug:** no transcript path provided")
		}
	}

	content := b.String()
	if ex.WorkingDir != "" {
		if name := projectName(ex.WorkingDir); name != "" {
			content = fmt.Sprintf("<font size=2>📂 Project: %s</font>\n", name) + content
		} else {
			content = fmt.Sprintf("<font size=2>📂 Path: %s</font>\n", ex.WorkingDir) + content
		}
	}

	title, theme := titleCompleted, themeGreen
	if cls.IsError {
		title, theme = titleFailed, themeRed
	}
	return feishu.NewCard(title, theme, strings.TrimSpace(content))
}

// FormatNotification builds the card for a generic notification event.
func FormatNotification(ev event.Event) *feishu.Message {
	var b strings.Builder

	switch {
	case ev.Message != "":
		fmt.Fprintf(&b, "**Content:** %s\n", ev.Message)
	case len(ev.Notification) > 0:
		for _, key := range sortedKeys(ev.Notification) {
			if key == "session_id" || key == "timestamp" {
				continue
			}
			value := ev.Notification[key]
			if isFalsy(value) {
				continue
			}
			fmt.Fprintf(&b, "**%s:** %v\n", titleCase(key), value)
		}
	}

	if b.Len() == 0 {
		fmt.Fprintf(&b, "Session: %s...", ev.ShortSession())
	}
	return feishu.NewCard("📢 Claude Code Notification", "", strings.TrimSpace(b.String()))
}

// PushSummary renders the short mobile-push body for a terminal event using
// the configured mustache template. A broken or empty-rendering template
// falls back to the bare summary.
func PushSummary(template string, ex transcript.Result) string {
	summary := "Session has ended"
	if ex.LastMessage != "" {
		summary = truncatePlain(ex.LastMessage, pushSummaryRunes)
	}

	data := map[string]interface{}{
		"message":    summary,
		"project":    projectName(ex.WorkingDir),
		"time_since": timeSince(ex.LastTimestamp),
	}

	body, err := mustache.Render(template, data)
	if err != nil || strings.TrimSpace(body) == "" {
		return summary
	}
	return body
}

// truncate cuts s to limit runes and appends the continuation marker.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + truncationNote
}

func truncatePlain(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// projectName is the final path segment of cwd, empty when cwd reduces to
// nothing but separators.
func projectName(cwd string) string {
	trimmed := strings.TrimRight(cwd, "/")
	if trimmed == "" {
		return ""
	}
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

func timeSince(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

// sortedKeys keeps notification-field output deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// isFalsy mirrors the falsy values JSON can decode into an interface.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// titleCase capitalizes the letter starting each word, where words are
// separated by any non-letter ("tool_name" -> "Tool_Name").
func titleCase(s string) string {
	var b strings.Builder
	startOfWord := true
	for _, r := range s {
		if !unicode.IsLetter(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
