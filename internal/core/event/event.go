// Package event models the hook payload Claude Code writes to stdin.
package event

import (
	"encoding/json"
	"fmt"
)

// Kind is the resolved event category.
type Kind string

const (
	KindStop         Kind = "Stop"
	KindNotification Kind = "Notification"
	KindUnknown      Kind = "Unknown"
)

// Event is one hook payload. StopHookActive is a pointer because its mere
// presence (not its value) marks the event as a Stop event when event_type
// is missing.
type Event struct {
	Type           string         `json:"event_type"`
	SessionID      string         `json:"session_id"`
	TranscriptPath string         `json:"transcript_path"`
	StopHookActive *bool          `json:"stop_hook_active"`
	Message        string         `json:"message"`
	Notification   map[string]any `json:"notification"`
}

// Parse decodes a single JSON event object.
func Parse(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("invalid hook payload: %w", err)
	}
	return ev, nil
}

// Kind resolves the event category. An explicit recognized event_type wins;
// when it is absent the kind is inferred from marker fields. An explicit but
// unrecognized type is never reinterpreted.
func (e Event) Kind() Kind {
	switch e.Type {
	case "Stop":
		return KindStop
	case "Notification":
		return KindNotification
	case "", "Unknown":
		if e.StopHookActive != nil {
			return KindStop
		}
		if len(e.Notification) > 0 || e.Message != "" {
			return KindNotification
		}
	}
	return KindUnknown
}

// StillActive reports whether the stop hook was flagged as still running.
func (e Event) StillActive() bool {
	return e.StopHookActive != nil && *e.StopHookActive
}

// ShortSession returns the display prefix of the session identifier.
func (e Event) ShortSession() string {
	id := e.SessionID
	if id == "" {
		id = "Unknown Session"
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}
