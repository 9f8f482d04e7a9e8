package event

import "testing"

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Error("Parse should fail on non-JSON input")
	}
}

func TestKind(t *testing.T) {
	boolTrue := true

	tests := []struct {
		name string
		ev   Event
		want Kind
	}{
		{"explicit stop", Event{Type: "Stop"}, KindStop},
		{"explicit notification", Event{Type: "Notification"}, KindNotification},
		{"explicit unrecognized", Event{Type: "ToolUse", StopHookActive: &boolTrue}, KindUnknown},
		{"inferred stop", Event{StopHookActive: &boolTrue}, KindStop},
		{"inferred from message", Event{Message: "hello"}, KindNotification},
		{"inferred from fields", Event{Notification: map[string]any{"title": "x"}}, KindNotification},
		{"nothing to infer", Event{SessionID: "abc"}, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStillActive(t *testing.T) {
	active := true
	inactive := false

	if (Event{}).StillActive() {
		t.Error("absent flag should not be active")
	}
	if (Event{StopHookActive: &inactive}).StillActive() {
		t.Error("false flag should not be active")
	}
	if !(Event{StopHookActive: &active}).StillActive() {
		t.Error("true flag should be active")
	}
}

func TestShortSession(t *testing.T) {
	ev := Event{SessionID: "0123456789abcdef"}
	if got := ev.ShortSession(); got != "01234567" {
		t.Errorf("ShortSession() = %q, want '01234567'", got)
	}

	if got := (Event{SessionID: "abc"}).ShortSession(); got != "abc" {
		t.Errorf("short id should pass through, got %q", got)
	}

	if got := (Event{}).ShortSession(); got != "Unknown " {
		t.Errorf("missing id fallback = %q", got)
	}
}
