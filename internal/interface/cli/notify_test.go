package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kwchen/ccnotify/internal/core/config"
)

func TestHandleEvent_MalformedInput(t *testing.T) {
	res := handleEvent(strings.NewReader("this is not json"), config.Default)

	if res.Success {
		t.Error("malformed stdin must fail the invocation")
	}
	if !strings.Contains(res.Error, "invalid hook payload") {
		t.Errorf("Error = %q", res.Error)
	}
}

func TestHandleEvent_UnrecognizedKindIsSuccess(t *testing.T) {
	res := handleEvent(strings.NewReader(`{"event_type":"ToolUse","session_id":"abc"}`), config.Default)

	if !res.Success {
		t.Errorf("ignored events exit successfully, got %+v", res)
	}
	if !strings.Contains(res.Message, "ToolUse") {
		t.Errorf("Message should name the ignored kind, got %q", res.Message)
	}
}

func TestHandleEvent_RecoversFromPanic(t *testing.T) {
	boom := func() config.Config { panic("config exploded") }

	res := handleEvent(strings.NewReader(`{"event_type":"Stop","session_id":"abc"}`), boom)
	if res.Success {
		t.Error("a panic must still produce a failure result")
	}
	if !strings.Contains(res.Error, "config exploded") {
		t.Errorf("Error = %q", res.Error)
	}
}

func TestResultJSONShape(t *testing.T) {
	out, err := json.Marshal(result{Success: true})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"success":true}` {
		t.Errorf("empty optional fields must be omitted, got %s", out)
	}
}
