package transcript

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTranscript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.jsonl")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write transcript: %v", err)
	}
	return path
}

func TestExtractLast_LastTextWins(t *testing.T) {
	path := writeTranscript(t, `{"message":{"content":[{"type":"text","text":"first"}]}}
{"message":{"content":[{"type":"tool_use","name":"Bash"}]}}
{"message":{"content":[{"type":"text","text":"second"},{"type":"text","text":"third"}]}}
`)

	res := ExtractLast(path)
	if res.LastMessage != "third" {
		t.Errorf("LastMessage = %q, want 'third'", res.LastMessage)
	}
}

func TestExtractLast_MalformedLinesSkipped(t *testing.T) {
	path := writeTranscript(t, `{"message":{"content":[{"type":"text","text":"good"}]}}
this line is not JSON at all {{{
{"cwd":"/tmp/project"}
`)

	res := ExtractLast(path)
	if res.LastMessage != "good" {
		t.Errorf("LastMessage = %q, want 'good'", res.LastMessage)
	}
	if res.WorkingDir != "/tmp/project" {
		t.Errorf("WorkingDir = %q, want '/tmp/project'", res.WorkingDir)
	}
}

func TestExtractLast_MissingFile(t *testing.T) {
	res := ExtractLast(filepath.Join(t.TempDir(), "nope.jsonl"))
	if res.LastMessage != "" || res.WorkingDir != "" {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestExtractLast_CwdPrecedence(t *testing.T) {
	// workspace first, then message.cwd on a later line, then a line where
	// both cwd and workspace appear: cwd wins for that line, and across
	// lines the latest non-empty value wins.
	path := writeTranscript(t, `{"workspace":"/a"}
{"message":{"cwd":"/b","content":[]}}
{"cwd":"/c","workspace":"/x"}
`)

	res := ExtractLast(path)
	if res.WorkingDir != "/c" {
		t.Errorf("WorkingDir = %q, want '/c'", res.WorkingDir)
	}
}

func TestExtractLast_WorkingDirectoryField(t *testing.T) {
	path := writeTranscript(t, `{"workingDirectory":"/srv/app"}
`)

	res := ExtractLast(path)
	if res.WorkingDir != "/srv/app" {
		t.Errorf("WorkingDir = %q, want '/srv/app'", res.WorkingDir)
	}
}

func TestExtractLast_ToleratesOddShapes(t *testing.T) {
	// blank lines, string content, string message, empty text blocks
	path := writeTranscript(t, `
{"message":{"content":"plain string content"}}

{"message":"not an object"}
{"message":{"content":[{"type":"text","text":""}]}}
{"message":{"content":[{"type":"text","text":"kept"}]}}
`)

	res := ExtractLast(path)
	if res.LastMessage != "kept" {
		t.Errorf("LastMessage = %q, want 'kept'", res.LastMessage)
	}
}

func TestExtractLast_Timestamp(t *testing.T) {
	path := writeTranscript(t, `{"timestamp":"2026-08-01T10:00:00Z"}
{"timestamp":"not a timestamp"}
{"timestamp":"2026-08-01T11:30:00Z"}
`)

	res := ExtractLast(path)
	want := time.Date(2026, 8, 1, 11, 30, 0, 0, time.UTC)
	if !res.LastTimestamp.Equal(want) {
		t.Errorf("LastTimestamp = %v, want %v", res.LastTimestamp, want)
	}
}

func TestExtractLast_SampleFixture(t *testing.T) {
	res := ExtractLast("testdata/sample.jsonl")

	if res.LastMessage != "Done. All three tests pass now." {
		t.Errorf("LastMessage = %q", res.LastMessage)
	}
	if res.WorkingDir != "/home/dev/widgets" {
		t.Errorf("WorkingDir = %q", res.WorkingDir)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}

	got := expandHome("~/logs/session.jsonl")
	want := filepath.Join(home, "logs", "session.jsonl")
	if got != want {
		t.Errorf("expandHome = %q, want %q", got, want)
	}

	if got := expandHome("/abs/path.jsonl"); got != "/abs/path.jsonl" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := expandHome("~user/x"); got != "~user/x" {
		t.Errorf("~user should not expand, got %q", got)
	}
}
