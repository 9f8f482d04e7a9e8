// Package transcript recovers the last assistant message and working
// directory from a Claude Code session transcript (line-delimited JSON).
package transcript

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Result holds whatever could be recovered from a transcript. All fields may
// be zero: a missing or unreadable file is not an error for callers.
type Result struct {
	LastMessage   string
	WorkingDir    string
	LastTimestamp time.Time
}

// rawRecord is one transcript line. Message stays raw because its shape
// varies across transcript versions.
type rawRecord struct {
	CWD              string          `json:"cwd"`
	Workspace        string          `json:"workspace"`
	WorkingDirectory string          `json:"workingDirectory"`
	Timestamp        string          `json:"timestamp"`
	Message          json.RawMessage `json:"message"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// cwdStrategies are tried in order for each record; the first non-empty
// result wins for that line.
var cwdStrategies = []func(*rawRecord) string{
	func(r *rawRecord) string { return r.CWD },
	func(r *rawRecord) string { return r.Workspace },
	func(r *rawRecord) string { return r.WorkingDirectory },
	func(r *rawRecord) string {
		var msg struct {
			CWD string `json:"cwd"`
		}
		if len(r.Message) == 0 || json.Unmarshal(r.Message, &msg) != nil {
			return ""
		}
		return msg.CWD
	},
}

// ExtractLast scans a transcript in file order and returns the accumulated
// result. Later lines always override earlier ones. Any failure (missing
// file, unreadable file, corrupt lines) degrades to whatever was recovered
// so far; diagnostics go to stderr.
func ExtractLast(path string) Result {
	var res Result

	expanded := expandHome(path)
	info, err := os.Stat(expanded)
	if err != nil {
		fmt.Fprintf(os.Stderr, "transcript not found: %s\n", expanded)
		return res
	}

	file, err := os.Open(expanded)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open transcript: %v\n", err)
		return res
	}
	defer func() { _ = file.Close() }()

	// Transcript lines can be very long (tool output); match the 10MB cap
	// used elsewhere for these files.
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 10*1024*1024)

	lineNum := 0
	textCount := 0

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		lineNum++

		var rec rawRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			fmt.Fprintf(os.Stderr, "transcript line %d: %v\n", lineNum, err)
			continue
		}

		for _, strategy := range cwdStrategies {
			if cwd := strategy(&rec); cwd != "" {
				res.WorkingDir = cwd
				break
			}
		}

		if rec.Timestamp != "" {
			if ts, err := time.Parse(time.RFC3339, rec.Timestamp); err == nil {
				res.LastTimestamp = ts
			}
		}

		if text, n := lastText(rec.Message); n > 0 {
			res.LastMessage = text
			textCount += n
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "transcript read aborted: %v\n", err)
	}

	fmt.Fprintf(os.Stderr, "transcript scan: %d lines, %d text messages, cwd=%q, %s\n",
		lineNum, textCount, res.WorkingDir, humanize.Bytes(uint64(info.Size())))
	return res
}

// lastText returns the last non-empty text block in message.content and the
// number of qualifying blocks. Messages without an object/array shape yield
// nothing.
func lastText(message json.RawMessage) (string, int) {
	if len(message) == 0 {
		return "", 0
	}
	var msg struct {
		Content []json.RawMessage `json:"content"`
	}
	if json.Unmarshal(message, &msg) != nil {
		return "", 0
	}

	last := ""
	count := 0
	for _, item := range msg.Content {
		var block contentBlock
		if json.Unmarshal(item, &block) != nil {
			continue
		}
		if block.Type == "text" && block.Text != "" {
			last = block.Text
			count++
		}
	}
	return last, count
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
