package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwchen/ccnotify/internal/core/config"
	"github.com/kwchen/ccnotify/internal/core/event"
	"github.com/kwchen/ccnotify/internal/core/notify"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Process one hook event from stdin",
	Long: `Read a single JSON hook event from stdin, deliver notifications, and
report the outcome as one JSON object on stdout.

This is the command Claude Code's Stop hook should run:

  {"type": "command", "command": "/path/to/ccnotify notify"}

Exit code is 0 on success or intentional ignore, 1 on delivery failure.`,
	RunE: runNotify,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
}

// result is the single JSON object written to stdout per invocation.
type result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runNotify(cmd *cobra.Command, args []string) error {
	res := handleEvent(os.Stdin, config.Load)

	out, err := json.Marshal(res)
	if err != nil {
		// Should never happen for this shape; still honor the contract of
		// one result object on stdout.
		out = []byte(`{"success":false,"error":"encode result"}`)
	}
	fmt.Println(string(out))

	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}

// handleEvent runs the full pipeline and is guaranteed to return a result,
// even when something inside panics.
func handleEvent(stdin io.Reader, loadConfig func() config.Config) (res result) {
	defer func() {
		if r := recover(); r != nil {
			res = result{Success: false, Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	raw, err := io.ReadAll(stdin)
	if err != nil {
		return result{Success: false, Error: fmt.Sprintf("read stdin: %v", err)}
	}

	ev, err := event.Parse(raw)
	if err != nil {
		return result{Success: false, Error: err.Error()}
	}

	outcome := notify.New(loadConfig()).Dispatch(ev)
	switch outcome.Status {
	case notify.Ignored:
		return result{Success: true, Message: outcome.Message}
	case notify.Failed:
		return result{Success: false, Error: outcome.Err.Error()}
	default:
		return result{Success: true}
	}
}
