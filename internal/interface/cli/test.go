package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kwchen/ccnotify/internal/core/config"
	"github.com/kwchen/ccnotify/internal/core/event"
	"github.com/kwchen/ccnotify/internal/core/notify"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a test notification through the configured channels",
	Long: `Fabricate a session-end event with a small synthetic transcript and run
it through the real pipeline, so every configured channel gets exercised.

Examples:
  ccnotify test            Send a success-style test card
  ccnotify test --error    Send a failure-style test card`,
	RunE: runTest,
}

var testError bool

func init() {
	rootCmd.AddCommand(testCmd)

	testCmd.Flags().BoolVar(&testError, "error", false, "Simulate a failed session")
}

func runTest(cmd *cobra.Command, args []string) error {
	sessionID := uuid.NewString()

	transcriptPath, err := writeSampleTranscript(sessionID)
	if err != nil {
		return fmt.Errorf("write sample transcript: %w", err)
	}
	defer func() { _ = os.Remove(transcriptPath) }()

	active := false
	ev := event.Event{
		Type:           "Stop",
		SessionID:      sessionID,
		TranscriptPath: transcriptPath,
		StopHookActive: &active,
	}

	outcome := notify.New(config.Load()).Dispatch(ev)
	if outcome.Status == notify.Failed {
		return fmt.Errorf("test delivery failed: %w", outcome.Err)
	}

	fmt.Println("Test notification sent. Check your Feishu channel and phone.")
	return nil
}

// writeSampleTranscript creates a throwaway two-line transcript so the test
// exercises extraction and classification, not just delivery.
func writeSampleTranscript(sessionID string) (string, error) {
	text := "This is a test notification from ccnotify. Everything is wired up."
	if testError {
		text = "API Error: this is a simulated failure from ccnotify test."
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	lines := fmt.Sprintf(
		`{"session_id":%q,"cwd":%q,"message":{"content":[{"type":"text","text":"Starting test session."}]}}
{"session_id":%q,"message":{"content":[{"type":"text","text":%q}]}}
`, sessionID, cwd, sessionID, text)

	path := filepath.Join(os.TempDir(), "ccnotify-test-"+sessionID+".jsonl")
	if err := os.WriteFile(path, []byte(lines), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
