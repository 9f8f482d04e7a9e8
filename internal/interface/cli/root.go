package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var versionInfo string

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ccnotify",
	Short: "Forward Claude Code session events to Feishu and Bark",
	Long: `ccnotify - push notifications for Claude Code sessions

Reads hook events from Claude Code, extracts the last assistant message from
the session transcript, and forwards a formatted card to a Feishu webhook
plus an optional short push to a Bark (iOS) endpoint.`,
	SilenceUsage: true,
}
