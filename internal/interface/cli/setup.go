package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kwchen/ccnotify/internal/core/config"
	"github.com/kwchen/ccnotify/internal/core/hooks"
	"github.com/kwchen/ccnotify/internal/interface/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure notification channels and Claude Code hooks",
	Long: `Interactively configure the Feishu webhook and Bark push channel, write
the config file, and generate the hooks snippet for Claude Code's
settings.json (copied to the clipboard when possible).

Examples:
  ccnotify setup             Run the interactive form
  ccnotify setup --no-input  Only print the hooks snippet for the current config`,
	RunE: runSetup,
}

var setupNoInput bool

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&setupNoInput, "no-input", false, "Skip the form, just print the hooks snippet")
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if !setupNoInput {
		res, err := tui.RunSetupForm(cfg)
		if err != nil {
			return err
		}
		if res.Aborted {
			fmt.Println("Setup aborted, nothing written.")
			return nil
		}
		cfg = res.Config

		path := config.ProjectPath()
		if !res.ProjectScope {
			path, err = config.UserPath()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
		}
		if err := config.Save(cfg, path); err != nil {
			return err
		}
		fmt.Println(tui.OkStyle.Render("✅ Config written to " + path))
	}

	if cfg.FeishuWebhookURL == "" && cfg.IOSPushURL == "" {
		fmt.Println(tui.WarnStyle.Render("⚠️  No notification channel configured; events will fail to deliver."))
	}

	bin, err := os.Executable()
	if err != nil {
		bin = "ccnotify"
	}
	snippet, err := hooks.Snippet(bin)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Merge this into the \"hooks\" section of %s:\n\n", hooks.SettingsPath())
	fmt.Println(snippet)
	fmt.Println()

	if err := clipboard.WriteAll(snippet); err == nil {
		fmt.Println(tui.OkStyle.Render("✅ Snippet copied to clipboard"))
	} else {
		fmt.Println(tui.WarnStyle.Render("⚠️  Clipboard unavailable; copy the block above manually"))
	}

	fmt.Println("\nRestart Claude Code, then run `ccnotify test` to verify delivery.")
	return nil
}
