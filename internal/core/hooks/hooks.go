// Package hooks generates the Claude Code settings fragment that wires the
// notifier into the Stop hook.
package hooks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type hookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

type hookMatcher struct {
	Matcher string        `json:"matcher"`
	Hooks   []hookCommand `json:"hooks"`
}

type settings struct {
	Hooks map[string][]hookMatcher `json:"hooks"`
}

// Snippet renders the JSON block to merge into Claude Code's settings so
// that session end runs "<binary> notify".
func Snippet(binPath string) (string, error) {
	s := settings{
		Hooks: map[string][]hookMatcher{
			"Stop": {{
				Matcher: "",
				Hooks:   []hookCommand{{Type: "command", Command: binPath + " notify"}},
			}},
		},
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode hooks snippet: %w", err)
	}
	return string(out), nil
}

// SettingsPath returns the first existing Claude Code settings.json, or the
// conventional default when none exists yet.
func SettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".claude", "settings.json")
	}

	candidates := []string{
		filepath.Join(home, ".claude", "settings.json"),
		filepath.Join(home, "Library", "Application Support", "Claude", "settings.json"),
		filepath.Join(home, "AppData", "Roaming", "Claude", "settings.json"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return candidates[0]
}
