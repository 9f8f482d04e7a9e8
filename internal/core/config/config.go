package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPushTemplate renders the mobile push body. Triple braces keep
// mustache from HTML-escaping the message text. Custom templates may also
// use {{project}} and {{time_since}}.
const DefaultPushTemplate = `{{{message}}}`

// Config is the resolved configuration, loaded once at process start and
// passed by value into the dispatcher.
type Config struct {
	FeishuWebhookURL   string `toml:"feishu_webhook_url"`
	IOSPushURL         string `toml:"ios_push_url"`
	IOSPushEnabled     bool   `toml:"ios_push_enabled"`
	NotificationEvents bool   `toml:"notification_events"`
	PushTemplate       string `toml:"push_template"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{PushTemplate: DefaultPushTemplate}
}

// UserPath is the user-level config file location.
func UserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ccnotify", "config.toml"), nil
}

// ProjectPath is the project-level config file in the working directory.
func ProjectPath() string {
	return ".ccnotify.toml"
}

// Load resolves config with precedence: environment variables > user file >
// project file > defaults. Missing or broken files fall through to the next
// layer.
func Load() Config {
	paths := []string{ProjectPath()}
	if user, err := UserPath(); err == nil {
		paths = append(paths, user)
	}
	return loadFrom(paths, os.Getenv)
}

// loadFrom layers files lowest-precedence first, then environment overrides.
func loadFrom(paths []string, getenv func(string) string) Config {
	cfg := Default()

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "ignoring config %s: %v\n", path, err)
		}
	}

	if v := getenv("FEISHU_WEBHOOK_URL"); v != "" {
		cfg.FeishuWebhookURL = v
	}
	if v := getenv("IOS_PUSH_URL"); v != "" {
		cfg.IOSPushURL = v
	}
	if v := getenv("IOS_PUSH_ENABLED"); v != "" {
		cfg.IOSPushEnabled = strings.EqualFold(v, "true")
	}
	if v := getenv("CC_NOTIFY_NOTIFICATION_EVENTS"); v != "" {
		cfg.NotificationEvents = strings.EqualFold(v, "true")
	}

	if cfg.PushTemplate == "" {
		cfg.PushTemplate = DefaultPushTemplate
	}
	return cfg
}

// Save writes cfg as TOML, creating parent directories as needed.
func Save(cfg Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
