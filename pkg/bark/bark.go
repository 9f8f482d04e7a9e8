// Package bark delivers short title/message pairs as iOS push notifications
// through a Bark server (https://github.com/Finb/Bark).
package bark

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultServer is used when the configured value is a bare device key
// rather than a full URL.
const DefaultServer = "https://api.day.app"

// emojiCleaner strips status emoji from incoming titles so the robot prefix
// added below does not stack with them.
var emojiCleaner = strings.NewReplacer(
	"🚨", "", "⏸️", "", "❌", "", "✅", "", "🤖", "", "🔧", "",
	"📢", "", "🛑", "", "🚀", "", "📝", "", "⚠️", "", "ℹ️", "",
)

// Client sends push notifications to a single Bark endpoint or device key.
type Client struct {
	URL  string
	HTTP *http.Client

	now func() time.Time
}

// NewClient creates a push client with a bounded request timeout.
func NewClient(url string) *Client {
	return &Client{
		URL:  url,
		HTTP: &http.Client{Timeout: 10 * time.Second},
		now:  time.Now,
	}
}

// Push sends one notification. The title has status emoji stripped and a
// robot prefix added; the body gets a local timestamp suffix.
func (c *Client) Push(title, body string) error {
	if c.URL == "" {
		return errors.New("bark URL not configured")
	}

	resp, err := c.HTTP.Get(c.requestURL(title, body))
	if err != nil {
		return fmt.Errorf("push to bark: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bark returned %s", resp.Status)
	}

	var result struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode bark response: %w", err)
	}
	if result.Code != 200 {
		return fmt.Errorf("bark rejected push: %s", result.Message)
	}
	return nil
}

func (c *Client) requestURL(title, body string) string {
	cleanTitle := "🤖 " + strings.TrimSpace(emojiCleaner.Replace(title))
	stamped := body + "\n\n" + c.now().Format("15:04:05")

	base := c.URL
	if !strings.HasPrefix(base, "http") {
		base = DefaultServer + "/" + base
	}
	base = strings.TrimRight(base, "/")

	params := url.Values{}
	params.Set("sound", "default")
	params.Set("group", "ClaudeCode")

	return base + "/" + url.PathEscape(cleanTitle) + "/" + url.PathEscape(stamped) + "?" + params.Encode()
}
