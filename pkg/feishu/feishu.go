// Package feishu builds and delivers Feishu interactive card messages
// (card schema 2.0) through a bot webhook.
package feishu

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Message is the top-level webhook payload.
type Message struct {
	MsgType string `json:"msg_type"`
	Card    Card   `json:"card"`
}

// Card is an interactive card in the 2.0 schema.
type Card struct {
	Schema string `json:"schema"`
	Header Header `json:"header"`
	Body   Body   `json:"body"`
}

// Header holds the card title and theme color.
type Header struct {
	Title    Title  `json:"title"`
	Template string `json:"template,omitempty"`
	Padding  string `json:"padding"`
}

// Title is the plain-text header content.
type Title struct {
	Tag     string `json:"tag"`
	Content string `json:"content"`
}

// Body holds the vertical stack of card elements.
type Body struct {
	Direction string    `json:"direction"`
	Padding   string    `json:"padding"`
	Elements  []Element `json:"elements"`
}

// Element is a single card element. Only markdown elements are used here.
type Element struct {
	Tag       string `json:"tag"`
	Content   string `json:"content"`
	TextAlign string `json:"text_align"`
	TextSize  string `json:"text_size"`
	Margin    string `json:"margin"`
}

const cardPadding = "12px 12px 12px 12px"

// NewCard builds a single-element markdown card. template selects the header
// theme color ("red", "green"); an empty template leaves the default theme.
func NewCard(title, template, markdown string) *Message {
	return &Message{
		MsgType: "interactive",
		Card: Card{
			Schema: "2.0",
			Header: Header{
				Title:    Title{Tag: "plain_text", Content: title},
				Template: template,
				Padding:  cardPadding,
			},
			Body: Body{
				Direction: "vertical",
				Padding:   cardPadding,
				Elements: []Element{{
					Tag:       "markdown",
					Content:   markdown,
					TextAlign: "left",
					TextSize:  "normal",
					Margin:    "0px 0px 0px 0px",
				}},
			},
		},
	}
}

// Client posts card messages to a bot webhook URL.
type Client struct {
	URL  string
	HTTP *http.Client
}

// NewClient creates a webhook client with a bounded request timeout.
func NewClient(url string) *Client {
	return &Client{
		URL:  url,
		HTTP: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send delivers one message. A non-2xx response is an error.
func (c *Client) Send(msg *Message) error {
	if c.URL == "" {
		return errors.New("feishu webhook URL not configured")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode card: %w", err)
	}

	resp, err := c.HTTP.Post(c.URL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("post to feishu: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("feishu returned %s: %s", resp.Status, bytes.TrimSpace(body))
	}
	return nil
}
