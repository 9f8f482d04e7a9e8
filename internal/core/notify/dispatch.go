// Package notify formats session events into notification payloads and
// routes them to the configured delivery channels.
package notify

import (
	"fmt"
	"os"

	"github.com/kwchen/ccnotify/internal/core/classify"
	"github.com/kwchen/ccnotify/internal/core/config"
	"github.com/kwchen/ccnotify/internal/core/event"
	"github.com/kwchen/ccnotify/internal/core/transcript"
	"github.com/kwchen/ccnotify/pkg/bark"
	"github.com/kwchen/ccnotify/pkg/feishu"
)

// CardSender is the primary chat channel. Its outcome alone decides the
// process result.
type CardSender interface {
	Send(*feishu.Message) error
}

// PushSender is the secondary mobile channel. Failures are logged, never
// escalated.
type PushSender interface {
	Push(title, body string) error
}

// Status is the dispatch outcome category.
type Status int

const (
	Delivered Status = iota
	Ignored
	Failed
)

// Outcome reports how a single event was handled. Message is set for
// Ignored, Err for Failed.
type Outcome struct {
	Status  Status
	Message string
	Err     error
}

// Dispatcher routes one incoming event. Collaborators are fields so tests
// can inject stubs.
type Dispatcher struct {
	Config  config.Config
	Card    CardSender
	Push    PushSender
	Extract func(path string) transcript.Result
}

// New wires a dispatcher against the real Feishu and Bark clients.
func New(cfg config.Config) *Dispatcher {
	return &Dispatcher{
		Config:  cfg,
		Card:    feishu.NewClient(cfg.FeishuWebhookURL),
		Push:    bark.NewClient(cfg.IOSPushURL),
		Extract: transcript.ExtractLast,
	}
}

// Dispatch resolves the event kind and delivers to the matching channels.
// Unrecognized kinds are ignored, not failed.
func (d *Dispatcher) Dispatch(ev event.Event) Outcome {
	switch ev.Kind() {
	case event.KindStop:
		return d.dispatchStop(ev)

	case event.KindNotification:
		// Suppressed by default to cut interruption volume; the formatter
		// stays available behind the config toggle.
		if !d.Config.NotificationEvents {
			return Outcome{Status: Ignored, Message: "notification events are disabled"}
		}
		card := FormatNotification(ev)
		if d.Config.IOSPushEnabled && d.Config.IOSPushURL != "" {
			if err := d.Push.Push(card.Card.Header.Title.Content, "New notification received"); err != nil {
				fmt.Fprintf(os.Stderr, "push notification failed: %v\n", err)
			}
		}
		return d.deliver(card)

	default:
		kind := ev.Type
		if kind == "" {
			kind = string(event.KindUnknown)
		}
		return Outcome{Status: Ignored, Message: fmt.Sprintf("ignoring event type: %s", kind)}
	}
}

func (d *Dispatcher) dispatchStop(ev event.Event) Outcome {
	var ex transcript.Result
	if ev.TranscriptPath != "" {
		ex = d.Extract(ev.TranscriptPath)
	}

	cls := classify.Classify(ex.LastMessage, ev.StillActive())
	card := FormatStop(ev, ex, cls)

	if d.Config.IOSPushEnabled && d.Config.IOSPushURL != "" {
		body := PushSummary(d.Config.PushTemplate, ex)
		if err := d.Push.Push(card.Card.Header.Title.Content, body); err != nil {
			fmt.Fprintf(os.Stderr, "push notification failed: %v\n", err)
		}
	}

	return d.deliver(card)
}

func (d *Dispatcher) deliver(card *feishu.Message) Outcome {
	if err := d.Card.Send(card); err != nil {
		fmt.Fprintf(os.Stderr, "webhook delivery failed: %v\n", err)
		return Outcome{Status: Failed, Err: err}
	}
	return Outcome{Status: Delivered}
}
