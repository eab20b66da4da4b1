// Package notify posts generation announcements, damage narration and
// failures to the table's chat channel.
package notify

//go:generate mockgen -destination=mock/mock_notifier.go -package=mocknotify -source=notifier.go

import (
	"context"
	"errors"
	"strings"
)

// Notifier posts a formatted message. Callers treat posting as fire-and-forget.
type Notifier interface {
	Post(ctx context.Context, msg *Message) error
}

// Field is a short labeled value rendered alongside the message body
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Message is channel-agnostic formatted content
type Message struct {
	Title   string
	Speaker string
	Lines   []string
	Fields  []Field
	// Error marks failure notices so channels can style them
	Error bool
}

// Body joins the message lines
func (m *Message) Body() string {
	return strings.Join(m.Lines, "\n")
}

type multi struct {
	notifiers []Notifier
}

// Multi posts every message to each notifier in turn and joins their errors
func Multi(notifiers ...Notifier) Notifier {
	var kept []Notifier
	for _, n := range notifiers {
		if n != nil {
			kept = append(kept, n)
		}
	}
	return &multi{notifiers: kept}
}

func (m *multi) Post(ctx context.Context, msg *Message) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.Post(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards every message
type Nop struct{}

// Post implements Notifier
func (Nop) Post(context.Context, *Message) error { return nil }
