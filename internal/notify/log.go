package notify

import (
	"context"
	"log/slog"
)

// LogNotifier writes messages to a structured logger
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier backed by logger, or slog.Default when nil
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Post implements Notifier
func (n *LogNotifier) Post(ctx context.Context, msg *Message) error {
	if msg == nil {
		return nil
	}

	attrs := []any{"speaker", msg.Speaker}
	for _, f := range msg.Fields {
		attrs = append(attrs, slog.String(f.Name, f.Value))
	}
	if len(msg.Lines) > 0 {
		attrs = append(attrs, "body", msg.Body())
	}

	level := slog.LevelInfo
	if msg.Error {
		level = slog.LevelError
	}
	n.logger.Log(ctx, level, msg.Title, attrs...)
	return nil
}
