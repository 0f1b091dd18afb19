// Package email delivers outbound mail for the hotel backend. The default
// implementation only logs the message, which is what the deployment uses
// until a real SMTP relay is provisioned.
package email

import (
	"context"
	"log/slog"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender writes every message to the structured log instead of
// delivering it. Safe for development and for the JSON-file deployment.
type LogSender struct {
	logger *slog.Logger
	from   string
}

func NewLogSender(logger *slog.Logger, from string) *LogSender {
	return &LogSender{logger: logger, from: from}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "email sent",
		slog.String("from", s.from),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("body_bytes", len(msg.Body)),
	)
	return nil
}
