package push

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSender stands in for FCM when no credentials are configured. Deliveries
// are logged instead of sent, which keeps local development working without
// a Firebase project.
type LogSender struct {
	log *zerolog.Logger
}

func NewLogSender(log *zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, subscription, title, body, link string) error {
	s.log.Info().
		Str("title", title).
		Str("body", body).
		Str("link", link).
		Msg("push delivery (log only)")
	return nil
}
