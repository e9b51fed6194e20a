package service

import (
	"context"

	"nadbot/internal/platform/logger"
)

// LogSender writes reminders to the log instead of a chat transport.
// Stands in until a LINE push adapter exists
type LogSender struct {
	Log logger.Logger
}

// Send logs the reminder payload
func (l LogSender) Send(_ context.Context, chatID, message string) error {
	l.Log.Info().
		Str("chat_id", chatID).
		Str("message", message).
		Msg("reminder dispatched")
	return nil
}
