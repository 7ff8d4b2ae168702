package logger

import (
	"log/slog"
	"os"
)

// Logger is a thin wrapper around slog that pins a service name and an
// action attribute onto every line, emitted as JSON.
type Logger struct {
	handler *slog.Logger
}

func New(service string) *Logger {
	hostname, _ := os.Hostname()

	h := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	return &Logger{
		handler: h.With(
			slog.String("service", service),
			slog.String("hostname", hostname),
		),
	}
}

func (l *Logger) Info(action, message string, args ...any) {
	l.handler.Info(message, append([]any{slog.String("action", action)}, args...)...)
}

func (l *Logger) Warn(action, message string, args ...any) {
	l.handler.Warn(message, append([]any{slog.String("action", action)}, args...)...)
}

func (l *Logger) Error(action, message string, err error, args ...any) {
	attrs := []any{slog.String("action", action)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.handler.Error(message, append(attrs, args...)...)
}
