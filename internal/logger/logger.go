package logger

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger emits structured JSON log lines. Every entry carries the service
// name, hostname, an action tag and the request id it belongs to.
type Logger struct {
	log zerolog.Logger
}

// New creates a logger for the given service name.
func New(service string) *Logger {
	hostname, _ := os.Hostname()

	zl := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", service).
		Str("hostname", hostname).
		Logger()

	return &Logger{log: zl}
}

// GenerateRequestID returns a new request id for correlating log entries.
func GenerateRequestID() string {
	return uuid.NewString()
}

func (l *Logger) Info(action, requestID, message string) {
	l.log.Info().
		Str("action", action).
		Str("request_id", requestID).
		Msg(message)
}

func (l *Logger) Debug(action, requestID, message string) {
	l.log.Debug().
		Str("action", action).
		Str("request_id", requestID).
		Msg(message)
}

func (l *Logger) Error(action, requestID, message string, err error) {
	l.log.Error().
		Str("action", action).
		Str("request_id", requestID).
		Err(err).
		Msg(message)
}
