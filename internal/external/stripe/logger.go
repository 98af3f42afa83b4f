package stripe

import (
	"fmt"
	"log/slog"
)

// LeveledLogger routes stripe-go diagnostics into slog.
type LeveledLogger struct {
	l *slog.Logger
}

func NewLeveledLogger(l *slog.Logger) *LeveledLogger {
	return &LeveledLogger{l: l.With(slog.String("component", "stripe"))}
}

func (s *LeveledLogger) Debugf(format string, v ...interface{}) {
	s.l.Debug(fmt.Sprintf(format, v...))
}

// Infof is demoted to debug: stripe-go logs every request at info.
func (s *LeveledLogger) Infof(format string, v ...interface{}) {
	s.l.Debug(fmt.Sprintf(format, v...))
}

func (s *LeveledLogger) Warnf(format string, v ...interface{}) {
	s.l.Warn(fmt.Sprintf(format, v...))
}

func (s *LeveledLogger) Errorf(format string, v ...interface{}) {
	s.l.Error(fmt.Sprintf(format, v...))
}
