package logx

import "log/slog"

// slogAdapter backs the Logger interface with a standard library slog.Logger.
type slogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter wraps the provided *slog.Logger as a Logger.
func NewSlogAdapter(l *slog.Logger) Logger {
	return &slogAdapter{l: l}
}

func (s *slogAdapter) Debug(msg string, fields ...Field) { s.l.Debug(msg, attrs(fields)...) }
func (s *slogAdapter) Info(msg string, fields ...Field)  { s.l.Info(msg, attrs(fields)...) }
func (s *slogAdapter) Warn(msg string, fields ...Field)  { s.l.Warn(msg, attrs(fields)...) }
func (s *slogAdapter) Error(msg string, fields ...Field) { s.l.Error(msg, attrs(fields)...) }

func (s *slogAdapter) With(fields ...Field) Logger {
	return &slogAdapter{l: s.l.With(attrs(fields)...)}
}

// Sync is a no-op; slog handlers write through.
func (s *slogAdapter) Sync() error { return nil }

func attrs(fields []Field) []any {
	out := make([]any, len(fields))
	for i, f := range fields {
		out[i] = slog.Any(f.Key, f.Value)
	}
	return out
}
