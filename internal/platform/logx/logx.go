// internal/platform/logx/logx.go
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
	SetLevel(lvl Level)
}

type ptermLogger struct {
	mu    *sync.Mutex
	lvl   *Level
	scope []any // pares key/value fijos
	lg    *pterm.Logger
}

// New crea un logger leyendo el nivel de SETUP_VIM_LOG_LEVEL.
// RUNNER_DEBUG=1 (debug logging de GitHub Actions) fuerza debug.
func New() Logger {
	lvl := parseLevel(os.Getenv("SETUP_VIM_LOG_LEVEL"))
	if os.Getenv("RUNNER_DEBUG") == "1" {
		lvl = LevelDebug
	}
	return NewWithWriter(os.Stderr, lvl)
}

// NewWithLevel creates a logger with a specific log level
func NewWithLevel(lvl Level) Logger {
	return NewWithWriter(os.Stderr, lvl)
}

// NewWithWriter creates a logger writing to w. Tests use it with a buffer.
func NewWithWriter(w io.Writer, lvl Level) Logger {
	lg := pterm.DefaultLogger.
		WithWriter(w).
		WithTime(false).
		WithLevel(pterm.LogLevelTrace)
	return &ptermLogger{
		mu:  &sync.Mutex{},
		lvl: &lvl,
		lg:  lg,
	}
}

// NewDiscard creates a logger that drops everything.
func NewDiscard() Logger {
	return NewWithWriter(io.Discard, LevelError+1)
}

func (s *ptermLogger) With(kv ...any) Logger {
	clone := *s
	clone.scope = append(append([]any{}, s.scope...), evenPairs(kv...)...)
	return &clone
}

func (s *ptermLogger) SetLevel(lvl Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.lvl = lvl
}

func (s *ptermLogger) Debug(msg string, kv ...any) { s.log(LevelDebug, msg, kv...) }
func (s *ptermLogger) Info(msg string, kv ...any)  { s.log(LevelInfo, msg, kv...) }
func (s *ptermLogger) Warn(msg string, kv ...any)  { s.log(LevelWarn, msg, kv...) }
func (s *ptermLogger) Err(err error, kv ...any) {
	if err == nil {
		return
	}
	kv = append([]any{"error", err.Error()}, kv...)
	s.log(LevelError, "error", kv...)
}

func (s *ptermLogger) log(l Level, msg string, kv ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l < *s.lvl {
		return
	}
	fields := append(append([]any{}, s.scope...), evenPairs(kv...)...)
	args := s.lg.Args(stringifyValues(fields)...)
	switch l {
	case LevelDebug:
		s.lg.Debug(msg, args)
	case LevelInfo:
		s.lg.Info(msg, args)
	case LevelWarn:
		s.lg.Warn(msg, args)
	default:
		s.lg.Error(msg, args)
	}
}

// evenPairs completa pares impares con "(missing)".
func evenPairs(kv ...any) []any {
	out := make([]any, 0, len(kv)+1)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, fmt.Sprint(kv[i]))
		if i+1 < len(kv) {
			out = append(out, kv[i+1])
		} else {
			out = append(out, "(missing)")
		}
	}
	return out
}

// stringifyValues renders slices and errors the same way on every formatter.
func stringifyValues(kv []any) []any {
	out := make([]any, len(kv))
	for i, v := range kv {
		switch x := v.(type) {
		case []string:
			out[i] = strings.Join(x, " ")
		case error:
			out[i] = x.Error()
		default:
			out[i] = v
		}
	}
	return out
}

func parseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug
	case "info", "inf", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "err", "error":
		return LevelError
	default:
		return LevelInfo
	}
}
