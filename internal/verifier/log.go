package verifier

import (
	"bufio"
	"encoding/json"
	"io"
	"time"
)

// Logger emits one JSON object per line.
type Logger struct {
	w *bufio.Writer
}

type logLine struct {
	TS    time.Time      `json:"ts"`
	Level string         `json:"level"`
	Scope string         `json:"scope"`
	Msg   string         `json:"msg"`
	Meta  map[string]any `json:"meta,omitempty"`
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{w: bufio.NewWriter(w)}
}

func (l *Logger) write(level, scope, msg string, meta map[string]any) {
	line := logLine{TS: time.Now(), Level: level, Scope: scope, Msg: msg, Meta: meta}
	b, _ := json.Marshal(line)
	l.w.Write(b)
	l.w.WriteByte('\n')
	l.w.Flush()
}

func (l *Logger) Info(scope, msg string, meta map[string]any) {
	l.write("info", scope, msg, meta)
}

func (l *Logger) Warn(scope, msg string, meta map[string]any) {
	l.write("warn", scope, msg, meta)
}
