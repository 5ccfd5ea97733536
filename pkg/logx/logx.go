// Package logx provides the service-wide leveled logger. It is intentionally
// small: a level gate over the standard writer with consistent prefixes, so
// every package logs the same way without threading a logger through every
// constructor.
package logx

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu    sync.Mutex
	level = LevelInfo
	out   io.Writer = os.Stderr
)

// SetLevel sets the minimum level that will be written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func write(l Level, msg string) {
	mu.Lock()
	defer mu.Unlock()
	if l < level {
		return
	}
	fmt.Fprintf(out, "%s %-5s %s\n", time.Now().Format("2006-01-02T15:04:05.000Z07:00"), l, msg)
}

func Debug(msg string)                  { write(LevelDebug, msg) }
func Debugf(format string, args ...any) { write(LevelDebug, fmt.Sprintf(format, args...)) }

func Info(msg string)                  { write(LevelInfo, msg) }
func Infof(format string, args ...any) { write(LevelInfo, fmt.Sprintf(format, args...)) }

func Warn(msg string)                  { write(LevelWarn, msg) }
func Warnf(format string, args ...any) { write(LevelWarn, fmt.Sprintf(format, args...)) }

func Error(msg string)                  { write(LevelError, msg) }
func Errorf(format string, args ...any) { write(LevelError, fmt.Sprintf(format, args...)) }

// Fatal logs at error level and exits the process.
func Fatal(msg string) {
	write(LevelError, msg)
	os.Exit(1)
}

func Fatalf(format string, args ...any) {
	write(LevelError, fmt.Sprintf(format, args...))
	os.Exit(1)
}
