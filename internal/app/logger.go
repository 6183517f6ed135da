package app

import (
	"fmt"
	"io"
	"time"
)

// Logger is the debug log. Progress lines are not logged; they go to App.Out.
type Logger interface {
	Infof(component string, format string, args ...any)
	// Warnf records something the run recovered from, such as a label left
	// off an image.
	Warnf(component string, format string, args ...any)
	Errorf(component string, format string, args ...any)
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...any)  {}
func (NoopLogger) Warnf(component, format string, args ...any)  {}
func (NoopLogger) Errorf(component, format string, args ...any) {}

// FileLogger writes one timestamped line per entry. Entries below MinLevel
// are dropped.
type FileLogger struct {
	w        io.Writer
	MinLevel LogLevel
}

type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }

func (l FileLogger) Infof(component string, format string, args ...any) {
	l.write(LevelInfo, component, format, args...)
}
func (l FileLogger) Warnf(component string, format string, args ...any) {
	l.write(LevelWarn, component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...any) {
	l.write(LevelError, component, format, args...)
}

func (l FileLogger) write(level LogLevel, component, format string, args ...any) {
	if l.w == nil || level < l.MinLevel {
		return
	}
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(l.w, timestamp+" ["+level.String()+"] "+component+": "+msg+"\n")
}
