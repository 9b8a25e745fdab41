package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

type Level int

const (
	LevelError = Level(iota)
	LevelWarning
	LevelInfo
	LevelDebug
)

func (level Level) String() string {
	switch level {
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(level))
	}
}

// LevelFromVerbosity maps the number of -v flags onto a log level.  The
// default (no -v) logs info and above.
func LevelFromVerbosity(verbosity int) Level {
	level := LevelInfo + Level(verbosity)
	if level > LevelDebug {
		return LevelDebug
	}
	return level
}

// Logger writes leveled, optionally colorized, messages.  Colorization is
// controlled per logger and ignores fatih/color's global NoColor setting.
type Logger struct {
	Level Level

	mutex    sync.Mutex
	writer   io.Writer
	useColor bool
}

func NewLogger(writer io.Writer, level Level, useColor bool) *Logger {
	if writer == nil {
		writer = os.Stderr
	}

	return &Logger{
		Level:    level,
		writer:   writer,
		useColor: useColor,
	}
}

func (l *Logger) helper(
	level Level,
	format string,
	a []interface{},
	msgColor *color.Color,
) {
	if level > l.Level {
		return
	}

	if l.useColor {
		msgColor.EnableColor()
	} else {
		msgColor.DisableColor()
	}

	logMsg := msgColor.Sprintf(format, a...)

	l.mutex.Lock()
	defer l.mutex.Unlock()
	fmt.Fprintln(l.writer, logMsg)
}

func (l *Logger) Debug(format string, a ...interface{}) {
	l.helper(LevelDebug, format, a, color.New(color.FgBlue, color.Italic))
}

func (l *Logger) Info(format string, a ...interface{}) {
	l.helper(LevelInfo, format, a, color.New(color.FgBlue))
}

func (l *Logger) Warning(format string, a ...interface{}) {
	l.helper(LevelWarning, format, a, color.New(color.FgHiYellow))
}

func (l *Logger) Error(format string, a ...interface{}) {
	l.helper(LevelError, format, a, color.New(color.FgHiRed, color.Bold))
}

// Success is always printed.
func (l *Logger) Success(format string, a ...interface{}) {
	l.helper(LevelError, format, a, color.New(color.FgHiGreen, color.Bold))
}
