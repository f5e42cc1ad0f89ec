// Package logger provides the prefixed, colorized loggers used by every component.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/mazebot-solver/config"
	"github.com/sirupsen/logrus"
)

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes "[PREFIX] [LEVEL] message" lines, the prefix painted in the
// component color.
type Logger struct {
	entry *logrus.Logger
}

// New creates a logger writing to w.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, ErrEmptyPrefix
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})
	return &Logger{entry: l}, nil
}

// SetLevel changes the minimum level written. Unknown names are rejected.
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.entry.SetLevel(lvl)
	return nil
}

func (l *Logger) Debug(msg string) {
	l.entry.Debug(msg)
}

func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *Logger) Warning(msg string) {
	l.entry.Warning(msg)
}

func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

type prefixFormatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(e.Time.Format("2006/01/02 15:04:05 "))
	if f.color != "" {
		b.WriteString(f.color + "[" + f.prefix + "]" + config.ColorReset)
	} else {
		b.WriteString("[" + f.prefix + "]")
	}
	fmt.Fprintf(&b, " %s %s\n", levelTag(e.Level), e.Message)
	return b.Bytes(), nil
}

func levelTag(level logrus.Level) string {
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return config.LogErrorColor + "[ERROR]" + config.LogColorReset
	case logrus.WarnLevel:
		return config.LogWarnColor + "[WARNING]" + config.LogColorReset
	case logrus.InfoLevel:
		return config.LogInfoColor + "[INFO]" + config.LogColorReset
	default:
		return "[" + strings.ToUpper(level.String()) + "]"
	}
}
