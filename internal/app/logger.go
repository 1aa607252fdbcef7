package app

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}
func (NoopLogger) Debugf(component, format string, args ...interface{}) {}

const componentField = "component"

// LogrusLogger tags every entry with the component that produced it.
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger writes to w. debug enables Debugf output.
func NewLogrusLogger(w io.Writer, debug bool) LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(lineFormatter{})
	l.SetLevel(logrus.InfoLevel)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return LogrusLogger{log: l}
}

func (l LogrusLogger) Infof(component string, format string, args ...interface{}) {
	l.log.WithField(componentField, component).Infof(format, args...)
}

func (l LogrusLogger) Errorf(component string, format string, args ...interface{}) {
	l.log.WithField(componentField, component).Errorf(format, args...)
}

func (l LogrusLogger) Debugf(component string, format string, args ...interface{}) {
	l.log.WithField(componentField, component).Debugf(format, args...)
}

// lineFormatter renders "<RFC3339> [LEVEL] component: message key=value".
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(e.Time.Format(time.RFC3339))
	b.WriteString(" [")
	b.WriteString(strings.ToUpper(e.Level.String()))
	b.WriteString("] ")
	if component, ok := e.Data[componentField]; ok {
		fmt.Fprintf(&b, "%v: ", component)
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		if k != componentField {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
