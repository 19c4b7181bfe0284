// Package logging holds the logger shared by every uniplot package.
//
// By default nothing is written. The CLI calls Setup to send records to
// stderr; library users may call SetLogger with their own logrus logger.
package logging

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newSilent())
}

func newSilent() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger replaces the shared logger. Passing nil restores the silent default.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newSilent()
	}
	loggerPtr.Store(l)
}

// Logger returns the shared logger.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}

// Setup builds a text logger writing to w at the named level
// ("debug", "info", "warn", ...) and installs it.
func Setup(w io.Writer, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	SetLogger(l)
	return nil
}

// For returns an entry tagged with the emitting component.
func For(component string) *logrus.Entry {
	return Logger().WithField("component", component)
}
