package storage

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
)

// badgerLogger routes badger's printf-style logging into logr. Badger is
// chatty at info level, so its info and debug output go to V(2) and V(3).
type badgerLogger struct {
	log logr.Logger
}

func newBadgerLogger(log logr.Logger) *badgerLogger {
	return &badgerLogger{log: log.WithName("badger")}
}

func msg(format string, args ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(nil, msg(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Info(msg(format, args...), "level", "warning")
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.V(2).Info(msg(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.V(3).Info(msg(format, args...))
}
