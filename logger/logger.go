package logger

import (
	"github.com/sirupsen/logrus"
)

var projectLogger = newLogger()

// GetProjectLogger returns the shared logger for the project. Components grab
// it at the top of a call rather than carrying it around.
func GetProjectLogger() *logrus.Entry {
	return projectLogger
}

func newLogger() *logrus.Entry {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return l.WithField("name", "cadence")
}

// SetLevel adjusts the verbosity of the project logger.
func SetLevel(level logrus.Level) {
	projectLogger.Logger.SetLevel(level)
}
