// Package logger configures the process-wide logrus logger.
//
// All diagnostics go to stderr so stdout stays free for tables and
// piped data. Warnings (recovered per-item failures) and errors
// (fatal conditions) use distinct levels.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(logrus.InfoLevel)
}

// Setup applies the log level from configuration. Unknown levels fall
// back to info; debug=true always wins.
func Setup(level string, debug bool) {
	if debug {
		log.SetLevel(logrus.DebugLevel)
		return
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		return
	}
	log.SetLevel(parsed)
}

// WithField creates an entry with a single structured field.
func WithField(key string, value any) *logrus.Entry {
	return log.WithField(key, value)
}

// WithError creates an entry carrying an error field.
func WithError(err error) *logrus.Entry {
	return log.WithError(err)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

// Infof logs a formatted info message.
func Infof(format string, args ...any) {
	log.Infof(format, args...)
}

// Warnf logs a formatted warning. Used for recovered per-item failures.
func Warnf(format string, args ...any) {
	log.Warnf(format, args...)
}

// Errorf logs a formatted error. Used for fatal conditions.
func Errorf(format string, args ...any) {
	log.Errorf(format, args...)
}
