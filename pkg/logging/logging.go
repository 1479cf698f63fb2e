// Package logging wraps logrus behind the handful of leveled helpers the
// services actually use. Call sites keep "[component]" message prefixes.
package logging

import (
	"os"

	logrus "github.com/sirupsen/logrus"
)

// Setup configures the process-wide logger. level is a logrus level name
// ("debug", "info", ...); unknown values fall back to info. jsonFormat
// switches the output from text to JSON lines.
func Setup(level string, jsonFormat bool) {
	logrus.SetOutput(os.Stdout)

	if jsonFormat {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	logrus.Fatalf(format, args...)
}
