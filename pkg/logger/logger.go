package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Init configures the process-wide structured logger. Development runs get
// colored text output at debug level; everything else gets JSON at info level
// unless LOG_LEVEL overrides it.
func Init(env string) *logrus.Logger {
	log := logrus.New()

	isDevelopment := env == "development"

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		if isDevelopment {
			logLevel = "debug"
		} else {
			logLevel = "info"
		}
	}

	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("Invalid LOG_LEVEL, using INFO")
	}

	if !isDevelopment || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	log.SetOutput(os.Stdout)
	return log
}

// WithComponent returns an entry tagged with the originating component.
func WithComponent(log *logrus.Logger, component string) *logrus.Entry {
	return log.WithField("component", component)
}
