package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds a logger. LOG_LEVEL and LOG_FORMAT override the arguments when
// set. An unknown level falls back to info.
func New(level, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		level = v
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if v, ok := os.LookupEnv("LOG_FORMAT"); ok && v != "" {
		format = v
	}
	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)
	return log
}
