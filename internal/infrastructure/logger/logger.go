package logger

import (
	"log"
	"strings"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger and routes the stdlib logger through it.
// format "json" or a production environment selects the JSON formatter.
func Setup(level, format string, production bool) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	if strings.EqualFold(format, "json") || (format == "" && production) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	log.SetFlags(0)
	log.SetOutput(logrus.StandardLogger().WriterLevel(logrus.InfoLevel))
	if err != nil && level != "" {
		logrus.WithField("level", level).Warn("[logger] unknown log level, using info")
	}
}
