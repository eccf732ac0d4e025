package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

// GetLogger returns the process-wide logger.
func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

// ApplyLogSettings adjusts the logger for the loaded configuration. Dev mode
// switches to the text formatter with debug level for readable terminal output.
func ApplyLogSettings(cfg *AppConfig) {
	if cfg.Server.DevMode {
		logg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logg.SetLevel(logrus.DebugLevel)
	}
}
