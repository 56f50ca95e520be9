package logger

import (
	"os"

	"padron-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewBootstrapLogger configures the process-level logger used during
// startup and shutdown, before and after the zap logger exists.
func NewBootstrapLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()
	switch internalConfig.App.Env {
	case "production":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{})
	}
	log.SetOutput(os.Stderr)
	return log
}
