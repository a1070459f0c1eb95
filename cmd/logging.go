package cmd

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// setupLogging configures the global logger. Production logs are JSON so
// the log shipper can parse fields.
func setupLogging(level, environment string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	if environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
