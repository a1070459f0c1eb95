package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const pingTimeout = 2 * time.Second

// StatusResponse is the body of GET /status
type StatusResponse struct {
	Version          string `json:"version"`
	Uptime           string `json:"uptime"`
	UptimeSeconds    int64  `json:"uptime_seconds"`
	Guilds           int    `json:"guilds"`
	ConfiguredGuilds int64  `json:"configured_guilds"`
}

type statusController struct {
	startTime time.Time
	version   string
	db        Pinger
	session   GuildSource
	guilds    GuildCounter
	now       func() time.Time
}

func newStatusController(version string, db Pinger, session GuildSource, guilds GuildCounter) *statusController {
	return &statusController{
		startTime: time.Now(),
		version:   version,
		db:        db,
		session:   session,
		guilds:    guilds,
		now:       time.Now,
	}
}

// Health answers 200 while the database pings and 503 otherwise
func (sc *statusController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := sc.db.Ping(ctx); err != nil {
		log.WithError(err).Warn("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status reports uptime and guild counts
func (sc *statusController) Status(c *gin.Context) {
	uptime := sc.now().Sub(sc.startTime)
	resp := StatusResponse{
		Version:       sc.version,
		Uptime:        uptime.Truncate(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		Guilds:        sc.session.GuildCount(),
	}

	configured, err := sc.guilds.CountGuilds(c.Request.Context())
	if err != nil {
		log.WithError(err).Warn("Failed to count configured guilds")
		configured = -1
	}
	resp.ConfiguredGuilds = configured

	c.JSON(http.StatusOK, resp)
}
