package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler handles health and system endpoints
type SystemHandler struct {
	BaseHandler
	db        Pinger
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// Health reports service and database health
func (h *SystemHandler) Health(c *gin.Context) {
	dbStatus := "up"
	if err := h.db.Ping(); err != nil {
		dbStatus = "down"
	}
	h.Success(c, gin.H{
		"status":     "ok",
		"database":   dbStatus,
		"go_version": runtime.Version(),
		"uptime":     time.Since(h.startTime).Round(time.Second).String(),
	})
}

// RegisterRoutes registers system endpoints
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}
