package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthController reports service and database health
type HealthController struct {
	pool *pgxpool.Pool
}

// NewHealthController creates a new HealthController
func NewHealthController(pool *pgxpool.Pool) *HealthController {
	return &HealthController{pool: pool}
}

// Health handles GET /health
func (c *HealthController) Health(ctx *gin.Context) {
	dbStatus := "connected"
	status := http.StatusOK

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.pool.Ping(pingCtx); err != nil {
		dbStatus = "disconnected"
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, gin.H{
		"status":    "EduTrack API is running",
		"database":  dbStatus,
		"timestamp": time.Now(),
	})
}
