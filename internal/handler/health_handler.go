package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qingliul/huangbinhong-backend-go/internal/logging"
	"github.com/qingliul/huangbinhong-backend-go/pkg/response"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports liveness together with database reachability
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("health check: database unreachable")
		response.ErrorWithData(c, http.StatusServiceUnavailable, "数据库不可用", gin.H{"database": "down"})
		return
	}
	response.Success(c, gin.H{"status": "ok", "database": "up"})
}
