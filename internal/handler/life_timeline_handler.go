package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
	"github.com/qingliul/huangbinhong-backend-go/internal/service"
	"github.com/qingliul/huangbinhong-backend-go/pkg/response"
)

// LifeTimelineHandler handles HTTP requests under /api/timeline
type LifeTimelineHandler struct {
	lifeTimelineService *service.LifeTimelineService
}

// NewLifeTimelineHandler creates a new life timeline handler
func NewLifeTimelineHandler(lifeTimelineService *service.LifeTimelineService) *LifeTimelineHandler {
	return &LifeTimelineHandler{lifeTimelineService: lifeTimelineService}
}

// List handles GET /api/timeline/list
func (h *LifeTimelineHandler) List(c *gin.Context) {
	var filter models.LifeTimelineFilter
	if !bindQuery(c, &filter) {
		return
	}
	page, err := h.lifeTimelineService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, page)
}

// Detail handles GET /api/timeline/detail?timeline_id=
func (h *LifeTimelineHandler) Detail(c *gin.Context) {
	id, ok := queryID(c, "timeline_id", service.MsgTimelineIDRequired)
	if !ok {
		return
	}
	detail, err := h.lifeTimelineService.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, detail)
}

// YearArtStats handles GET /api/timeline/year/art-stats
func (h *LifeTimelineHandler) YearArtStats(c *gin.Context) {
	stats, err := h.lifeTimelineService.YearArtStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, stats)
}
