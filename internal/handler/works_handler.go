package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
	"github.com/qingliul/huangbinhong-backend-go/internal/service"
	"github.com/qingliul/huangbinhong-backend-go/pkg/response"
)

// WorksHandler handles HTTP requests under /api/works
type WorksHandler struct {
	worksService *service.WorksService
}

// NewWorksHandler creates a new works handler
func NewWorksHandler(worksService *service.WorksService) *WorksHandler {
	return &WorksHandler{worksService: worksService}
}

// List handles GET /api/works/list
func (h *WorksHandler) List(c *gin.Context) {
	var filter models.WorksFilter
	if !bindQuery(c, &filter) {
		return
	}
	page, err := h.worksService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, page)
}

// Detail handles GET /api/works/detail?works_id=
func (h *WorksHandler) Detail(c *gin.Context) {
	id, ok := queryID(c, "works_id", service.MsgWorksIDRequired)
	if !ok {
		return
	}
	detail, err := h.worksService.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, detail)
}

// ByTag handles GET /api/works/by-tag?tag_id=
func (h *WorksHandler) ByTag(c *gin.Context) {
	var filter models.WorksByTagFilter
	if !bindQuery(c, &filter) {
		return
	}
	page, err := h.worksService.ByTag(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, page)
}

// ByPeriod handles GET /api/works/by-period?period=
func (h *WorksHandler) ByPeriod(c *gin.Context) {
	var filter models.WorksByPeriodFilter
	if !bindQuery(c, &filter) {
		return
	}
	page, err := h.worksService.ByPeriod(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, page)
}

// CategoryStats handles GET /api/works/category/stats
func (h *WorksHandler) CategoryStats(c *gin.Context) {
	stats, err := h.worksService.CategoryStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, stats)
}

// CategoryStatsWithTotal handles GET /api/works/category/stats-with-total
func (h *WorksHandler) CategoryStatsWithTotal(c *gin.Context) {
	stats, err := h.worksService.CategoryStatsWithTotal(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, stats)
}

// Tags handles GET /api/works/tags
func (h *WorksHandler) Tags(c *gin.Context) {
	tags, err := h.worksService.Tags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, tags)
}

// SearchTags handles GET /api/works/tags/search?keyword=
func (h *WorksHandler) SearchTags(c *gin.Context) {
	tags, err := h.worksService.SearchTags(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, tags)
}
