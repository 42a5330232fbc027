package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
	"github.com/qingliul/huangbinhong-backend-go/internal/service"
	"github.com/qingliul/huangbinhong-backend-go/pkg/response"
)

// RelationshipHandler handles HTTP requests under /api/huangbinhong
type RelationshipHandler struct {
	relationshipService *service.RelationshipService
}

// NewRelationshipHandler creates a new relationship handler
func NewRelationshipHandler(relationshipService *service.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{relationshipService: relationshipService}
}

// GetCore handles GET /api/huangbinhong/core
func (h *RelationshipHandler) GetCore(c *gin.Context) {
	core, err := h.relationshipService.GetCore(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, core)
}

// GetLocations handles GET /api/huangbinhong/locations
func (h *RelationshipHandler) GetLocations(c *gin.Context) {
	locations, err := h.relationshipService.GetLocations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, locations)
}

// GetFootprints handles GET /api/huangbinhong/footprints
func (h *RelationshipHandler) GetFootprints(c *gin.Context) {
	footprints, err := h.relationshipService.GetFootprints(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, footprints)
}

// GetFootprintRoute handles GET /api/huangbinhong/footprints/route
func (h *RelationshipHandler) GetFootprintRoute(c *gin.Context) {
	route, err := h.relationshipService.GetFootprintRoute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, route)
}

// GetLocationEvents handles GET /api/huangbinhong/location-events?location=
func (h *RelationshipHandler) GetLocationEvents(c *gin.Context) {
	events, err := h.relationshipService.GetLocationEvents(c.Request.Context(), c.Query("location"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, events)
}

// GetTimeline handles GET /api/huangbinhong/timeline
func (h *RelationshipHandler) GetTimeline(c *gin.Context) {
	events, err := h.relationshipService.GetTimelineEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, events)
}

// GetTimelineDetail handles GET /api/huangbinhong/timeline/detail?timeline_id=
func (h *RelationshipHandler) GetTimelineDetail(c *gin.Context) {
	id, ok := queryID(c, "timeline_id", service.MsgTimelineIDRequired)
	if !ok {
		return
	}
	event, err := h.relationshipService.GetTimelineEventByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, event)
}

// GetPersonDetail handles GET /api/huangbinhong/person/detail?person_id=
func (h *RelationshipHandler) GetPersonDetail(c *gin.Context) {
	id, ok := queryID(c, "person_id", service.MsgPersonIDRequired)
	if !ok {
		return
	}
	person, err := h.relationshipService.GetPersonByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, person)
}

// GetAll handles GET /api/huangbinhong/all
func (h *RelationshipHandler) GetAll(c *gin.Context) {
	all, err := h.relationshipService.GetAllData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, all)
}

// GetRelationships handles GET /api/huangbinhong/relationships[?person_id=]
func (h *RelationshipHandler) GetRelationships(c *gin.Context) {
	var filter models.RelationshipFilter
	if !bindQuery(c, &filter) {
		return
	}
	graph, err := h.relationshipService.GetRelationshipGraph(c.Request.Context(), filter.PersonID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, graph)
}
