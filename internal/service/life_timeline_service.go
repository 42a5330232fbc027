package service

import (
	"context"
	"fmt"

	"github.com/qingliul/huangbinhong-backend-go/internal/aggregation"
	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

// LifeTimelineService serves the chronological biography
type LifeTimelineService struct {
	timeline    LifeTimelineStore
	urls        aggregation.URLResolver
	maxPageSize int
}

// NewLifeTimelineService creates a new life timeline service
func NewLifeTimelineService(timeline LifeTimelineStore, urls aggregation.URLResolver, maxPageSize int) *LifeTimelineService {
	return &LifeTimelineService{timeline: timeline, urls: urls, maxPageSize: maxPageSize}
}

// List returns one page of entries, optionally restricted to a year
func (s *LifeTimelineService) List(ctx context.Context, f models.LifeTimelineFilter) (*models.LifeTimelinePage, error) {
	p := aggregation.NormalizePagination(f.Page, f.Size, aggregation.DefaultTimelinePageSize, s.maxPageSize)
	q := models.LifeTimelineQuery{Year: f.Year, Offset: p.Offset(), Limit: p.Size}

	total, err := s.timeline.Count(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to count life timeline: %w", err)
	}
	list, err := s.timeline.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list life timeline: %w", err)
	}
	return &models.LifeTimelinePage{Total: total, List: list, Page: p.Page, Size: p.Size}, nil
}

// Detail returns an entry with the works linked to it
func (s *LifeTimelineService) Detail(ctx context.Context, id int) (*models.LifeTimelineDetail, error) {
	entry, err := s.timeline.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load life timeline %d: %w", id, err)
	}
	if entry == nil {
		return nil, notFound(MsgLifeTimelineMissing)
	}

	related, err := s.timeline.RelatedWorks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load works related to life timeline %d: %w", id, err)
	}
	if related == nil {
		related = []models.RelatedWorks{}
	}
	if s.urls != nil {
		for i := range related {
			related[i].ThumbnailURL = s.urls.Resolve(related[i].ThumbnailURL)
		}
	}
	return &models.LifeTimelineDetail{LifeTimeline: *entry, RelatedWorks: related}, nil
}

// YearArtStats returns per-year counts of entries and created works
func (s *LifeTimelineService) YearArtStats(ctx context.Context) ([]models.YearArtStat, error) {
	stats, err := s.timeline.YearArtStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load year art stats: %w", err)
	}
	return stats, nil
}
