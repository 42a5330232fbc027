package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/qingliul/huangbinhong-backend-go/internal/aggregation"
	"github.com/qingliul/huangbinhong-backend-go/internal/logging"
	"github.com/qingliul/huangbinhong-backend-go/internal/metrics"
	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

// WorksService serves works listings, details, tags and statistics
type WorksService struct {
	works       WorksStore
	shaper      *aggregation.Shaper
	metrics     *metrics.Manager
	maxPageSize int
}

// NewWorksService creates a new works service. urls rewrites stored image
// paths; maxPageSize caps the page size of listings.
func NewWorksService(works WorksStore, urls aggregation.URLResolver, maxPageSize int, m *metrics.Manager) *WorksService {
	if m == nil {
		m = metrics.Default()
	}
	return &WorksService{
		works:       works,
		shaper:      aggregation.NewShaper(works, urls, m),
		metrics:     m,
		maxPageSize: maxPageSize,
	}
}

func (s *WorksService) page(ctx context.Context, q models.WorksQuery, p aggregation.Pagination) (*models.WorksPage, error) {
	total, err := s.works.Count(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to count works: %w", err)
	}
	rows, err := s.works.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}
	return &models.WorksPage{
		Total: total,
		List:  s.shaper.Shape(ctx, rows),
		Page:  p.Page,
		Size:  p.Size,
	}, nil
}

// List returns one page of works matching the filter
func (s *WorksService) List(ctx context.Context, f models.WorksFilter) (*models.WorksPage, error) {
	p := aggregation.NormalizePagination(f.Page, f.Size, aggregation.DefaultWorksPageSize, s.maxPageSize)
	q, err := aggregation.BuildWorksQuery(f, p)
	if errors.Is(err, aggregation.ErrInvalidIDList) {
		return nil, invalidArgument(MsgTagIDsInvalid)
	}
	if err != nil {
		return nil, err
	}
	return s.page(ctx, q, p)
}

// ByTag returns one page of works carrying the tag
func (s *WorksService) ByTag(ctx context.Context, f models.WorksByTagFilter) (*models.WorksPage, error) {
	if f.TagID <= 0 {
		return nil, invalidArgument(MsgTagIDPositive)
	}
	p := aggregation.NormalizePagination(f.Page, f.Size, aggregation.DefaultTagPageSize, s.maxPageSize)
	q := models.WorksQuery{TagIDs: []int{f.TagID}, Offset: p.Offset(), Limit: p.Size}

	result, err := s.page(ctx, q, p)
	if err != nil {
		return nil, err
	}
	tagID := f.TagID
	result.TagID = &tagID
	return result, nil
}

// ByPeriod returns one page of works created in an art period
func (s *WorksService) ByPeriod(ctx context.Context, f models.WorksByPeriodFilter) (*models.WorksPage, error) {
	r, err := aggregation.PeriodRange(f.Period)
	if err != nil {
		return nil, invalidArgument(MsgPeriodInvalid)
	}
	p := aggregation.NormalizePagination(f.Page, f.Size, aggregation.DefaultTagPageSize, s.maxPageSize)
	q := models.WorksQuery{StartYear: &r.Start, EndYear: &r.End, Offset: p.Offset(), Limit: p.Size}

	result, err := s.page(ctx, q, p)
	if err != nil {
		return nil, err
	}
	period := f.Period
	result.Period = &period
	return result, nil
}

// Detail returns a work with its tags and images. Tag and image lookups are
// best effort.
func (s *WorksService) Detail(ctx context.Context, id int) (*models.WorksDetail, error) {
	w, err := s.works.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load works %d: %w", id, err)
	}
	if w == nil {
		return nil, notFound(MsgWorksNotFound)
	}

	return &models.WorksDetail{
		WorksID:               w.WorksID,
		WorksName:             w.WorksName,
		CreationYear:          w.CreationYear,
		CreationTimeDetail:    w.CreationTimeDetail,
		Size:                  w.Size,
		Material:              w.Material,
		CollectionInstitution: w.CollectionInstitution,
		WorksDesc:             w.WorksDesc,
		Category:              w.Category,
		ArtPeriod:             w.ArtPeriod,
		Tags:                  s.shaper.Tags(ctx, w.WorksID),
		Images:                s.images(ctx, w.WorksID),
	}, nil
}

func (s *WorksService) images(ctx context.Context, worksID int) []models.WorkImage {
	images, err := s.works.Images(ctx, worksID)
	if err != nil {
		s.metrics.RecordEnrichmentFailure("images")
		logging.Ctx(ctx).Warn().Err(err).Int("works_id", worksID).Msg("works images lookup failed, using default")
		return []models.WorkImage{}
	}
	for i := range images {
		if images[i].ImgURL != nil {
			url := s.shaper.Resolve(*images[i].ImgURL)
			images[i].ImgURL = &url
		}
	}
	if images == nil {
		images = []models.WorkImage{}
	}
	return images
}

// Tags returns every tag with its works count
func (s *WorksService) Tags(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.works.Tags(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	return tags, nil
}

// SearchTags returns the tags whose name contains keyword; a blank keyword
// returns every tag
func (s *WorksService) SearchTags(ctx context.Context, keyword string) ([]models.Tag, error) {
	tags, err := s.works.Tags(ctx, strings.TrimSpace(keyword))
	if err != nil {
		return nil, fmt.Errorf("failed to search tags: %w", err)
	}
	return tags, nil
}

// CategoryStats counts works per category
func (s *WorksService) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	stats, err := s.works.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category stats: %w", err)
	}
	return stats, nil
}

// CategoryStatsWithTotal is CategoryStats plus the sum of all counts
func (s *WorksService) CategoryStatsWithTotal(ctx context.Context) (*models.CategoryStatsWithTotal, error) {
	stats, err := s.CategoryStats(ctx)
	if err != nil {
		return nil, err
	}
	result := &models.CategoryStatsWithTotal{Categories: stats}
	for _, st := range stats {
		result.Total += st.Count
	}
	return result, nil
}
