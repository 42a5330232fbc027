package aggregation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/qingliul/huangbinhong-backend-go/internal/logging"
	"github.com/qingliul/huangbinhong-backend-go/internal/metrics"
	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

// Default page sizes.
// Default page sizes per listing.
const (
	DefaultWorksPageSize    = 12
	DefaultTagPageSize      = 10
	DefaultTimelinePageSize = 10
)

var (
	// ErrInvalidPeriod is returned for a period other than early, middle or late.
	ErrInvalidPeriod = errors.New("period 只能是 early/middle/late")
	// ErrInvalidIDList is returned for a malformed comma separated id list.
	ErrInvalidIDList = errors.New("invalid id list")
)

// YearRange is an inclusive range of years.
type YearRange struct {
	Start int
	End   int
}

var periodRanges = map[string]YearRange{
	"early":  {1865, 1900},
	"middle": {1901, 1930},
	"late":   {1931, 1955},
}

// PeriodRange maps an art period bucket name to its year range.
func PeriodRange(period string) (YearRange, error) {
	r, ok := periodRanges[period]
	if !ok {
		return YearRange{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	return r, nil
}

// Pagination is a normalized page request.
type Pagination struct {
	Page int
	Size int
}

// NormalizePagination applies defaults to page and size. Page defaults to 1,
// size to defaultSize; a positive maxSize caps size.
func NormalizePagination(page, size, defaultSize, maxSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return Pagination{Page: page, Size: size}
}

// Offset is the zero-based row offset of the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}

// SplitList splits a comma separated value, trimming blanks and dropping
// empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseIDList parses a comma separated list of positive integers.
func ParseIDList(s string) ([]int, error) {
	parts := SplitList(s)
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIDList, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// BuildWorksQuery turns listing parameters into the row-source filter.
func BuildWorksQuery(f models.WorksFilter, p Pagination) (models.WorksQuery, error) {
	tagIDs, err := ParseIDList(f.TagIDs)
	if err != nil {
		return models.WorksQuery{}, err
	}
	return models.WorksQuery{
		CreationYear: f.CreationYear,
		WorksName:    strings.TrimSpace(f.WorksName),
		Category:     strings.TrimSpace(f.Category),
		TagNames:     SplitList(f.Tags),
		TagIDs:       tagIDs,
		ArtPeriod:    strings.TrimSpace(f.ArtPeriod),
		StartYear:    f.StartYear,
		EndYear:      f.EndYear,
		Offset:       p.Offset(),
		Limit:        p.Size,
	}, nil
}

// EnrichmentSource supplies the secondary per-work lookups.
type EnrichmentSource interface {
	ThumbnailURL(ctx context.Context, worksID int) (*string, error)
	TagNames(ctx context.Context, worksID int) ([]string, error)
}

// URLResolver turns a stored resource path into a public URL.
type URLResolver interface {
	Resolve(path string) string
}

// Shaper reshapes works rows into list items. Thumbnail and tag lookups are
// best effort: a failed lookup yields "" or an empty list and is logged, the
// work itself is always returned.
type Shaper struct {
	source  EnrichmentSource
	urls    URLResolver
	metrics *metrics.Manager
}

// NewShaper creates a Shaper. urls may be nil to keep stored paths as is.
func NewShaper(source EnrichmentSource, urls URLResolver, m *metrics.Manager) *Shaper {
	if m == nil {
		m = metrics.Default()
	}
	return &Shaper{source: source, urls: urls, metrics: m}
}

// Shape converts rows to list items, keeping their order.
func (s *Shaper) Shape(ctx context.Context, rows []models.Works) []models.WorksListItem {
	items := make([]models.WorksListItem, 0, len(rows))
	for _, w := range rows {
		items = append(items, models.WorksListItem{
			WorksID:               w.WorksID,
			WorksName:             w.WorksName,
			CreationYear:          w.CreationYear,
			Category:              w.Category,
			ArtPeriod:             w.ArtPeriod,
			Size:                  w.Size,
			Material:              w.Material,
			CollectionInstitution: w.CollectionInstitution,
			Description:           w.WorksDesc,
			ThumbnailURL:          s.Thumbnail(ctx, w.WorksID),
			Tags:                  s.Tags(ctx, w.WorksID),
		})
	}
	return items
}

// Thumbnail returns the work's thumbnail URL, or "" when it has none or the
// lookup fails.
func (s *Shaper) Thumbnail(ctx context.Context, worksID int) string {
	url, err := s.source.ThumbnailURL(ctx, worksID)
	if err != nil {
		s.degraded(ctx, "thumbnail", worksID, err)
		return ""
	}
	if url == nil {
		return ""
	}
	return s.Resolve(*url)
}

// Tags returns the work's tag names, or an empty list when the lookup fails.
func (s *Shaper) Tags(ctx context.Context, worksID int) []string {
	tags, err := s.source.TagNames(ctx, worksID)
	if err != nil {
		s.degraded(ctx, "tags", worksID, err)
		return []string{}
	}
	if tags == nil {
		return []string{}
	}
	return tags
}

// Resolve applies the URL resolver, if any.
func (s *Shaper) Resolve(path string) string {
	if s.urls == nil {
		return path
	}
	return s.urls.Resolve(path)
}

func (s *Shaper) degraded(ctx context.Context, kind string, worksID int, err error) {
	s.metrics.RecordEnrichmentFailure(kind)
	logging.Ctx(ctx).Warn().Err(err).
		Str("lookup", kind).
		Int("works_id", worksID).
		Msg("works enrichment lookup failed, using default")
}
