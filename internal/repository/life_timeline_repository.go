package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

// LifeTimelineRepository handles database operations for the life timeline
type LifeTimelineRepository struct {
	db *sql.DB
}

// NewLifeTimelineRepository creates a new life timeline repository
func NewLifeTimelineRepository(db *sql.DB) *LifeTimelineRepository {
	return &LifeTimelineRepository{db: db}
}

func lifeTimelineSelect() sq.SelectBuilder {
	return psql.Select("timeline_id", "year", "month", "day", "event_title", "event_detail").From("life_timeline")
}

func scanLifeTimeline(s scanner) (models.LifeTimeline, error) {
	var lt models.LifeTimeline
	err := s.Scan(&lt.TimelineID, &lt.Year, &lt.Month, &lt.Day, &lt.EventTitle, &lt.EventDetail)
	return lt, err
}

func lifeTimelineWhere(b sq.SelectBuilder, q models.LifeTimelineQuery) sq.SelectBuilder {
	if q.Year != nil {
		b = b.Where(sq.Eq{"year": *q.Year})
	}
	return b
}

// List retrieves one page of entries in chronological order
func (r *LifeTimelineRepository) List(ctx context.Context, q models.LifeTimelineQuery) ([]models.LifeTimeline, error) {
	b := lifeTimelineWhere(lifeTimelineSelect(), q).
		OrderBy("year IS NULL", "year", "month", "day", "timeline_id")
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit)).Offset(uint64(q.Offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build life timeline query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query life timeline: %w", err)
	}
	defer rows.Close()

	list := []models.LifeTimeline{}
	for rows.Next() {
		lt, err := scanLifeTimeline(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan life timeline: %w", err)
		}
		list = append(list, lt)
	}
	return list, rows.Err()
}

// Count returns the number of entries matching q
func (r *LifeTimelineRepository) Count(ctx context.Context, q models.LifeTimelineQuery) (int, error) {
	query, args, err := lifeTimelineWhere(psql.Select("COUNT(*)").From("life_timeline"), q).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build life timeline count query: %w", err)
	}
	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count life timeline: %w", err)
	}
	return total, nil
}

// FindByID retrieves an entry, or nil when absent
func (r *LifeTimelineRepository) FindByID(ctx context.Context, id int) (*models.LifeTimeline, error) {
	query, args, err := lifeTimelineSelect().Where(sq.Eq{"timeline_id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build life timeline query: %w", err)
	}

	lt, err := scanLifeTimeline(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get life timeline %d: %w", id, err)
	}
	return &lt, nil
}

// RelatedWorks lists the works linked to an entry; ThumbnailURL holds the
// stored path of the first thumbnail, "" when there is none
func (r *LifeTimelineRepository) RelatedWorks(ctx context.Context, timelineID int) ([]models.RelatedWorks, error) {
	thumb := psql.Select("i.img_url").From("works_image i").
		Where("i.works_id = w.works_id").
		Where(sq.Eq{"i.img_type": imgTypeThumbnail}).
		OrderBy("i.sort_order", "i.image_id").
		Limit(1)
	thumbSQL, thumbArgs, err := thumb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build thumbnail subquery: %w", err)
	}

	query, args, err := psql.Select("w.works_id", "w.works_name", "w.creation_year").
		Column("("+thumbSQL+")", thumbArgs...).
		From("life_timeline_works ltw").
		Join("works w ON w.works_id = ltw.works_id").
		Where(sq.Eq{"ltw.timeline_id": timelineID}).
		OrderBy(yearOrder("w.creation_year", "w.works_id")...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build related works query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query related works: %w", err)
	}
	defer rows.Close()

	related := []models.RelatedWorks{}
	for rows.Next() {
		var w models.RelatedWorks
		var thumbURL sql.NullString
		if err := rows.Scan(&w.WorksID, &w.WorksName, &w.CreationYear, &thumbURL); err != nil {
			return nil, fmt.Errorf("failed to scan related works: %w", err)
		}
		w.ThumbnailURL = thumbURL.String
		related = append(related, w)
	}
	return related, rows.Err()
}

// YearArtStats counts life timeline entries and created works for every
// year present in either table
func (r *LifeTimelineRepository) YearArtStats(ctx context.Context) ([]models.YearArtStat, error) {
	const query = `
		SELECT y.year,
			(SELECT COUNT(*) FROM life_timeline lt WHERE lt.year = y.year),
			(SELECT COUNT(*) FROM works w WHERE w.creation_year = y.year)
		FROM (
			SELECT year FROM life_timeline WHERE year IS NOT NULL
			UNION
			SELECT creation_year FROM works WHERE creation_year IS NOT NULL
		) y
		ORDER BY y.year`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query year art stats: %w", err)
	}
	defer rows.Close()

	stats := []models.YearArtStat{}
	for rows.Next() {
		var s models.YearArtStat
		if err := rows.Scan(&s.Year, &s.EventCount, &s.WorksCount); err != nil {
			return nil, fmt.Errorf("failed to scan year art stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
