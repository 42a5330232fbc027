package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

const imgTypeThumbnail = "thumbnail"

var worksColumns = []string{"w.works_id", "w.works_name", "w.creation_year", "w.creation_time_detail", "w.size",
	"w.material", "w.category", "w.collection_institution", "w.collection_location", "w.art_period", "w.works_desc"}

// WorksRepository handles database operations for works, images and tags
type WorksRepository struct {
	db *sql.DB
}

// NewWorksRepository creates a new works repository
func NewWorksRepository(db *sql.DB) *WorksRepository {
	return &WorksRepository{db: db}
}

func scanWorks(s scanner) (models.Works, error) {
	var w models.Works
	err := s.Scan(&w.WorksID, &w.WorksName, &w.CreationYear, &w.CreationTimeDetail, &w.Size,
		&w.Material, &w.Category, &w.CollectionInstitution, &w.CollectionLocation, &w.ArtPeriod, &w.WorksDesc)
	return w, err
}

// worksConditions translates a query into WHERE clauses. Tag filters match
// works carrying any of the given tags.
func worksConditions(q models.WorksQuery) (sq.And, error) {
	var conds sq.And
	if q.CreationYear != nil {
		conds = append(conds, sq.Eq{"w.creation_year": *q.CreationYear})
	}
	if q.WorksName != "" {
		conds = append(conds, sq.Like{"w.works_name": "%" + escapeLike(q.WorksName) + "%"})
	}
	if q.Category != "" {
		conds = append(conds, sq.Eq{"w.category": q.Category})
	}
	if q.ArtPeriod != "" {
		conds = append(conds, sq.Eq{"w.art_period": q.ArtPeriod})
	}
	if q.StartYear != nil {
		conds = append(conds, sq.GtOrEq{"w.creation_year": *q.StartYear})
	}
	if q.EndYear != nil {
		conds = append(conds, sq.LtOrEq{"w.creation_year": *q.EndYear})
	}
	if len(q.TagIDs) > 0 {
		sub, args, err := psql.Select("wt.works_id").From("works_tag wt").
			Where(sq.Eq{"wt.tag_id": q.TagIDs}).ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build tag id filter: %w", err)
		}
		conds = append(conds, sq.Expr("w.works_id IN ("+sub+")", args...))
	}
	if len(q.TagNames) > 0 {
		sub, args, err := psql.Select("wt.works_id").From("works_tag wt").
			Join("tag t ON t.tag_id = wt.tag_id").
			Where(sq.Eq{"t.tag_name": q.TagNames}).ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build tag name filter: %w", err)
		}
		conds = append(conds, sq.Expr("w.works_id IN ("+sub+")", args...))
	}
	return conds, nil
}

// escapeLike neutralizes LIKE wildcards in user input; pairs with ESCAPE '\'
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// List retrieves one page of works ordered by creation year, undated last
func (r *WorksRepository) List(ctx context.Context, q models.WorksQuery) ([]models.Works, error) {
	conds, err := worksConditions(q)
	if err != nil {
		return nil, err
	}
	b := psql.Select(worksColumns...).From("works w").
		OrderBy(yearOrder("w.creation_year", "w.works_id")...)
	if len(conds) > 0 {
		b = b.Where(conds)
	}
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit)).Offset(uint64(q.Offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build works query: %w", err)
	}
	query = withLikeEscape(query)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query works: %w", err)
	}
	defer rows.Close()

	works := []models.Works{}
	for rows.Next() {
		w, err := scanWorks(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan works: %w", err)
		}
		works = append(works, w)
	}
	return works, rows.Err()
}

// Count returns the number of works matching q, ignoring pagination
func (r *WorksRepository) Count(ctx context.Context, q models.WorksQuery) (int, error) {
	conds, err := worksConditions(q)
	if err != nil {
		return 0, err
	}
	b := psql.Select("COUNT(*)").From("works w")
	if len(conds) > 0 {
		b = b.Where(conds)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build works count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, withLikeEscape(query), args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count works: %w", err)
	}
	return total, nil
}

// withLikeEscape declares the escape character for the LIKE emitted by
// worksConditions. squirrel has no ESCAPE support.
func withLikeEscape(query string) string {
	return strings.Replace(query, "w.works_name LIKE ?", `w.works_name LIKE ? ESCAPE '\'`, 1)
}

// FindByID retrieves a work, or nil when absent
func (r *WorksRepository) FindByID(ctx context.Context, id int) (*models.Works, error) {
	query, args, err := psql.Select(worksColumns...).From("works w").
		Where(sq.Eq{"w.works_id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build works query: %w", err)
	}

	w, err := scanWorks(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get works %d: %w", id, err)
	}
	return &w, nil
}

// ThumbnailURL returns the stored path of a work's first thumbnail image, or nil
func (r *WorksRepository) ThumbnailURL(ctx context.Context, worksID int) (*string, error) {
	query, args, err := psql.Select("img_url").From("works_image").
		Where(sq.Eq{"works_id": worksID, "img_type": imgTypeThumbnail}).
		OrderBy("sort_order", "image_id").
		Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build thumbnail query: %w", err)
	}

	var url *string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get thumbnail of works %d: %w", worksID, err)
	}
	return url, nil
}

// TagNames returns the names of a work's tags in tag id order
func (r *WorksRepository) TagNames(ctx context.Context, worksID int) ([]string, error) {
	query, args, err := psql.Select("t.tag_name").From("works_tag wt").
		Join("tag t ON t.tag_id = wt.tag_id").
		Where(sq.Eq{"wt.works_id": worksID}).
		OrderBy("t.tag_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build tag names query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags of works %d: %w", worksID, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan tag name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Images returns a work's images in display order
func (r *WorksRepository) Images(ctx context.Context, worksID int) ([]models.WorkImage, error) {
	query, args, err := psql.Select("img_type", "img_url", "img_desc").From("works_image").
		Where(sq.Eq{"works_id": worksID}).
		OrderBy("sort_order", "image_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build images query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query images of works %d: %w", worksID, err)
	}
	defer rows.Close()

	images := []models.WorkImage{}
	for rows.Next() {
		var img models.WorkImage
		if err := rows.Scan(&img.ImgType, &img.ImgURL, &img.ImgDesc); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// Tags returns every tag with its works count, optionally filtered by a
// name substring
func (r *WorksRepository) Tags(ctx context.Context, keyword string) ([]models.Tag, error) {
	b := psql.Select("t.tag_id", "t.tag_name", "COUNT(wt.works_id)").
		From("tag t").
		LeftJoin("works_tag wt ON wt.tag_id = t.tag_id").
		GroupBy("t.tag_id", "t.tag_name").
		OrderBy("t.tag_id")
	if keyword != "" {
		b = b.Where(sq.Expr(`t.tag_name LIKE ? ESCAPE '\'`, "%"+escapeLike(keyword)+"%"))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build tags query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.TagID, &t.TagName, &t.WorksCount); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// CategoryStats counts works per category, largest first
func (r *WorksRepository) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	query, args, err := psql.Select("category", "COUNT(*) AS cnt").From("works").
		GroupBy("category").
		OrderBy("cnt DESC", "category").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build category stats query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query category stats: %w", err)
	}
	defer rows.Close()

	stats := []models.CategoryStat{}
	for rows.Next() {
		var s models.CategoryStat
		if err := rows.Scan(&s.Category, &s.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
