package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

// TrajectoryRepository handles database operations for trajectory points and types
type TrajectoryRepository struct {
	db *sql.DB
}

// NewTrajectoryRepository creates a new trajectory repository
func NewTrajectoryRepository(db *sql.DB) *TrajectoryRepository {
	return &TrajectoryRepository{db: db}
}

// FindAllPoints retrieves every trajectory point by ascending year, undated last
func (r *TrajectoryRepository) FindAllPoints(ctx context.Context) ([]models.TrajectoryPoint, error) {
	query, args, err := psql.Select("point_id", "type_id", "year", "month", "location_name",
		"longitude", "latitude", "address_detail", "event_desc").
		From("trajectory_point").
		OrderBy(yearOrder("year", "point_id")...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build trajectory query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trajectory points: %w", err)
	}
	defer rows.Close()

	points := []models.TrajectoryPoint{}
	for rows.Next() {
		var p models.TrajectoryPoint
		if err := rows.Scan(&p.PointID, &p.TypeID, &p.Year, &p.Month, &p.LocationName,
			&p.Longitude, &p.Latitude, &p.AddressDetail, &p.EventDesc); err != nil {
			return nil, fmt.Errorf("failed to scan trajectory point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// TypeNames maps trajectory type id to its display name
func (r *TrajectoryRepository) TypeNames(ctx context.Context) (map[int]string, error) {
	query, args, err := psql.Select("type_id", "type_name").From("trajectory_type").OrderBy("type_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build trajectory type query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trajectory types: %w", err)
	}
	defer rows.Close()

	names := make(map[int]string)
	for rows.Next() {
		var t models.TrajectoryType
		if err := rows.Scan(&t.TypeID, &t.TypeName); err != nil {
			return nil, fmt.Errorf("failed to scan trajectory type: %w", err)
		}
		names[t.TypeID] = t.TypeName
	}
	return names, rows.Err()
}
