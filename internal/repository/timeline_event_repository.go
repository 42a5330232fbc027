package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

// TimelineEventRepository handles database operations for timeline events
type TimelineEventRepository struct {
	db *sql.DB
}

// NewTimelineEventRepository creates a new timeline event repository
func NewTimelineEventRepository(db *sql.DB) *TimelineEventRepository {
	return &TimelineEventRepository{db: db}
}

func timelineEventSelect() sq.SelectBuilder {
	return psql.Select("event_id", "year", "person_id", "title", "description", "art_weight", "location_name").
		From("timeline_event")
}

func scanTimelineEvent(s scanner) (models.TimelineEvent, error) {
	var e models.TimelineEvent
	err := s.Scan(&e.EventID, &e.Year, &e.PersonID, &e.Title, &e.Description, &e.ArtWeight, &e.LocationName)
	return e, err
}

func (r *TimelineEventRepository) list(ctx context.Context, b sq.SelectBuilder) ([]models.TimelineEvent, error) {
	query, args, err := b.OrderBy(yearOrder("year", "event_id")...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build timeline event query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeline events: %w", err)
	}
	defer rows.Close()

	events := []models.TimelineEvent{}
	for rows.Next() {
		e, err := scanTimelineEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timeline event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// FindAll retrieves every timeline event by ascending year
func (r *TimelineEventRepository) FindAll(ctx context.Context) ([]models.TimelineEvent, error) {
	return r.list(ctx, timelineEventSelect())
}

// FindByLocation retrieves the events that happened at a location
func (r *TimelineEventRepository) FindByLocation(ctx context.Context, location string) ([]models.TimelineEvent, error) {
	return r.list(ctx, timelineEventSelect().Where(sq.Eq{"location_name": location}))
}

// FindByID retrieves a timeline event, or nil when absent
func (r *TimelineEventRepository) FindByID(ctx context.Context, id int) (*models.TimelineEvent, error) {
	query, args, err := timelineEventSelect().Where(sq.Eq{"event_id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build timeline event query: %w", err)
	}

	e, err := scanTimelineEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline event %d: %w", id, err)
	}
	return &e, nil
}
