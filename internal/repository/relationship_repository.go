package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

// RelationshipRepository handles database operations for person relationships
type RelationshipRepository struct {
	db *sql.DB
}

// NewRelationshipRepository creates a new relationship repository
func NewRelationshipRepository(db *sql.DB) *RelationshipRepository {
	return &RelationshipRepository{db: db}
}

// Find retrieves relationships in relation id order. A non-nil personID keeps
// only the relationships where that person is source or target.
func (r *RelationshipRepository) Find(ctx context.Context, personID *int) ([]models.PersonRelationship, error) {
	b := psql.Select("relation_id", "source_person_id", "target_person_id", "relation_type", "importance", "relation_event").
		From("person_relationship").
		OrderBy("relation_id")
	if personID != nil {
		b = b.Where(sq.Or{sq.Eq{"source_person_id": *personID}, sq.Eq{"target_person_id": *personID}})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build relationship query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query relationships: %w", err)
	}
	defer rows.Close()

	rels := []models.PersonRelationship{}
	for rows.Next() {
		var rel models.PersonRelationship
		if err := rows.Scan(&rel.RelationID, &rel.SourcePersonID, &rel.TargetPersonID,
			&rel.RelationType, &rel.Importance, &rel.RelationEvent); err != nil {
			return nil, fmt.Errorf("failed to scan relationship: %w", err)
		}
		rels = append(rels, rel)
	}
	return rels, rows.Err()
}
