package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

var personColumns = []string{"p.person_id", "p.name", "p.alias", "p.birth_year", "p.death_year", "p.identity", "p.brief_intro"}

// PersonRepository handles database operations for persons
type PersonRepository struct {
	db *sql.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func scanPerson(s scanner, extra ...any) (models.Person, error) {
	var p models.Person
	dest := append(extra, &p.PersonID, &p.Name, &p.Alias, &p.BirthYear, &p.DeathYear, &p.Identity, &p.BriefIntro)
	err := s.Scan(dest...)
	return p, err
}

// FindByID retrieves a person, or nil when absent
func (r *PersonRepository) FindByID(ctx context.Context, id int) (*models.Person, error) {
	query, args, err := psql.Select(personColumns...).
		From("person p").
		Where(sq.Eq{"p.person_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build person query: %w", err)
	}

	p, err := scanPerson(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person %d: %w", id, err)
	}
	return &p, nil
}

// FindByIDs retrieves persons keyed by id; unknown ids are simply absent
func (r *PersonRepository) FindByIDs(ctx context.Context, ids []int) (map[int]models.Person, error) {
	people := make(map[int]models.Person, len(ids))
	if len(ids) == 0 {
		return people, nil
	}

	query, args, err := psql.Select(personColumns...).
		From("person p").
		Where(sq.Eq{"p.person_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build persons query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people[p.PersonID] = p
	}
	return people, rows.Err()
}

// PeopleByPoint retrieves the persons linked to every trajectory point,
// keyed by point id. Links to missing persons are skipped.
func (r *PersonRepository) PeopleByPoint(ctx context.Context) (map[int][]models.Person, error) {
	query, args, err := psql.Select(append([]string{"r.point_id"}, personColumns...)...).
		From("trajectory_person_rel r").
		Join("person p ON p.person_id = r.person_id").
		OrderBy("r.point_id", "p.person_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build point persons query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query point persons: %w", err)
	}
	defer rows.Close()

	byPoint := make(map[int][]models.Person)
	for rows.Next() {
		var pointID int
		p, err := scanPerson(rows, &pointID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan point person: %w", err)
		}
		byPoint[pointID] = append(byPoint[pointID], p)
	}
	return byPoint, rows.Err()
}
