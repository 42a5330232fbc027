package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/qingliul/huangbinhong-backend-go/internal/aggregation"
	"github.com/qingliul/huangbinhong-backend-go/internal/config"
	"github.com/qingliul/huangbinhong-backend-go/internal/metrics"
	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

// RelationshipService serves the subject's places, footprints, timeline and
// social network
type RelationshipService struct {
	persons       PersonStore
	trajectory    TrajectoryStore
	events        TimelineEventStore
	relationships RelationshipStore
	subject       config.SubjectConfig
	metrics       *metrics.Manager
}

// NewRelationshipService creates a new relationship service
func NewRelationshipService(
	persons PersonStore,
	trajectory TrajectoryStore,
	events TimelineEventStore,
	relationships RelationshipStore,
	subject config.SubjectConfig,
	m *metrics.Manager,
) *RelationshipService {
	if m == nil {
		m = metrics.Default()
	}
	return &RelationshipService{
		persons:       persons,
		trajectory:    trajectory,
		events:        events,
		relationships: relationships,
		subject:       subject,
		metrics:       m,
	}
}

// GetCore returns the subject summary, filling gaps from configuration
func (s *RelationshipService) GetCore(ctx context.Context) (models.CoreDTO, error) {
	p, err := s.persons.FindByID(ctx, s.subject.PersonID)
	if err != nil {
		return models.CoreDTO{}, fmt.Errorf("failed to load subject: %w", err)
	}

	birth, death := s.subject.BirthYear, s.subject.DeathYear
	core := models.CoreDTO{ID: s.subject.Name, Birth: &birth, Death: &death}
	if p == nil {
		return core, nil
	}
	if p.Name != nil && *p.Name != "" {
		core.ID = *p.Name
	}
	if p.BirthYear != nil {
		core.Birth = p.BirthYear
	}
	if p.DeathYear != nil {
		core.Death = p.DeathYear
	}
	return core, nil
}

func (s *RelationshipService) aggregate(ctx context.Context, withPeople bool) ([]models.TrajectoryPoint, []aggregation.LocationAggregate, error) {
	points, err := s.trajectory.FindAllPoints(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load trajectory points: %w", err)
	}
	var people map[int][]models.Person
	if withPeople {
		people, err = s.persons.PeopleByPoint(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load point persons: %w", err)
		}
	}
	aggs := aggregation.AggregateLocations(points, people)
	s.metrics.RecordLocationsAggregated(len(aggs))
	return points, aggs, nil
}

// GetLocations returns every place the subject stayed with the persons met there
func (s *RelationshipService) GetLocations(ctx context.Context) ([]models.LocationDTO, error) {
	_, aggs, err := s.aggregate(ctx, true)
	if err != nil {
		return nil, err
	}
	return aggregation.LocationDTOs(aggs), nil
}

// GetFootprints returns the classified footprint map entries
func (s *RelationshipService) GetFootprints(ctx context.Context) ([]models.FootprintEntry, error) {
	points, aggs, err := s.aggregate(ctx, false)
	if err != nil {
		return nil, err
	}
	typeNames, err := s.trajectory.TypeNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load trajectory types: %w", err)
	}
	events, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load timeline events: %w", err)
	}
	return aggregation.ClassifyFootprints(
		aggs,
		aggregation.LocationTypes(points),
		typeNames,
		aggregation.GroupEventsByLocation(events),
	), nil
}

// GetFootprintRoute returns the chronological route through the located footprints
func (s *RelationshipService) GetFootprintRoute(ctx context.Context) (models.FootprintRoute, error) {
	points, aggs, err := s.aggregate(ctx, false)
	if err != nil {
		return models.FootprintRoute{}, err
	}
	return aggregation.BuildRoute(aggs, aggregation.LocationTypes(points)), nil
}

// GetLocationEvents returns the raw timeline events recorded at a location
func (s *RelationshipService) GetLocationEvents(ctx context.Context, location string) ([]models.TimelineEvent, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, invalidArgument(MsgLocationRequired)
	}
	events, err := s.events.FindByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to load events at %s: %w", location, err)
	}
	return events, nil
}

func (s *RelationshipService) enricher(ctx context.Context, events []models.TimelineEvent) (*aggregation.Enricher, error) {
	subject, err := s.persons.FindByID(ctx, s.subject.PersonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subject: %w", err)
	}
	associates, err := s.persons.FindByIDs(ctx, aggregation.AssociateIDs(events))
	if err != nil {
		return nil, fmt.Errorf("failed to load associated persons: %w", err)
	}
	return aggregation.NewEnricher(aggregation.SubjectBirthYear(subject, s.subject.BirthYear), associates), nil
}

// GetTimelineEvents returns every timeline event with the ages at the time
func (s *RelationshipService) GetTimelineEvents(ctx context.Context) ([]models.TimelineEventDTO, error) {
	events, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load timeline events: %w", err)
	}
	e, err := s.enricher(ctx, events)
	if err != nil {
		return nil, err
	}
	return e.EnrichAll(events), nil
}

// GetTimelineEventByID returns one enriched timeline event
func (s *RelationshipService) GetTimelineEventByID(ctx context.Context, id int) (*models.TimelineEventDTO, error) {
	ev, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load timeline event %d: %w", id, err)
	}
	if ev == nil {
		return nil, notFound(MsgTimelineMissing)
	}
	e, err := s.enricher(ctx, []models.TimelineEvent{*ev})
	if err != nil {
		return nil, err
	}
	dto := e.Enrich(*ev)
	return &dto, nil
}

// GetPersonByID returns a person summary
func (s *RelationshipService) GetPersonByID(ctx context.Context, id int) (*models.PersonDTO, error) {
	p, err := s.persons.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load person %d: %w", id, err)
	}
	if p == nil {
		return nil, notFound(MsgPersonMissing)
	}
	dto := p.ToDTO()
	return &dto, nil
}

// GetAllData loads the core record, locations and timeline concurrently
func (s *RelationshipService) GetAllData(ctx context.Context) (*models.AllDataDTO, error) {
	var all models.AllDataDTO
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		core, err := s.GetCore(gctx)
		all.Core = core
		return err
	})
	g.Go(func() error {
		locations, err := s.GetLocations(gctx)
		all.Locations = locations
		return err
	})
	g.Go(func() error {
		events, err := s.GetTimelineEvents(gctx)
		all.TimelineEvents = events
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &all, nil
}

// GetRelationshipGraph returns the social network, optionally restricted to
// the relationships of one person
func (s *RelationshipService) GetRelationshipGraph(ctx context.Context, personID *int) (models.RelationshipGraph, error) {
	if personID != nil && *personID <= 0 {
		return models.RelationshipGraph{}, invalidArgument(MsgPersonIDRequired)
	}
	rels, err := s.relationships.Find(ctx, personID)
	if err != nil {
		return models.RelationshipGraph{}, fmt.Errorf("failed to load relationships: %w", err)
	}
	people, err := s.persons.FindByIDs(ctx, aggregation.RelationshipPersonIDs(rels))
	if err != nil {
		return models.RelationshipGraph{}, fmt.Errorf("failed to load related persons: %w", err)
	}
	return aggregation.BuildGraph(rels, people), nil
}
