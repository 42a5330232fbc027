package service

import (
	"context"
	"errors"
	"slices"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

var errStore = errors.New("store unavailable")

func intp(v int) *int           { return &v }
func strp(v string) *string     { return &v }
func floatp(v float64) *float64 { return &v }

type fakePersons struct {
	people  map[int]models.Person
	byPoint map[int][]models.Person
	err     error
}

func (f *fakePersons) FindByID(_ context.Context, id int) (*models.Person, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.people[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePersons) FindByIDs(_ context.Context, ids []int) (map[int]models.Person, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[int]models.Person)
	for _, id := range ids {
		if p, ok := f.people[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakePersons) PeopleByPoint(context.Context) (map[int][]models.Person, error) {
	return f.byPoint, f.err
}

type fakeTrajectory struct {
	points []models.TrajectoryPoint
	types  map[int]string
	err    error
}

func (f *fakeTrajectory) FindAllPoints(context.Context) ([]models.TrajectoryPoint, error) {
	return f.points, f.err
}

func (f *fakeTrajectory) TypeNames(context.Context) (map[int]string, error) {
	return f.types, f.err
}

type fakeEvents struct {
	events []models.TimelineEvent
	err    error
}

func (f *fakeEvents) FindAll(context.Context) ([]models.TimelineEvent, error) {
	return f.events, f.err
}

func (f *fakeEvents) FindByLocation(_ context.Context, location string) ([]models.TimelineEvent, error) {
	out := []models.TimelineEvent{}
	for _, e := range f.events {
		if e.LocationName != nil && *e.LocationName == location {
			out = append(out, e)
		}
	}
	return out, f.err
}

func (f *fakeEvents) FindByID(_ context.Context, id int) (*models.TimelineEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.EventID == id {
			return &e, nil
		}
	}
	return nil, nil
}

type fakeRelationships struct {
	rels     []models.PersonRelationship
	lastFind *int
}

func (f *fakeRelationships) Find(_ context.Context, personID *int) ([]models.PersonRelationship, error) {
	f.lastFind = personID
	if personID == nil {
		return f.rels, nil
	}
	var out []models.PersonRelationship
	for _, r := range f.rels {
		if r.SourcePersonID == *personID || r.TargetPersonID == *personID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeWorks struct {
	rows      []models.Works
	thumbs    map[int]string
	tags      map[int][]string
	images    map[int][]models.WorkImage
	allTags   []models.Tag
	stats     []models.CategoryStat
	imagesErr error
	tagsErr   error
	listErr   error

	lastQuery   models.WorksQuery
	calls       int
	lastKeyword string
}

func (f *fakeWorks) List(_ context.Context, q models.WorksQuery) ([]models.Works, error) {
	f.calls++
	f.lastQuery = q
	if f.listErr != nil {
		return nil, f.listErr
	}
	end := min(q.Offset+q.Limit, len(f.rows))
	if q.Offset >= len(f.rows) {
		return []models.Works{}, nil
	}
	return f.rows[q.Offset:end], nil
}

func (f *fakeWorks) Count(_ context.Context, q models.WorksQuery) (int, error) {
	f.calls++
	f.lastQuery = q
	return len(f.rows), f.listErr
}

func (f *fakeWorks) FindByID(_ context.Context, id int) (*models.Works, error) {
	f.calls++
	i := slices.IndexFunc(f.rows, func(w models.Works) bool { return w.WorksID == id })
	if i < 0 {
		return nil, nil
	}
	return &f.rows[i], nil
}

func (f *fakeWorks) ThumbnailURL(_ context.Context, id int) (*string, error) {
	if u, ok := f.thumbs[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeWorks) TagNames(_ context.Context, id int) ([]string, error) {
	if f.tagsErr != nil {
		return nil, f.tagsErr
	}
	return f.tags[id], nil
}

func (f *fakeWorks) Images(_ context.Context, id int) ([]models.WorkImage, error) {
	if f.imagesErr != nil {
		return nil, f.imagesErr
	}
	return f.images[id], nil
}

func (f *fakeWorks) Tags(_ context.Context, keyword string) ([]models.Tag, error) {
	f.lastKeyword = keyword
	return f.allTags, nil
}

func (f *fakeWorks) CategoryStats(context.Context) ([]models.CategoryStat, error) {
	return f.stats, nil
}

type fakeLifeTimeline struct {
	entries []models.LifeTimeline
	related map[int][]models.RelatedWorks
	stats   []models.YearArtStat

	lastQuery models.LifeTimelineQuery
}

func (f *fakeLifeTimeline) List(_ context.Context, q models.LifeTimelineQuery) ([]models.LifeTimeline, error) {
	f.lastQuery = q
	return f.entries, nil
}

func (f *fakeLifeTimeline) Count(_ context.Context, q models.LifeTimelineQuery) (int, error) {
	return len(f.entries), nil
}

func (f *fakeLifeTimeline) FindByID(_ context.Context, id int) (*models.LifeTimeline, error) {
	for _, e := range f.entries {
		if e.TimelineID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeLifeTimeline) RelatedWorks(_ context.Context, id int) ([]models.RelatedWorks, error) {
	return f.related[id], nil
}

func (f *fakeLifeTimeline) YearArtStats(context.Context) ([]models.YearArtStat, error) {
	return f.stats, nil
}

type prefixResolver string

func (p prefixResolver) Resolve(path string) string {
	if path == "" {
		return ""
	}
	return string(p) + path
}
