package service

import (
	"context"
	"testing"

	"github.com/qingliul/huangbinhong-backend-go/internal/aggregation"
	"github.com/qingliul/huangbinhong-backend-go/internal/config"
	"github.com/qingliul/huangbinhong-backend-go/internal/metrics"
	"github.com/qingliul/huangbinhong-backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var subjectCfg = config.SubjectConfig{PersonID: 1, Name: "黄宾虹", BirthYear: 1865, DeathYear: 1955}

func point(id int, location string, year int, lng, lat float64, typeID int) models.TrajectoryPoint {
	return models.TrajectoryPoint{
		PointID: id, TypeID: intp(typeID), Year: intp(year), LocationName: strp(location),
		Longitude: floatp(lng), Latitude: floatp(lat), EventDesc: strp(location + " info"),
	}
}

type fixture struct {
	persons *fakePersons
	traj    *fakeTrajectory
	events  *fakeEvents
	rels    *fakeRelationships
	svc     *RelationshipService
}

func newFixture() *fixture {
	f := &fixture{
		persons: &fakePersons{
			people: map[int]models.Person{
				1: {PersonID: 1, Name: strp("黄宾虹"), BirthYear: intp(1865), DeathYear: intp(1955)},
				2: {PersonID: 2, Name: strp("傅雷"), BirthYear: intp(1908), BriefIntro: strp("翻译家")},
				3: {PersonID: 3, Name: strp("陈叔通")},
			},
			byPoint: map[int][]models.Person{
				2: {{PersonID: 2, Name: strp("傅雷"), BriefIntro: strp("翻译家")}},
			},
		},
		traj: &fakeTrajectory{
			points: []models.TrajectoryPoint{
				point(1, "金华", 1865, 119.65, 29.08, 1),
				point(2, "上海", 1909, 121.47, 31.23, 2),
				point(3, "上海", 1937, 0, 0, 2),
			},
			types: map[int]string{1: "出生地", 2: "居住地"},
		},
		events: &fakeEvents{events: []models.TimelineEvent{
			{EventID: 1, Year: intp(1900), PersonID: intp(404), Title: strp("unknown friend")},
			{EventID: 2, Year: intp(1943), PersonID: intp(2), Title: strp("八十书画展"), LocationName: strp("上海")},
		}},
		rels: &fakeRelationships{rels: []models.PersonRelationship{
			{RelationID: 1, SourcePersonID: 1, TargetPersonID: 2},
			{RelationID: 2, SourcePersonID: 1, TargetPersonID: 3},
			{RelationID: 3, SourcePersonID: 2, TargetPersonID: 99},
		}},
	}
	f.svc = NewRelationshipService(f.persons, f.traj, f.events, f.rels, subjectCfg, metrics.NewManager())
	return f
}

func TestGetCore(t *testing.T) {
	f := newFixture()
	core, err := f.svc.GetCore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "黄宾虹", core.ID)
	assert.Equal(t, 1865, *core.Birth)
	assert.Equal(t, 1955, *core.Death)

	delete(f.persons.people, 1)
	core, err = f.svc.GetCore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.CoreDTO{ID: "黄宾虹", Birth: intp(1865), Death: intp(1955)}, core)
}

func TestGetLocations(t *testing.T) {
	f := newFixture()
	locations, err := f.svc.GetLocations(context.Background())
	require.NoError(t, err)

	require.Len(t, locations, 2)
	sh := locations[0]
	assert.Equal(t, "上海", sh.ID)
	assert.Equal(t, "1909-1937", *sh.Year)
	assert.Equal(t, []float64{121.47, 31.23}, sh.Coords)
	require.Len(t, sh.People, 1)
	assert.Equal(t, "傅雷", *sh.People[0].Name)
	assert.Equal(t, "翻译家", *sh.People[0].History)
	assert.Equal(t, "金华", locations[1].ID)
}

func TestGetLocations_StoreError(t *testing.T) {
	f := newFixture()
	f.traj.err = errStore
	_, err := f.svc.GetLocations(context.Background())
	assert.ErrorIs(t, err, errStore)
}

func TestGetFootprints(t *testing.T) {
	f := newFixture()
	footprints, err := f.svc.GetFootprints(context.Background())
	require.NoError(t, err)

	require.Len(t, footprints, 2)
	sh, jh := footprints[0], footprints[1]
	assert.Equal(t, aggregation.CategoryResidence, sh.Type)
	assert.Equal(t, "居住地", sh.TypeLabel)
	require.Len(t, sh.TimeEvents, 1)
	assert.Equal(t, "八十书画展", *sh.TimeEvents[0].Event)

	assert.Equal(t, aggregation.CategoryBirthplace, jh.Type)
	assert.Equal(t, 10, jh.Importance)
	require.Len(t, jh.TimeEvents, 1, "falls back to the location info")
	assert.Equal(t, "1865", *jh.TimeEvents[0].Year)
}

func TestGetFootprintRoute(t *testing.T) {
	f := newFixture()
	route, err := f.svc.GetFootprintRoute(context.Background())
	require.NoError(t, err)

	require.Len(t, route.Stops, 2)
	assert.Equal(t, "金华", route.Stops[0].ID)
	assert.Equal(t, "上海", route.Stops[1].ID)
	require.Len(t, route.Legs, 1)
	assert.Greater(t, route.TotalDistanceKm, 200.0)
	assert.NotNil(t, route.Bounds)
}

func TestGetLocationEvents(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetLocationEvents(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	events, err := f.svc.GetLocationEvents(context.Background(), "上海")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 2, events[0].EventID)
}

func TestGetTimelineEvents(t *testing.T) {
	f := newFixture()
	events, err := f.svc.GetTimelineEvents(context.Background())
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, 35, *events[0].HbhAge)
	assert.Nil(t, events[0].FriendAge)
	assert.Nil(t, events[0].Person)
	assert.Equal(t, 78, *events[1].HbhAge)
	assert.Equal(t, 35, *events[1].FriendAge)
	assert.Equal(t, "傅雷", *events[1].Person)
}

func TestGetTimelineEvents_SubjectBirthFallback(t *testing.T) {
	f := newFixture()
	delete(f.persons.people, 1)
	f.svc.subject.BirthYear = 1864

	events, err := f.svc.GetTimelineEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 36, *events[0].HbhAge)
}

func TestGetTimelineEventByID(t *testing.T) {
	f := newFixture()

	ev, err := f.svc.GetTimelineEventByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 35, *ev.FriendAge)

	_, err = f.svc.GetTimelineEventByID(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, MsgTimelineMissing, svcErr.Msg)
}

func TestGetPersonByID(t *testing.T) {
	f := newFixture()

	p, err := f.svc.GetPersonByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "傅雷", *p.Name)
	assert.Equal(t, "翻译家", *p.History)

	_, err = f.svc.GetPersonByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllData(t *testing.T) {
	f := newFixture()
	all, err := f.svc.GetAllData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "黄宾虹", all.Core.ID)
	assert.Len(t, all.Locations, 2)
	assert.Len(t, all.TimelineEvents, 2)
}

func TestGetAllData_FailsAsAWhole(t *testing.T) {
	f := newFixture()
	f.traj.err = errStore

	all, err := f.svc.GetAllData(context.Background())
	assert.ErrorIs(t, err, errStore)
	assert.Nil(t, all)
}

func TestGetRelationshipGraph(t *testing.T) {
	f := newFixture()

	graph, err := f.svc.GetRelationshipGraph(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, graph.Links, 2, "link to a missing person is dropped")
	assert.Len(t, graph.Nodes, 3)

	graph, err = f.svc.GetRelationshipGraph(context.Background(), intp(3))
	require.NoError(t, err)
	require.Len(t, graph.Links, 1)
	assert.Equal(t, 2, graph.Links[0].ID)
	assert.Equal(t, 3, *f.rels.lastFind)

	_, err = f.svc.GetRelationshipGraph(context.Background(), intp(0))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
