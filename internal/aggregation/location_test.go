package aggregation

import (
	"encoding/json"
	"testing"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateLocations_Empty(t *testing.T) {
	aggs := AggregateLocations(nil, nil)
	require.NotNil(t, aggs)
	assert.Empty(t, aggs)
}

func TestAggregateLocations_FirstWinsAndYearRange(t *testing.T) {
	points := []models.TrajectoryPoint{
		point(1, "A", 1880, 1, 1, 1),
		point(2, "A", 1885, 2, 2, 1),
	}

	aggs := AggregateLocations(points, nil)

	require.Len(t, aggs, 1)
	a := aggs[0]
	assert.Equal(t, "A", a.ID)
	assert.Equal(t, 1880, *a.MinYear)
	assert.Equal(t, 1885, *a.MaxYear)
	assert.Equal(t, 1.0, *a.Longitude)
	assert.Equal(t, 1.0, *a.Latitude)
	assert.Equal(t, "1880-1885", *a.YearRangeLabel())
	assert.Equal(t, []float64{1, 1}, a.Coords())
}

func TestAggregateLocations_NullTolerance(t *testing.T) {
	points := []models.TrajectoryPoint{
		{PointID: 1, LocationName: strp("B")},
		{PointID: 2, LocationName: strp("B"), Year: intp(1920), Latitude: floatp(30.2), EventDesc: strp("first")},
		{PointID: 3, LocationName: strp("B"), Year: intp(1910), Longitude: floatp(120.1), Latitude: floatp(99), EventDesc: strp("second")},
		{PointID: 4, LocationName: strp("B"), Year: nil, Longitude: floatp(0)},
	}

	aggs := AggregateLocations(points, nil)

	require.Len(t, aggs, 1)
	a := aggs[0]
	assert.Equal(t, 1910, *a.MinYear)
	assert.Equal(t, 1920, *a.MaxYear)
	assert.Equal(t, 120.1, *a.Longitude, "first non-nil longitude wins even when it arrives late")
	assert.Equal(t, 30.2, *a.Latitude, "later latitude must not overwrite")
	assert.Equal(t, "first", *a.Info)
}

func TestAggregateLocations_NoYearsNoCoords(t *testing.T) {
	aggs := AggregateLocations([]models.TrajectoryPoint{
		{PointID: 1, LocationName: strp("C"), Longitude: floatp(1)},
	}, nil)

	require.Len(t, aggs, 1)
	assert.Nil(t, aggs[0].YearRangeLabel())
	assert.Nil(t, aggs[0].Coords(), "coords need both longitude and latitude")

	dto := aggs[0].ToDTO()
	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"C","year":null,"info":null,"people":[],"coords":null}`, string(raw))
}

func TestAggregateLocations_SingleYearLabel(t *testing.T) {
	aggs := AggregateLocations([]models.TrajectoryPoint{point(1, "D", 1907, 121.4, 31.2, 2)}, nil)
	require.Len(t, aggs, 1)
	assert.Equal(t, "1907", *aggs[0].YearRangeLabel())
}

func TestAggregateLocations_SortedUniqueIDs(t *testing.T) {
	points := []models.TrajectoryPoint{
		point(1, "上海", 1909, 121.47, 31.23, 2),
		point(2, "北平", 1937, 116.4, 39.9, 2),
		point(3, "上海", 1920, 121.47, 31.23, 2),
		point(4, "杭州", 1948, 120.15, 30.27, 2),
		point(5, "北平", 1940, 116.4, 39.9, 2),
	}

	aggs := AggregateLocations(points, nil)

	ids := make([]string, 0, len(aggs))
	for _, a := range aggs {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"上海", "北平", "杭州"}, ids)
}

func TestAggregateLocations_NilLocationUsesSentinel(t *testing.T) {
	points := []models.TrajectoryPoint{
		{PointID: 1, Year: intp(1900)},
		point(2, "A", 1901, 1, 1, 1),
	}

	aggs := AggregateLocations(points, nil)

	require.Len(t, aggs, 2)
	assert.Equal(t, "A", aggs[0].ID)
	assert.Equal(t, UnknownLocationKey, aggs[1].ID)
	assert.Equal(t, 1900, *aggs[1].MinYear)
}

func TestAggregateLocations_NilNameNeverMergesWithRealName(t *testing.T) {
	points := []models.TrajectoryPoint{
		{PointID: 1, Year: intp(1880), TypeID: intp(1)},
		{PointID: 2, LocationName: strp(UnknownLocationKey), Year: intp(1950), TypeID: intp(2)},
	}

	aggs := AggregateLocations(points, nil)

	require.Len(t, aggs, 2)
	assert.Equal(t, UnknownLocationKey, aggs[0].ID)
	assert.Equal(t, 1950, *aggs[0].MinYear)
	assert.Equal(t, 1950, *aggs[0].MaxYear)
	assert.Equal(t, UnknownLocationKey+"_", aggs[1].ID)
	assert.Equal(t, 1880, *aggs[1].MinYear)
	assert.Equal(t, 1880, *aggs[1].MaxYear)

	types := LocationTypes(points)
	assert.Equal(t, map[string]int{UnknownLocationKey: 2, UnknownLocationKey + "_": 1}, types)
}

func TestAggregateLocations_PeopleDedupedAndOrdered(t *testing.T) {
	points := []models.TrajectoryPoint{
		point(1, "A", 1900, 1, 1, 1),
		point(2, "A", 1901, 1, 1, 1),
	}
	people := map[int][]models.Person{
		1: {person(7, "陈叔通", nil), person(3, "傅雷", nil)},
		2: {person(3, "傅雷", nil), person(5, "黄节", nil), {PersonID: 5}},
	}

	aggs := AggregateLocations(points, people)

	require.Len(t, aggs, 1)
	got := aggs[0].People
	require.Len(t, got, 4)
	assert.Equal(t, 3, got[0].PersonID)
	assert.Equal(t, 5, got[1].PersonID)
	assert.Equal(t, "黄节", *got[1].Name)
	assert.Equal(t, 5, got[2].PersonID)
	assert.Nil(t, got[2].Name, "nil names sort last within the same id")
	assert.Equal(t, 7, got[3].PersonID)
}

func TestAggregateLocations_Idempotent(t *testing.T) {
	points := []models.TrajectoryPoint{
		point(1, "B", 1900, 1, 1, 1),
		point(2, "A", 1901, 2, 2, 2),
		point(3, "B", 1902, 3, 3, 3),
	}
	people := map[int][]models.Person{1: {person(2, "x", nil), person(1, "y", nil)}}

	first, err := json.Marshal(LocationDTOs(AggregateLocations(points, people)))
	require.NoError(t, err)
	second, err := json.Marshal(LocationDTOs(AggregateLocations(points, people)))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestLocationTypes_FirstTypedPointWins(t *testing.T) {
	points := []models.TrajectoryPoint{
		{PointID: 1, LocationName: strp("A")},
		point(2, "A", 1900, 0, 0, 2),
		point(3, "A", 1901, 0, 0, 3),
		point(4, "B", 1901, 0, 0, 1),
	}

	types := LocationTypes(points)

	assert.Equal(t, map[string]int{"A": 2, "B": 1}, types)
}

func TestComparePeople(t *testing.T) {
	assert.Negative(t, ComparePeople(person(1, "b", nil), person(2, "a", nil)))
	assert.Negative(t, ComparePeople(person(1, "a", nil), person(1, "b", nil)))
	assert.Positive(t, ComparePeople(models.Person{PersonID: 1}, person(1, "a", nil)))
	assert.Zero(t, ComparePeople(models.Person{PersonID: 1}, models.Person{PersonID: 1}))
}
