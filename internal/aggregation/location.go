// Package aggregation folds flat relational rows into the nested,
// client-ready aggregates served by the API: places, footprints,
// age-annotated timeline events and shaped works listings.
//
// Everything here is request scoped and works on in-memory rows; the
// package never talks to the database itself.
package aggregation

import (
	"cmp"
	"slices"
	"sort"
	"strconv"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

// UnknownLocationKey is the id of the aggregate holding trajectory points
// that carry no location name. If a real location already uses that name the
// id gains trailing underscores until it is unique.
const UnknownLocationKey = "__unknown_location__"

type locationKey struct {
	name string
	null bool
}

func keyOf(name *string) locationKey {
	if name == nil {
		return locationKey{null: true}
	}
	return locationKey{name: *name}
}

// locationIDs returns the aggregate id function for one set of points.
func locationIDs(points []models.TrajectoryPoint) func(locationKey) string {
	names := make(map[string]struct{}, len(points))
	for _, p := range points {
		if p.LocationName != nil {
			names[*p.LocationName] = struct{}{}
		}
	}
	unknown := UnknownLocationKey
	for {
		if _, taken := names[unknown]; !taken {
			break
		}
		unknown += "_"
	}
	return func(k locationKey) string {
		if k.null {
			return unknown
		}
		return k.name
	}
}

// LocationAggregate is every trajectory point sharing one location name,
// folded into a single record.
type LocationAggregate struct {
	ID        string
	MinYear   *int
	MaxYear   *int
	Longitude *float64
	Latitude  *float64
	Info      *string
	People    []models.Person // ordered by ComparePeople, no duplicates
}

// AggregateLocations groups points by location name. Points are consumed in
// the given order: years widen the range, while coordinates and info keep the
// first non-nil value seen. peopleByPoint holds the persons met at each point.
// The result is sorted by id.
func AggregateLocations(points []models.TrajectoryPoint, peopleByPoint map[int][]models.Person) []LocationAggregate {
	idOf := locationIDs(points)
	byKey := make(map[locationKey]*LocationAggregate)
	for _, p := range points {
		key := keyOf(p.LocationName)
		agg, ok := byKey[key]
		if !ok {
			agg = &LocationAggregate{ID: idOf(key)}
			byKey[key] = agg
		}
		agg.addYear(p.Year)
		agg.setCoords(p.Longitude, p.Latitude)
		agg.setInfo(p.EventDesc)
		for _, person := range peopleByPoint[p.PointID] {
			agg.addPerson(person)
		}
	}

	result := make([]LocationAggregate, 0, len(byKey))
	for _, agg := range byKey {
		result = append(result, *agg)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// LocationTypes maps each aggregate id, as built by AggregateLocations, to
// the type id of the first point of that location that carries one.
func LocationTypes(points []models.TrajectoryPoint) map[string]int {
	idOf := locationIDs(points)
	types := make(map[string]int)
	for _, p := range points {
		if p.TypeID == nil {
			continue
		}
		key := idOf(keyOf(p.LocationName))
		if _, seen := types[key]; !seen {
			types[key] = *p.TypeID
		}
	}
	return types
}

func (a *LocationAggregate) addYear(year *int) {
	if year == nil {
		return
	}
	y := *year
	if a.MinYear == nil || y < *a.MinYear {
		a.MinYear = &y
	}
	if a.MaxYear == nil || y > *a.MaxYear {
		a.MaxYear = &y
	}
}

func (a *LocationAggregate) setCoords(lng, lat *float64) {
	if a.Longitude == nil && lng != nil {
		v := *lng
		a.Longitude = &v
	}
	if a.Latitude == nil && lat != nil {
		v := *lat
		a.Latitude = &v
	}
}

func (a *LocationAggregate) setInfo(info *string) {
	if a.Info == nil && info != nil {
		v := *info
		a.Info = &v
	}
}

func (a *LocationAggregate) addPerson(p models.Person) {
	i, found := slices.BinarySearchFunc(a.People, p, ComparePeople)
	if found {
		return
	}
	a.People = slices.Insert(a.People, i, p)
}

// ComparePeople orders persons by id, then by name with nil names last.
func ComparePeople(a, b models.Person) int {
	if c := cmp.Compare(a.PersonID, b.PersonID); c != 0 {
		return c
	}
	switch {
	case a.Name == nil && b.Name == nil:
		return 0
	case a.Name == nil:
		return 1
	case b.Name == nil:
		return -1
	}
	return cmp.Compare(*a.Name, *b.Name)
}

// YearRangeLabel renders the year range as "1880" or "1880-1885".
// It is nil when no point of the location had a year.
func (a LocationAggregate) YearRangeLabel() *string {
	if a.MinYear == nil || a.MaxYear == nil {
		return nil
	}
	label := strconv.Itoa(*a.MinYear)
	if *a.MinYear != *a.MaxYear {
		label += "-" + strconv.Itoa(*a.MaxYear)
	}
	return &label
}

// Coords returns [lng, lat], or nil unless both are known.
func (a LocationAggregate) Coords() []float64 {
	if a.Longitude == nil || a.Latitude == nil {
		return nil
	}
	return []float64{*a.Longitude, *a.Latitude}
}

// ToDTO converts the aggregate into its client representation.
func (a LocationAggregate) ToDTO() models.LocationDTO {
	people := make([]models.PersonDTO, 0, len(a.People))
	for _, p := range a.People {
		people = append(people, p.ToDTO())
	}
	return models.LocationDTO{
		ID:     a.ID,
		Year:   a.YearRangeLabel(),
		Info:   a.Info,
		People: people,
		Coords: a.Coords(),
	}
}

// LocationDTOs converts a list of aggregates, keeping their order.
func LocationDTOs(aggs []LocationAggregate) []models.LocationDTO {
	dtos := make([]models.LocationDTO, 0, len(aggs))
	for _, a := range aggs {
		dtos = append(dtos, a.ToDTO())
	}
	return dtos
}
