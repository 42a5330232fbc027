package aggregation

import (
	"strconv"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

// Footprint categories understood by the front end.
const (
	CategoryBirthplace = "birthplace"
	CategoryResidence  = "residence"
	CategoryTravel     = "travel"
)

// OtherTypeLabel is shown when a location's type has no name in trajectory_type.
const OtherTypeLabel = "其他"

type classification struct {
	category   string
	importance int
}

// typeClassifications is hand maintained; only three categories exist.
var typeClassifications = map[int]classification{
	1: {CategoryBirthplace, 10}, // 出生地
	2: {CategoryResidence, 8},   // 居住地
	3: {CategoryTravel, 6},      // 游历地
}

var unknownClassification = classification{CategoryTravel, 5}

// Classify maps a trajectory type id to a front-end category and importance.
// Unknown or missing ids degrade to travel with the lowest importance.
func Classify(typeID *int) (category string, importance int) {
	if typeID == nil {
		return unknownClassification.category, unknownClassification.importance
	}
	c, ok := typeClassifications[*typeID]
	if !ok {
		c = unknownClassification
	}
	return c.category, c.importance
}

// GroupEventsByLocation buckets events by location name, keeping their order.
// Events without a location are dropped.
func GroupEventsByLocation(events []models.TimelineEvent) map[string][]models.TimelineEvent {
	grouped := make(map[string][]models.TimelineEvent)
	for _, e := range events {
		if e.LocationName == nil {
			continue
		}
		grouped[*e.LocationName] = append(grouped[*e.LocationName], e)
	}
	return grouped
}

// ClassifyFootprints builds one footprint per aggregate, in input order.
//
// locationTypes maps location id to type id (see LocationTypes), typeNames maps
// type id to its display name, and eventsByLocation holds the timeline events
// that happened at each location.
func ClassifyFootprints(
	aggs []LocationAggregate,
	locationTypes map[string]int,
	typeNames map[int]string,
	eventsByLocation map[string][]models.TimelineEvent,
) []models.FootprintEntry {
	result := make([]models.FootprintEntry, 0, len(aggs))
	for _, agg := range aggs {
		var typeID *int
		if id, ok := locationTypes[agg.ID]; ok {
			typeID = &id
		}
		category, importance := Classify(typeID)

		typeLabel := OtherTypeLabel
		if typeID != nil {
			if name, ok := typeNames[*typeID]; ok {
				typeLabel = name
			}
		}

		yearLabel := agg.YearRangeLabel()
		result = append(result, models.FootprintEntry{
			ID:          agg.ID,
			Name:        agg.ID,
			Type:        category,
			Year:        yearLabel,
			Coordinates: agg.Coords(),
			Description: agg.Info,
			Importance:  importance,
			TypeLabel:   typeLabel,
			TypeClass:   category,
			TimeEvents:  buildTimeEvents(eventsByLocation[agg.ID], yearLabel, agg.Info),
		})
	}
	return result
}

// buildTimeEvents lists the location's events as (year, title) pairs. With no
// events, it falls back to a single entry made of the year range and the
// location info, provided both are known.
func buildTimeEvents(events []models.TimelineEvent, yearLabel, info *string) []models.TimeEvent {
	entries := make([]models.TimeEvent, 0, len(events))
	for _, e := range events {
		var year *string
		if e.Year != nil {
			y := strconv.Itoa(*e.Year)
			year = &y
		}
		entries = append(entries, models.TimeEvent{Year: year, Event: e.Title})
	}
	if len(entries) == 0 && yearLabel != nil && info != nil {
		entries = append(entries, models.TimeEvent{Year: yearLabel, Event: info})
	}
	return entries
}
