package aggregation

import (
	"cmp"
	"slices"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
	"github.com/qingliul/huangbinhong-backend-go/internal/spatial"
)

// BuildRoute orders the located aggregates chronologically by first year
// (then id) and links consecutive stops with great-circle legs. Aggregates
// missing coordinates or years are left off the route.
func BuildRoute(aggs []LocationAggregate, locationTypes map[string]int) models.FootprintRoute {
	type stop struct {
		agg   LocationAggregate
		point spatial.Point
	}
	var stops []stop
	for _, agg := range aggs {
		if agg.MinYear == nil {
			continue
		}
		p, ok := spatial.PointFromCoords(agg.Coords())
		if !ok {
			continue
		}
		stops = append(stops, stop{agg: agg, point: p})
	}
	slices.SortStableFunc(stops, func(a, b stop) int {
		return cmp.Or(cmp.Compare(*a.agg.MinYear, *b.agg.MinYear), cmp.Compare(a.agg.ID, b.agg.ID))
	})

	route := models.FootprintRoute{
		Stops: make([]models.RouteStop, 0, len(stops)),
		Legs:  make([]models.RouteLeg, 0, max(len(stops)-1, 0)),
	}
	points := make([]spatial.Point, 0, len(stops))
	for i, s := range stops {
		var typeID *int
		if id, ok := locationTypes[s.agg.ID]; ok {
			typeID = &id
		}
		category, _ := Classify(typeID)
		route.Stops = append(route.Stops, models.RouteStop{
			ID:          s.agg.ID,
			Type:        category,
			FirstYear:   *s.agg.MinYear,
			Coordinates: s.point.Coords(),
		})
		points = append(points, s.point)
		if i > 0 {
			prev := stops[i-1].point
			route.Legs = append(route.Legs, models.RouteLeg{
				From:       stops[i-1].agg.ID,
				To:         s.agg.ID,
				DistanceKm: spatial.DistanceKm(prev, s.point),
				Midpoint:   spatial.Midpoint(prev, s.point).Coords(),
			})
		}
	}
	route.TotalDistanceKm = spatial.PathLength(points)

	if b, center, ok := spatial.BoundingBox(points); ok {
		route.Bounds = &models.BoundingBox{MinLng: b.MinLng, MinLat: b.MinLat, MaxLng: b.MaxLng, MaxLat: b.MaxLat}
		route.Center = center.Coords()
	}
	return route
}
