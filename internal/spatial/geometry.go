package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Point is a WGS84 position in degrees, in the [lng, lat] order the front end uses
type Point struct {
	Lng float64
	Lat float64
}

// PointFromCoords builds a Point from a [lng, lat] pair. ok is false for
// anything that is not a pair of finite numbers.
func PointFromCoords(coords []float64) (Point, bool) {
	if len(coords) != 2 {
		return Point{}, false
	}
	for _, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Point{}, false
		}
	}
	return Point{Lng: coords[0], Lat: coords[1]}, true
}

// LatLng converts p to an s2.LatLng
func (p Point) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

// Coords returns p as [lng, lat]
func (p Point) Coords() []float64 {
	return []float64{p.Lng, p.Lat}
}

// FromLatLng converts an s2.LatLng to a Point
func FromLatLng(ll s2.LatLng) Point {
	return Point{Lng: ll.Lng.Degrees(), Lat: ll.Lat.Degrees()}
}

// Bounds is a lng/lat bounding rectangle
type Bounds struct {
	MinLng float64
	MinLat float64
	MaxLng float64
	MaxLat float64
}

// BoundingBox returns the smallest rectangle containing points, using s2's
// rect bounder so runs crossing the antimeridian are handled. ok is false
// for an empty input.
func BoundingBox(points []Point) (b Bounds, center Point, ok bool) {
	if len(points) == 0 {
		return Bounds{}, Point{}, false
	}
	rect := s2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(p.LatLng())
	}
	lo, hi := rect.Lo(), rect.Hi()
	b = Bounds{
		MinLng: lo.Lng.Degrees(),
		MinLat: lo.Lat.Degrees(),
		MaxLng: hi.Lng.Degrees(),
		MaxLat: hi.Lat.Degrees(),
	}
	return b, FromLatLng(rect.Center()), true
}

// PathLength returns the great-circle length of the polyline through points in kilometers
func PathLength(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += DistanceKm(points[i-1], points[i])
	}
	return total
}
