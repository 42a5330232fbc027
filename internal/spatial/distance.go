package spatial

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the Earth's mean radius in kilometers
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between a and b in kilometers
func DistanceKm(a, b Point) float64 {
	return a.LatLng().Distance(b.LatLng()).Radians() * EarthRadiusKm
}

// Midpoint calculates the midpoint between two points on the great circle
func Midpoint(a, b Point) Point {
	mid := s2.Interpolate(0.5, s2.PointFromLatLng(a.LatLng()), s2.PointFromLatLng(b.LatLng()))
	return FromLatLng(s2.LatLngFromPoint(mid))
}
