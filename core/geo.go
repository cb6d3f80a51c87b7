// File: geo.go
// Role: Distances between coordinates, shared by heuristics and generators.
package core

import "math"

// EarthRadiusMeters is the mean Earth radius used by HaversineMeters.
const EarthRadiusMeters = 6371000.0

// EuclideanDistance is the straight-line distance between a and b in
// coordinate space (degrees), ignoring Earth curvature.
func EuclideanDistance(a, b Coord) float64 {
	return math.Hypot(a.Lon-b.Lon, a.Lat-b.Lat)
}

// HaversineMeters is the great-circle distance between a and b in metres.
func HaversineMeters(a, b Coord) float64 {
	const rad = math.Pi / 180
	lat1, lat2 := a.Lat*rad, b.Lat*rad
	dLat := (b.Lat - a.Lat) * rad
	dLon := (b.Lon - a.Lon) * rad

	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(s)))
}
