package geo

import "math"

const earthRadiusMeters = 6371000

// HaversineDistance returns the great-circle distance between two
// coordinates in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Office is a geofenced location candidate for Resolve.
type Office struct {
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// Match is the result of resolving a coordinate against a set of offices.
type Match struct {
	IsWithin       bool
	Office         *Office
	DistanceMeters float64
}

// Resolve checks whether the given point falls inside any office geofence.
// The boundary is inclusive: a point at exactly the configured radius
// counts as within. When several geofences contain the point, the office
// with the smallest distance wins so the result is deterministic
// regardless of configuration order.
func Resolve(lat, lng float64, offices []Office) Match {
	var best Match
	for i := range offices {
		office := offices[i]
		dist := HaversineDistance(lat, lng, office.Latitude, office.Longitude)
		if dist > office.RadiusMeters {
			continue
		}
		if !best.IsWithin || dist < best.DistanceMeters {
			best = Match{IsWithin: true, Office: &office, DistanceMeters: dist}
		}
	}
	return best
}
