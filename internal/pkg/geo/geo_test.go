package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lat1     float64
		lon1     float64
		lat2     float64
		lon2     float64
		expected float64
		delta    float64
	}{
		{
			name: "same point", lat1: 12.9716, lon1: 77.5946,
			lat2: 12.9716, lon2: 77.5946, expected: 0, delta: 0.01,
		},
		{
			name: "bangalore to chennai", lat1: 12.9716, lon1: 77.5946,
			lat2: 13.0827, lon2: 80.2707, expected: 290172, delta: 500,
		},
		{
			name: "short hop", lat1: 12.9716, lon1: 77.5946,
			lat2: 12.9725, lon2: 77.5946, expected: 100, delta: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dist := HaversineDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, dist, tt.delta)
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	// About one degree of latitude is 111 km, so 0.0009 degrees is about
	// 100 meters.
	offices := []Office{
		{Name: "HQ", Latitude: 12.9716, Longitude: 77.5946, RadiusMeters: 100},
		{Name: "Annex", Latitude: 12.9800, Longitude: 77.5946, RadiusMeters: 150},
	}

	t.Run("inside radius matches", func(t *testing.T) {
		t.Parallel()

		match := Resolve(12.9717, 77.5946, offices)
		assert.True(t, match.IsWithin)
		assert.Equal(t, "HQ", match.Office.Name)
	})

	t.Run("exactly on boundary matches", func(t *testing.T) {
		t.Parallel()

		office := Office{Name: "Solo", Latitude: 0, Longitude: 0, RadiusMeters: HaversineDistance(0, 0, 0.0009, 0)}
		match := Resolve(0.0009, 0, []Office{office})
		assert.True(t, match.IsWithin)
	})

	t.Run("just beyond boundary does not match", func(t *testing.T) {
		t.Parallel()

		boundary := HaversineDistance(0, 0, 0.0009, 0)
		office := Office{Name: "Solo", Latitude: 0, Longitude: 0, RadiusMeters: boundary - 1}
		match := Resolve(0.0009, 0, []Office{office})
		assert.False(t, match.IsWithin)
		assert.Nil(t, match.Office)
	})

	t.Run("nearest office wins when radii overlap", func(t *testing.T) {
		t.Parallel()

		overlapping := []Office{
			{Name: "Far", Latitude: 0.0010, Longitude: 0, RadiusMeters: 500},
			{Name: "Near", Latitude: 0.0002, Longitude: 0, RadiusMeters: 500},
		}
		match := Resolve(0, 0, overlapping)
		assert.True(t, match.IsWithin)
		assert.Equal(t, "Near", match.Office.Name)
	})

	t.Run("no offices", func(t *testing.T) {
		t.Parallel()

		match := Resolve(12.9716, 77.5946, nil)
		assert.False(t, match.IsWithin)
		assert.Nil(t, match.Office)
	})
}
