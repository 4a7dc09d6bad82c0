package antimeridian

import (
	"math"
	"testing"
)

func deg(lng, lat float64) LatLng {
	return LatLng{Lng: lng * math.Pi / 180, Lat: lat * math.Pi / 180}
}

func TestIsRingCrossed(t *testing.T) {
	cases := []struct {
		name string
		ring Ring
		want bool
	}{
		{
			name: "non-crossing square",
			ring: Ring{deg(0, 0), deg(10, 0), deg(10, 10), deg(0, 10)},
			want: false,
		},
		{
			name: "crosses the antimeridian",
			ring: Ring{deg(170, -10), deg(-170, -10), deg(-170, 10), deg(170, 10)},
			want: true,
		},
		{
			name: "crosses the prime meridian only",
			ring: Ring{deg(-10, -10), deg(10, -10), deg(10, 10), deg(-10, 10)},
			want: false,
		},
		{
			name: "single vertex",
			ring: Ring{deg(0, 0)},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRingCrossed(tc.ring); got != tc.want {
				t.Errorf("IsRingCrossed() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsCrossedBy180(t *testing.T) {
	crossing := Polygon{Outer: Ring{deg(170, -10), deg(-170, -10), deg(-170, 10), deg(170, 10)}}
	plain := Polygon{Outer: Ring{deg(0, 0), deg(10, 0), deg(10, 10), deg(0, 10)}}

	if IsCrossedBy180(MultiPolygon{plain}) {
		t.Errorf("multipolygon with no crossing member should not be crossed")
	}
	if !IsCrossedBy180(MultiPolygon{plain, crossing}) {
		t.Errorf("multipolygon with a crossing member should be crossed")
	}
}
