package antimeridian

import "math"

// IsRingCrossed reports whether some edge of ring (cyclic, wrap-around
// included) has endpoints on opposite sides of the 0° meridian whose
// absolute longitudes sum past π — the unique signature of an
// antimeridian crossing, distinguishing it from an ordinary prime-meridian
// crossing. A single-vertex ring is never crossed.
func IsRingCrossed(ring Ring) bool {
	if len(ring) < 2 {
		return false
	}

	for i := range ring {
		cur, next := ring.edge(i)
		if sign(cur.Lng) != sign(next.Lng) && math.Abs(cur.Lng)+math.Abs(next.Lng) > math.Pi {
			return true
		}
	}
	return false
}

// IsPolygonCrossed reports whether p's outer ring crosses the
// antimeridian. A hole is assumed never to cross it without the outer ring
// also crossing it (§4.D's input-validity assumption), so holes are not
// inspected.
func IsPolygonCrossed(p Polygon) bool {
	return IsRingCrossed(p.Outer)
}

// IsCrossedBy180 reports whether any polygon in mp crosses the
// antimeridian.
func IsCrossedBy180(mp MultiPolygon) bool {
	for _, p := range mp {
		if IsPolygonCrossed(p) {
			return true
		}
	}
	return false
}
