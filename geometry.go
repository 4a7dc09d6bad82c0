package antimeridian

import "math"

// nearDegenerateTolerance is the point_between threshold below which an arc
// is considered too narrow for the dot-product test to be numerically
// reliable.
const nearDegenerateTolerance = 1e-10

// PointBetween reports whether p lies on the minor great-circle arc from v1
// to v2: 0 if p coincides with an endpoint, +1 if p is strictly between
// them, -1 otherwise.
func PointBetween(v1, v2, p Vect3) int {
	if p.Equal(v1) || p.Equal(v2) {
		return 0
	}

	mid := v1.Add(v2).Normalize()
	minSimilarity := v1.Dot(mid)

	if math.Abs(1.0-minSimilarity) > nearDegenerateTolerance {
		if p.Dot(mid) > minSimilarity {
			return 1
		}
		return -1
	}

	// Arc is very narrow; the dot-product test against the midpoint loses
	// precision, so fall back to comparing directions away from each
	// endpoint.
	d1 := p.Sub(v1).Normalize()
	d2 := p.Sub(v2).Normalize()
	if d1.Dot(d2) < 0.0 {
		return 1
	}
	return -1
}

// SegmentIntersect reports how two great-circle arcs (v1,v2) and (u1,u2)
// relate: +1 if they cross in their interiors, 0 if an endpoint of one lies
// on the other arc, -1 if they are disjoint.
func SegmentIntersect(v1, v2, u1, u2 Vect3) int {
	vn := v1.Cross(v2).Normalize()
	un := u1.Cross(u2).Normalize()

	normalDot := vn.Dot(un)
	if fpEqual(math.Abs(normalDot), 1.0) {
		// The two arcs lie on the same great circle; fall back to
		// checking whether either arc's endpoint lies on the other.
		if ret := PointBetween(v1, v2, u1); ret != -1 {
			return ret
		}
		if ret := PointBetween(v1, v2, u2); ret != -1 {
			return ret
		}
		if ret := PointBetween(u1, u2, v1); ret != -1 {
			return ret
		}
		return PointBetween(u1, u2, v2)
	}

	v1Side := sign(un.Dot(v1))
	v2Side := sign(un.Dot(v2))
	u1Side := sign(vn.Dot(u1))
	u2Side := sign(vn.Dot(u2))

	if v1Side == v2Side && v1Side != 0 {
		return -1
	}
	if u1Side == u2Side && u1Side != 0 {
		return -1
	}

	if v1Side != v2Side && v1Side+v2Side == 0 &&
		u1Side != u2Side && u1Side+u2Side == 0 {
		intersect := vn.Cross(un).Normalize()
		if PointBetween(v1, v2, intersect) != -1 && PointBetween(u1, u2, intersect) != -1 {
			return 1
		}

		intersect = intersect.Scale(-1.0)
		if PointBetween(v1, v2, intersect) != -1 && PointBetween(u1, u2, intersect) != -1 {
			return 1
		}

		return -1
	}

	// At least one side is exactly zero: an endpoint touches the
	// opposing arc.
	return 0
}

// PointInRing is the spherical point-in-ring test: -1 outside, 0 on the
// boundary (or coincident with a vertex), +1 strictly inside.
//
// ringSign is the hemisphere ring's outer-ring sign (as tracked by the
// split engine); bbox is ring's precomputed spherical bbox. Passing both in
// avoids recomputing them once per hole vertex during hole assignment.
func PointInRing(ring Ring, ringSign int, bbox Bbox3, p LatLng) int {
	if s := sign(p.Lng); s != 0 && s != ringSign {
		return -1
	}

	vect := FromLatLng(p)
	if !bbox.Contains(vect) {
		return -1
	}

	if len(ring) == 1 {
		// Degenerate single-vertex ring: standardized to "on boundary"
		// rather than the original implementation's "inside".
		return 0
	}

	out := LatLng{Lat: p.Lat, Lng: -p.Lng}
	if p.Lng == 0 {
		out.Lng = -float64(ringSign) * 1e-10
	}
	outVect := FromLatLng(out)

	intersectNum := 0
	for i := range ring {
		cur, next := ring.edge(i)
		curVect := FromLatLng(cur)
		if vect.Equal(curVect) {
			return 0
		}

		nextVect := FromLatLng(next)
		if !curVect.Equal(nextVect) {
			switch SegmentIntersect(curVect, nextVect, vect, outVect) {
			case 0:
				return 0
			case 1:
				intersectNum++
			}
		}
	}

	if intersectNum%2 == 0 {
		return -1
	}
	return 1
}
