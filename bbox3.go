package antimeridian

import "math"

// Bbox3 is an axis-aligned bounding box in 3-space, used as a cheap,
// conservative filter for spherical membership queries (point-in-ring,
// hole assignment).
type Bbox3 struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// bboxFromVect3 returns the degenerate bbox containing exactly v.
func bboxFromVect3(v Vect3) Bbox3 {
	return Bbox3{
		XMin: v.X, XMax: v.X,
		YMin: v.Y, YMax: v.Y,
		ZMin: v.Z, ZMax: v.Z,
	}
}

// Merge returns the smallest bbox containing both b and other.
func (b Bbox3) Merge(other Bbox3) Bbox3 {
	if other.XMin < b.XMin {
		b.XMin = other.XMin
	}
	if other.XMax > b.XMax {
		b.XMax = other.XMax
	}
	if other.YMin < b.YMin {
		b.YMin = other.YMin
	}
	if other.YMax > b.YMax {
		b.YMax = other.YMax
	}
	if other.ZMin < b.ZMin {
		b.ZMin = other.ZMin
	}
	if other.ZMax > b.ZMax {
		b.ZMax = other.ZMax
	}
	return b
}

func (b Bbox3) mergeVect3(v Vect3) Bbox3 {
	return b.Merge(bboxFromVect3(v))
}

// Contains reports whether v lies within b on every axis.
func (b Bbox3) Contains(v Vect3) bool {
	return b.XMin <= v.X && v.X <= b.XMax &&
		b.YMin <= v.Y && v.Y <= b.YMax &&
		b.ZMin <= v.Z && v.Z <= b.ZMax
}

// vect2 is a private 2-D helper used only while projecting a great-circle
// arc onto its own plane, mirroring the C source's file-local Vect2.
type vect2 struct {
	X, Y float64
}

func (v vect2) normalize() vect2 {
	len := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if len <= 0 {
		return vect2{}
	}
	return vect2{v.X / len, v.Y / len}
}

// segmentSide returns which side of the segment (v1, v2) the point v falls on:
// -1, 0, or +1.
func segmentSide(v1, v2, v vect2) int {
	s := (v.X-v1.X)*(v2.Y-v1.Y) - (v2.X-v1.X)*(v.Y-v1.Y)
	return sign(s)
}

// bboxFromSegmentVect3 returns the bbox of the great-circle arc from v1 to
// v2 (not the bbox of the chord between them).
//
// Algorithm: seed with the endpoints; if they differ, project the arc into
// the 2-D basis (v1, v3) where v3 is orthogonal to v1 in the v1/v2 plane,
// then test each world axis direction for whether its projection falls
// between the endpoints' projections — if so, the arc bulges past that
// axis and the arc's point nearest that axis must be merged into the bbox.
func bboxFromSegmentVect3(v1, v2 Vect3) Bbox3 {
	b := bboxFromVect3(v1).mergeVect3(v2)

	if v1.Equal(v2) {
		return b
	}

	vn := v1.Cross(v2).Normalize()
	v3 := vn.Cross(v1).Normalize()

	r1 := vect2{1, 0}
	r2 := vect2{v2.Dot(v1), v2.Dot(v3)}
	origin := vect2{0, 0}
	origSide := segmentSide(r1, r2, origin)

	axes := [6]Vect3{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}

	for _, axis := range axes {
		rx := vect2{axis.Dot(v1), axis.Dot(v3)}.normalize()
		if segmentSide(r1, r2, rx) != origSide {
			vx := Vect3{
				X: rx.X*v1.X + rx.Y*v3.X,
				Y: rx.X*v1.Y + rx.Y*v3.Y,
				Z: rx.X*v1.Z + rx.Y*v3.Z,
			}
			b = b.mergeVect3(vx)
		}
	}

	return b
}

// bboxFromRing returns the bbox of every great-circle arc making up ring,
// including the closing (last, first) arc. Equal consecutive vertices
// contribute no arc and are skipped, matching §4.B.
func bboxFromRing(ring Ring) Bbox3 {
	cur := FromLatLng(ring[0])
	b := bboxFromVect3(cur)

	if len(ring) == 1 {
		return b
	}

	for i := range ring {
		next := FromLatLng(ring[(i+1)%len(ring)])
		if !cur.Equal(next) {
			b = b.Merge(bboxFromSegmentVect3(cur, next))
		}
		cur = next
	}

	return b
}
