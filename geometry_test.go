package antimeridian

import "testing"

func TestPointBetweenEndpoints(t *testing.T) {
	v := FromLatLng(deg(0, 0))
	w := FromLatLng(deg(90, 0))

	if PointBetween(v, w, v) != 0 {
		t.Errorf("point_between(v, w, v) should be 0")
	}
	if PointBetween(v, w, w) != 0 {
		t.Errorf("point_between(v, w, w) should be 0")
	}

	antipode := v.Scale(-1)
	if PointBetween(v, w, antipode) != -1 {
		t.Errorf("point_between(v, w, -v) should be -1, got %d", PointBetween(v, w, antipode))
	}
}

func TestPointBetweenMidpoint(t *testing.T) {
	v := FromLatLng(deg(0, 0))
	w := FromLatLng(deg(90, 0))
	mid := v.Add(w).Normalize()

	if PointBetween(v, w, mid) != 1 {
		t.Errorf("the midpoint of an arc should be between its endpoints")
	}
}

func TestSegmentIntersectSymmetric(t *testing.T) {
	a := FromLatLng(deg(-10, -10))
	b := FromLatLng(deg(10, 10))
	c := FromLatLng(deg(-10, 10))
	d := FromLatLng(deg(10, -10))

	ab := SegmentIntersect(a, b, c, d)
	cd := SegmentIntersect(c, d, a, b)
	if ab != cd {
		t.Errorf("segment_intersect should be symmetric under swapping arcs: %d != %d", ab, cd)
	}
	if ab != 1 {
		t.Errorf("these two arcs should cross, got %d", ab)
	}
}

func TestSegmentIntersectDisjoint(t *testing.T) {
	a := FromLatLng(deg(0, 0))
	b := FromLatLng(deg(10, 0))
	c := FromLatLng(deg(0, 50))
	d := FromLatLng(deg(10, 50))

	if got := SegmentIntersect(a, b, c, d); got != -1 {
		t.Errorf("parallel, far-apart arcs should not intersect, got %d", got)
	}
}

func TestPointInRingSquare(t *testing.T) {
	ring := Ring{deg(0, 0), deg(10, 0), deg(10, 10), deg(0, 10)}
	bbox := bboxFromRing(ring)

	if PointInRing(ring, 1, bbox, deg(5, 5)) != 1 {
		t.Errorf("center of square should be inside")
	}
	if PointInRing(ring, 1, bbox, deg(50, 50)) != -1 {
		t.Errorf("far outside point should be outside")
	}
	if PointInRing(ring, 1, bbox, deg(0, 0)) != 0 {
		t.Errorf("ring vertex should be on the boundary")
	}
}
