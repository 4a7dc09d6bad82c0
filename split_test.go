package antimeridian

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// S1 — non-crossing polygon passes through unchanged.
func TestSplitBy180NonCrossingPassesThrough(t *testing.T) {
	square := Polygon{Outer: Ring{deg(0, 0), deg(10, 0), deg(10, 10), deg(0, 10)}}
	mp := MultiPolygon{square}

	result, err := SplitBy180(mp)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.True(t, reflect.DeepEqual(square.Outer, result[0].Outer))
	assert.False(t, IsCrossedBy180(result))
}

// S2 — simple rectangle crossing the antimeridian splits into two
// hemisphere-bound quadrilaterals.
func TestSplitBy180RectangleAcrossAntimeridian(t *testing.T) {
	rect := Polygon{Outer: Ring{deg(170, -10), deg(-170, -10), deg(-170, 10), deg(170, 10)}}
	mp := MultiPolygon{rect}

	result, err := SplitBy180(mp)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.False(t, IsCrossedBy180(result))

	for _, p := range result {
		assert.Len(t, p.Outer, 4)
		assert.NoError(t, p.Validate())
	}
}

// S3 — degenerate single-point ring is never crossed and is deep-copied.
func TestSplitBy180SinglePointRing(t *testing.T) {
	point := Polygon{Outer: Ring{deg(0, 0)}}
	mp := MultiPolygon{point}

	assert.False(t, IsCrossedBy180(mp))

	result, err := SplitBy180(mp)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, point.Outer, result[0].Outer)
}

// S5 — O-shape: outer ring crosses the antimeridian, a hole entirely on one
// side of the split must end up in exactly one output polygon.
func TestSplitBy180AssignsHoleToOneSide(t *testing.T) {
	outer := Ring{deg(170, -10), deg(-170, -10), deg(-170, 10), deg(170, 10)}
	hole := Ring{deg(172, -5), deg(178, -5), deg(178, 5), deg(172, 5)}
	poly := Polygon{Outer: outer, Holes: []Ring{hole}}

	result, err := SplitBy180(MultiPolygon{poly})
	assert.NoError(t, err)
	assert.Len(t, result, 2)

	totalHoles := 0
	polysWithHole := 0
	for _, p := range result {
		totalHoles += len(p.Holes)
		if len(p.Holes) > 0 {
			polysWithHole++
		}
	}
	assert.Equal(t, 1, totalHoles, "the hole must end up in exactly one output polygon")
	assert.Equal(t, 1, polysWithHole)
}

// S6 — a multipolygon with one crossing member and one non-crossing member
// yields the split halves followed by a deep copy of the untouched member.
func TestSplitBy180MixedMultiPolygon(t *testing.T) {
	crossing := Polygon{Outer: Ring{deg(170, -10), deg(-170, -10), deg(-170, 10), deg(170, 10)}}
	plain := Polygon{Outer: Ring{deg(0, 0), deg(10, 0), deg(10, 10), deg(0, 10)}}

	result, err := SplitBy180(MultiPolygon{crossing, plain})
	assert.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, plain.Outer, result[2].Outer)
}

func TestSplitBy180InvalidInput(t *testing.T) {
	_, err := SplitBy180(MultiPolygon{{}})
	assert.ErrorIs(t, err, ErrEmptyRing)
}

func TestSplit180LatOnEquator(t *testing.T) {
	// Two points straddling the antimeridian on the equator: the great
	// circle through them is the equator itself, so the crossing latitude
	// is exactly 0.
	lat := split180Lat(deg(170, 0), deg(-170, 0))
	assert.InDelta(t, 0.0, lat, 1e-12)
}
