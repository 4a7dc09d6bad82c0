package wkt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	antimeridian "github.com/konturio/go-antimeridian"
	"github.com/konturio/go-antimeridian/wkt"
)

func TestPrintPolygonClosesRing(t *testing.T) {
	mp := antimeridian.MultiPolygon{
		{Outer: antimeridian.Ring{deg(0, 0), deg(10, 0), deg(10, 10), deg(0, 10)}},
	}

	out := wkt.Print(mp)
	assert.Equal(t, "POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))", out)
}

func TestPrintMultiPolygon(t *testing.T) {
	mp := antimeridian.MultiPolygon{
		{Outer: antimeridian.Ring{deg(0, 0), deg(1, 0), deg(1, 1)}},
		{Outer: antimeridian.Ring{deg(2, 2), deg(3, 2), deg(3, 3)}},
	}

	out := wkt.Print(mp)
	assert.Equal(t, "MULTIPOLYGON(((0 0, 1 0, 1 1, 0 0)), ((2 2, 3 2, 3 3, 2 2)))", out)
}

func TestPrintRoundTrip(t *testing.T) {
	in := "POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))"
	mp, err := wkt.Parse(in)
	assert.NoError(t, err)
	assert.Equal(t, in, wkt.Print(mp))
}
