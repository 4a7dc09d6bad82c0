package wkt

import (
	"math"
	"strconv"
	"strings"

	antimeridian "github.com/konturio/go-antimeridian"
)

// Print renders mp as WKT, in degrees. A single polygon is printed as
// "POLYGON(...)"; anything else (including zero polygons) is printed as
// "MULTIPOLYGON(...)". Every ring is re-closed on output by repeating its
// first vertex, even though the in-memory Ring never repeats it; the repeat
// is skipped when the ring's last vertex already equals its first (as in a
// single-vertex ring).
func Print(mp antimeridian.MultiPolygon) string {
	var b strings.Builder

	if len(mp) == 1 {
		b.WriteString("POLYGON")
		writePolygonData(&b, mp[0])
		return b.String()
	}

	b.WriteString("MULTIPOLYGON(")
	for i, p := range mp {
		if i > 0 {
			b.WriteString(", ")
		}
		writePolygonData(&b, p)
	}
	b.WriteString(")")
	return b.String()
}

// writePolygonData writes a polygon's ring group — "(outer, hole, ...)" —
// without the leading type keyword, which the caller owns: POLYGON writes
// it once, MULTIPOLYGON writes it once for the whole list.
func writePolygonData(b *strings.Builder, p antimeridian.Polygon) {
	if len(p.Outer) == 0 {
		return
	}

	b.WriteString("(")
	writeRing(b, p.Outer)
	for _, hole := range p.Holes {
		b.WriteString(", ")
		writeRing(b, hole)
	}
	b.WriteString(")")
}

func writeRing(b *strings.Builder, ring antimeridian.Ring) {
	b.WriteString("(")
	for i, pt := range ring {
		if i > 0 {
			b.WriteString(", ")
		}
		writePoint(b, pt)
	}

	if last := ring[len(ring)-1]; !last.Equal(ring[0]) {
		b.WriteString(", ")
		writePoint(b, ring[0])
	}
	b.WriteString(")")
}

func writePoint(b *strings.Builder, pt antimeridian.LatLng) {
	b.WriteString(formatDeg(radToDeg(pt.Lng)))
	b.WriteString(" ")
	b.WriteString(formatDeg(radToDeg(pt.Lat)))
}

func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

func formatDeg(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
