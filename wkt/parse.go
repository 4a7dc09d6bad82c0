// Package wkt reads and writes the WKT POLYGON / MULTIPOLYGON subset the
// antimeridian split engine operates on.
package wkt

import (
	"math"
	"strconv"
	"strings"

	antimeridian "github.com/konturio/go-antimeridian"
)

// Parse reads a POLYGON or MULTIPOLYGON WKT string into a MultiPolygon.
// Coordinates are read as "lng lat" pairs in degrees and converted to
// radians. A ring's closing vertex, if repeated verbatim, is dropped — the
// in-memory Ring never repeats it.
func Parse(input string) (antimeridian.MultiPolygon, error) {
	p := &parser{data: input}

	isMulti, err := p.readType()
	if err != nil {
		return nil, err
	}

	if isMulti {
		return p.parseMultiPolygon()
	}
	return p.parsePolygon()
}

type parser struct {
	data string
	pos  int
}

func (p *parser) isEmpty() bool { return p.pos >= len(p.data) }

func (p *parser) peek() byte { return p.data[p.pos] }

func (p *parser) advance(n int) { p.pos += n }

func (p *parser) skipWS() {
	for !p.isEmpty() && isSpace(p.peek()) {
		p.advance(1)
	}
}

func (p *parser) fail(kind ErrorKind) error {
	return &ParseError{Kind: kind, Pos: p.pos}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlnum(b byte) bool {
	return isAlpha(b) || (b >= '0' && b <= '9')
}

// readType reads the leading type name and reports whether it is
// "multipolygon" (true) or "polygon" (false).
func (p *parser) readType() (bool, error) {
	p.skipWS()
	if p.isEmpty() {
		return false, p.fail(ErrTypeExpected)
	}

	start := p.pos
	for !p.isEmpty() && isAlpha(p.peek()) {
		p.advance(1)
	}
	if p.pos == start {
		return false, p.fail(ErrTypeExpected)
	}

	name := strings.ToLower(p.data[start:p.pos])
	switch name {
	case "polygon":
		return false, nil
	case "multipolygon":
		return true, nil
	default:
		return false, p.fail(ErrInvalidType)
	}
}

func (p *parser) parsePolygon() (antimeridian.MultiPolygon, error) {
	poly, ok, err := p.parseNextPolygon(false)
	if err != nil {
		return nil, err
	}
	if !ok {
		// "POLYGON" with no ring data at all: an empty polygon.
		return antimeridian.MultiPolygon{{}}, nil
	}
	return antimeridian.MultiPolygon{poly}, nil
}

func (p *parser) parseMultiPolygon() (antimeridian.MultiPolygon, error) {
	p.skipWS()
	if p.isEmpty() {
		return antimeridian.MultiPolygon{}, nil
	}

	if p.peek() != '(' {
		return nil, p.fail(ErrLeftParenExpected)
	}
	p.advance(1)

	var result antimeridian.MultiPolygon
	for {
		poly, ok, err := p.parseNextPolygon(len(result) > 0)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		result = append(result, poly)
	}

	p.skipWS()
	if p.isEmpty() || p.peek() != ')' {
		return nil, p.fail(ErrRightParenExpected)
	}
	p.advance(1)

	return result, nil
}

// parseNextPolygon parses one "( ring, ring, ... )" polygon body. wantComma
// requires a leading comma (this isn't the first polygon in a
// multipolygon). It reports ok=false, err=nil at the natural end of the
// enclosing polygon list.
func (p *parser) parseNextPolygon(wantComma bool) (antimeridian.Polygon, bool, error) {
	p.skipWS()
	if p.isEmpty() || p.peek() == ')' {
		return antimeridian.Polygon{}, false, nil
	}

	if wantComma {
		if p.peek() != ',' {
			return antimeridian.Polygon{}, false, p.fail(ErrCommaExpected)
		}
		p.advance(1)
		p.skipWS()
	}

	if p.isEmpty() || p.peek() != '(' {
		return antimeridian.Polygon{}, false, p.fail(ErrLeftParenExpected)
	}
	p.advance(1)

	var rings []antimeridian.Ring
	for {
		ring, ok, err := p.parseNextRing(len(rings) > 0)
		if err != nil {
			return antimeridian.Polygon{}, false, err
		}
		if !ok {
			break
		}
		rings = append(rings, ring)
	}

	p.skipWS()
	if p.isEmpty() || p.peek() != ')' {
		return antimeridian.Polygon{}, false, p.fail(ErrRightParenExpected)
	}
	p.advance(1)

	poly := antimeridian.Polygon{}
	if len(rings) > 0 {
		poly.Outer = rings[0]
		poly.Holes = rings[1:]
	}
	return poly, true, nil
}

func (p *parser) parseNextRing(wantComma bool) (antimeridian.Ring, bool, error) {
	p.skipWS()
	if p.isEmpty() || p.peek() == ')' {
		return nil, false, nil
	}

	if wantComma {
		if p.peek() != ',' {
			return nil, false, p.fail(ErrCommaExpected)
		}
		p.advance(1)
		p.skipWS()
	}

	if p.isEmpty() || p.peek() != '(' {
		return nil, false, p.fail(ErrLeftParenExpected)
	}
	p.advance(1)

	var ring antimeridian.Ring
	for {
		point, ok, err := p.parseNextPoint(ring)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			break
		}
		ring = append(ring, point)
	}

	p.skipWS()
	if p.isEmpty() || p.peek() != ')' {
		return nil, false, p.fail(ErrRightParenExpected)
	}
	p.advance(1)

	return ring, true, nil
}

// parseNextPoint parses one coordinate pair. It silently drops the closing
// vertex when it exactly repeats the ring's first vertex, matching this
// format's closed-ring convention.
func (p *parser) parseNextPoint(ring antimeridian.Ring) (antimeridian.LatLng, bool, error) {
	p.skipWS()
	if p.isEmpty() || p.peek() == ')' {
		return antimeridian.LatLng{}, false, nil
	}

	if len(ring) > 0 {
		if p.peek() != ',' {
			return antimeridian.LatLng{}, false, p.fail(ErrCommaExpected)
		}
		p.advance(1)
	}

	lngDeg, err := p.parseCoord()
	if err != nil {
		return antimeridian.LatLng{}, false, err
	}
	if lngDeg < -180 || lngDeg > 180 {
		return antimeridian.LatLng{}, false, p.fail(ErrCoordinateOutOfRange)
	}
	latDeg, err := p.parseCoord()
	if err != nil {
		return antimeridian.LatLng{}, false, err
	}
	if latDeg < -90 || latDeg > 90 {
		return antimeridian.LatLng{}, false, p.fail(ErrCoordinateOutOfRange)
	}

	coord := antimeridian.LatLng{
		Lng: degToRad(lngDeg),
		Lat: degToRad(latDeg),
	}

	if len(ring) > 0 && coord.Equal(ring[0]) {
		return antimeridian.LatLng{}, false, nil
	}

	return coord, true, nil
}

func (p *parser) parseCoord() (float64, error) {
	p.skipWS()

	start := p.pos
	for !p.isEmpty() {
		b := p.peek()
		if isAlnum(b) || b == '+' || b == '-' || b == '.' {
			p.advance(1)
			continue
		}
		break
	}
	if p.pos == start {
		return 0, p.fail(ErrNumberExpected)
	}

	value, err := strconv.ParseFloat(p.data[start:p.pos], 64)
	if err != nil {
		return 0, p.fail(ErrInvalidNumber)
	}
	return value, nil
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
