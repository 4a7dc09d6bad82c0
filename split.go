package antimeridian

import (
	"math"
	"sort"
)

// intersectDir records which way a ring crosses the meridian segment it
// intersects: west-to-east or east-to-west, as seen walking the ring in its
// stored order.
type intersectDir int

const (
	dirNone intersectDir = iota
	dirWE
	dirEW
)

// splitIntersect is a single antimeridian or prime-meridian crossing found
// while walking a ring. vertexIndex is the index, into the owning
// splitState's vertices slice, of the vertex immediately preceding the
// crossing.
type splitIntersect struct {
	dir         intersectDir
	isPrime     bool
	lat         float64
	vertexIndex int
	sortOrder   int
}

// splitVertex is one ring vertex as seen by the split engine: its
// coordinate, the hemisphere sign it was assigned during ring processing,
// the index of the crossing (if any) immediately following it, a link back
// to the ring's other endpoint (closing the ring), and whether the
// reconstruction traversal has already consumed it.
type splitVertex struct {
	latlng       LatLng
	intersectIdx int
	sign         int
	link         int
	visited      bool
}

// splitState is the scratch workspace the split engine builds while
// splitting a single antimeridian-crossing polygon: every vertex from every
// ring flattened into one array, every crossing found along the way, and
// the rings that don't need splitting at all.
type splitState struct {
	vertices         []splitVertex
	intersects       []splitIntersect
	sortedIntersects []int
	holes            []Ring
}

// SplitBy180 rewrites mp so that every ring of every polygon lies strictly
// within one hemisphere of the 180° meridian. Polygons that don't cross it
// are copied through unchanged; polygons that do are replaced by one or
// more hemisphere-bound polygons covering the same area.
func SplitBy180(mp MultiPolygon) (MultiPolygon, error) {
	if err := mp.Validate(); err != nil {
		return nil, err
	}

	result := make(MultiPolygon, 0, len(mp))
	for _, p := range mp {
		if !IsPolygonCrossed(p) {
			result = append(result, p.Clone())
			continue
		}

		split := splitPolygonBy180(p)
		result = append(result, split...)
	}
	return result, nil
}

// splitPolygonBy180 splits a single polygon known to cross the
// antimeridian. It follows split.c's three-phase shape: flatten every ring
// into the vertex/intersect scratch arrays, sort the crossings by their
// position along the 0°/180° meridian circle, then reconstruct polygons by
// traversing the vertex array.
func splitPolygonBy180(p Polygon) MultiPolygon {
	state := &splitState{
		vertices: make([]splitVertex, 0, ringVertexCount(p)),
		holes:    make([]Ring, 0, len(p.Holes)),
	}

	// The outer ring is always processed: splitPolygonBy180 is only
	// called once the outer ring is already known to be crossed.
	splitProcessRing(state, p.Outer)
	for _, hole := range p.Holes {
		if IsRingCrossed(hole) {
			splitProcessRing(state, hole)
		} else {
			state.holes = append(state.holes, hole)
		}
	}

	splitSortIntersects(state)

	return splitCreateMultiPolygon(state)
}

func ringVertexCount(p Polygon) int {
	n := len(p.Outer)
	for _, h := range p.Holes {
		n += len(h)
	}
	return n
}

// splitProcessRing appends ring's vertices to state's scratch array,
// recording each vertex's hemisphere sign and adding a crossing scratch
// entry at every hemisphere sign change. A change whose endpoints' absolute
// longitudes sum to less than π is flagged as a prime-meridian crossing;
// any other is an antimeridian crossing.
func splitProcessRing(state *splitState, ring Ring) {
	n := len(ring)
	ringSign := 0
	firstVertexIdx := -1
	vertexIdx := -1

	for i := 0; i < n; i++ {
		cur, next := ring.edge(i)

		vertexIdx = splitAddVertex(state, cur)
		if firstVertexIdx < 0 {
			firstVertexIdx = vertexIdx
		}

		nextSign := sign(next.Lng)
		if ringSign == 0 {
			ringSign = sign(cur.Lng)
			if ringSign != 0 {
				for j := firstVertexIdx; j <= vertexIdx; j++ {
					state.vertices[j].sign = ringSign
				}
			}
		} else {
			state.vertices[vertexIdx].sign = ringSign
		}

		if ringSign != 0 && nextSign != 0 && nextSign != ringSign {
			dir := dirWE
			if ringSign > 0 {
				dir = dirEW
			}
			isPrime := math.Abs(cur.Lng)+math.Abs(next.Lng) < math.Pi
			lat := split180Lat(cur, next)
			splitAddIntersectAfter(state, vertexIdx, dir, isPrime, lat)

			ringSign = nextSign
		}
	}

	splitLinkVertices(state, firstVertexIdx, vertexIdx)
}

// split180Lat finds the latitude at which the great circle through coord1
// and coord2 crosses the 0°/180° meridian plane.
func split180Lat(coord1, coord2 LatLng) float64 {
	p1 := FromLatLng(coord1)
	p2 := FromLatLng(coord2)
	normal := p1.Cross(p2)

	y := 1.0
	if coord1.Lng < 0 || coord2.Lng > 0 {
		y = -1.0
	}

	s := Vect3{X: -(normal.Z * y), Y: 0, Z: normal.X * y}.Normalize()
	return math.Asin(s.Z)
}

func splitAddVertex(state *splitState, latlng LatLng) int {
	idx := len(state.vertices)
	state.vertices = append(state.vertices, splitVertex{
		latlng:       latlng,
		intersectIdx: -1,
		sign:         0,
		link:         -1,
	})
	return idx
}

func splitAddIntersectAfter(state *splitState, after int, dir intersectDir, isPrime bool, lat float64) {
	idx := len(state.intersects)
	state.intersects = append(state.intersects, splitIntersect{
		dir:         dir,
		isPrime:     isPrime,
		lat:         lat,
		vertexIndex: after,
		sortOrder:   -1,
	})
	state.vertices[after].intersectIdx = idx
}

func splitLinkVertices(state *splitState, idx1, idx2 int) {
	state.vertices[idx1].link = idx2
	state.vertices[idx2].link = idx1
}

// splitSortIntersects orders every crossing by its position along a
// linearized meridian circumference: antimeridian crossings sort by raw
// latitude, prime-meridian crossings sort past either pole so that walking
// the sorted array end to end traces the meridian circle exactly once.
func splitSortIntersects(state *splitState) {
	order := make([]int, len(state.intersects))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return intersectSortKey(state.intersects[order[a]]) < intersectSortKey(state.intersects[order[b]])
	})

	for rank, idx := range order {
		state.intersects[idx].sortOrder = rank
	}
	state.sortedIntersects = order
}

func intersectSortKey(it splitIntersect) float64 {
	v := it.lat
	if it.isPrime {
		if v < 0 {
			v = -math.Pi - v
		} else {
			v = math.Pi - v
		}
	}
	return v
}

// splitCreateMultiPolygon repeatedly picks the lowest-indexed unvisited
// vertex and traces out the polygon it belongs to, until every vertex has
// been consumed by some polygon's boundary.
func splitCreateMultiPolygon(state *splitState) MultiPolygon {
	var result MultiPolygon
	start := 0
	for {
		vertexIdx, ok := splitFindNextVertex(state, start)
		if !ok {
			break
		}
		start = vertexIdx + 1

		result = append(result, splitCreatePolygonFromVertex(state, vertexIdx))
	}
	return result
}

func splitFindNextVertex(state *splitState, from int) (int, bool) {
	for i := from; i < len(state.vertices); i++ {
		if !state.vertices[i].visited {
			return i, true
		}
	}
	return -1, false
}

// splitCreatePolygonFromVertex walks the vertex array starting at
// vertexIdx, switching direction and jumping across the meridian whenever
// it meets a crossing, until it returns to an already-visited vertex —
// closing the ring. It then assigns any leftover, unsplit holes whose
// vertices fall inside the new ring.
func splitCreatePolygonFromVertex(state *splitState, vertexIdx int) Polygon {
	var loop Ring

	idx := vertexIdx
	ringSign := state.vertices[idx].sign
	step := 1

	for !state.vertices[idx].visited {
		vertex := &state.vertices[idx]
		loop = appendLatLngUnique(loop, vertex.latlng)
		vertex.visited = true

		var nextIdx, intersectIdx int
		if vertex.link > -1 && (step > 0) == (idx > vertex.link) {
			nextIdx = vertex.link
			if nextIdx > idx {
				intersectIdx = nextIdx
			} else {
				intersectIdx = idx
			}
		} else {
			nextIdx = idx + step
			if nextIdx > idx {
				intersectIdx = idx
			} else {
				intersectIdx = nextIdx
			}
		}

		if intersect := splitGetIntersectAfter(state, intersectIdx); intersect != nil {
			loop = appendLatLngUnique(loop, splitIntersectLatLng(intersect, ringSign))

			pairOrder := intersect.sortOrder - 1
			if intersect.sortOrder%2 == 0 {
				pairOrder = intersect.sortOrder + 1
			}
			pair := &state.intersects[state.sortedIntersects[pairOrder]]
			intersectIdx = pair.vertexIndex

			loop = appendLatLngUnique(loop, splitIntersectLatLng(pair, ringSign))

			if (ringSign > 0) == (pair.dir == dirWE) {
				step = 1
			} else {
				step = -1
			}

			if step > 0 {
				pairVertex := &state.vertices[intersectIdx]
				if pairVertex.link > -1 && intersectIdx > pairVertex.link {
					nextIdx = pairVertex.link
				} else {
					nextIdx = intersectIdx + 1
				}
			} else {
				nextIdx = intersectIdx
			}
		}

		idx = nextIdx
	}

	return Polygon{
		Outer: loop,
		Holes: splitAssignHoles(state, loop, ringSign),
	}
}

func splitGetIntersectAfter(state *splitState, idx int) *splitIntersect {
	ii := state.vertices[idx].intersectIdx
	if ii < 0 {
		return nil
	}
	return &state.intersects[ii]
}

func splitIntersectLatLng(intersect *splitIntersect, ringSign int) LatLng {
	lng := 0.0
	if !intersect.isPrime {
		if ringSign > 0 {
			lng = math.Pi
		} else {
			lng = -math.Pi
		}
	}
	return LatLng{Lat: intersect.lat, Lng: lng}
}

func appendLatLngUnique(loop Ring, v LatLng) Ring {
	if len(loop) > 0 && loop[len(loop)-1].Equal(v) {
		return loop
	}
	return append(loop, v)
}

// splitAssignHoles checks every still-unassigned hole against the freshly
// built ring and claims the ones that fall inside it, in place, so later
// polygons in the same split don't see them again.
func splitAssignHoles(state *splitState, loop Ring, ringSign int) []Ring {
	var assigned []Ring

	bbox := bboxFromRing(loop)
	for i, hole := range state.holes {
		if hole == nil {
			continue
		}

		pos := 0
		for _, v := range hole {
			pos = PointInRing(loop, ringSign, bbox, v)
			if pos != 0 {
				break
			}
		}

		if pos != -1 {
			assigned = append(assigned, hole.Clone())
			state.holes[i] = nil
		}
	}

	return assigned
}
