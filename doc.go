// Package antimeridian splits polygons and multipolygons that cross the
// 180° meridian into one or more polygons that each lie strictly within a
// single longitudinal hemisphere.
//
// The package works entirely in unit-sphere vector space: coordinates are
// converted to 3-D vectors (see Vect3), great-circle arcs are intersected
// against the 0°/180° meridian plane, and the resulting boundary vertices
// are stitched back into new rings. No planar projection or ellipsoidal
// model is involved — this is deliberately narrower in scope than a general
// geodesy library, trading breadth for a single well-tested transform.
package antimeridian
