// SPDX-License-Identifier: EPL-2.0

package panner

import "math"

// Position is the constraint satisfied by point types usable as speaker and
// source coordinates. A point can only measure distance to a point of its own
// type, so mixing 2D and 3D coordinates in one computation is a compile error
// rather than a runtime surprise.
type Position[P any] interface {
	Distance(P) float64
}

// Point2 is a coordinate in 2D space, in whatever unit the venue uses
// (meters, normalized stage coordinates, ...). The unit only matters
// relative to the blur radius.
type Point2 struct {
	X, Y float64
}

// Distance returns the Euclidean distance to q.
func (p Point2) Distance(q Point2) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Point3 is a coordinate in 3D space.
type Point3 struct {
	X, Y, Z float64
}

// Distance returns the Euclidean distance to q.
func (p Point3) Distance(q Point3) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	dz := q.Z - p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
