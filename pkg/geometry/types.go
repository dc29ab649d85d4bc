// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64
	Y float64
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Rect represents an axis-aligned rectangle spanning [XMin,XMax]×[YMin,YMax].
type Rect struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewRect creates a rectangle from two corner coordinates, normalizing
// so that XMin <= XMax and YMin <= YMax.
func NewRect(x1, y1, x2, y2 float64) Rect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{XMin: x1, XMax: x2, YMin: y1, YMax: y2}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.XMax - r.XMin
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.YMax - r.YMin
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point2D {
	return Point2D{X: (r.XMin + r.XMax) / 2, Y: (r.YMin + r.YMax) / 2}
}

// Contains returns true if the point is inside the rectangle (inclusive).
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.XMin && p.X <= r.XMax &&
		p.Y >= r.YMin && p.Y <= r.YMax
}

// Intersects returns true if this rectangle overlaps another.
func (r Rect) Intersects(other Rect) bool {
	return r.XMin < other.XMax && r.XMax > other.XMin &&
		r.YMin < other.YMax && r.YMax > other.YMin
}

// Include returns the rectangle grown just enough to contain the point.
func (r Rect) Include(p Point2D) Rect {
	return Rect{
		XMin: math.Min(r.XMin, p.X),
		XMax: math.Max(r.XMax, p.X),
		YMin: math.Min(r.YMin, p.Y),
		YMax: math.Max(r.YMax, p.Y),
	}
}

// Expand returns the rectangle grown by dx on each horizontal side and dy
// on each vertical side.
func (r Rect) Expand(dx, dy float64) Rect {
	return Rect{
		XMin: r.XMin - dx,
		XMax: r.XMax + dx,
		YMin: r.YMin - dy,
		YMax: r.YMax + dy,
	}
}

// IsFinite reports whether all four bounds are finite numbers.
func (r Rect) IsFinite() bool {
	for _, v := range []float64{r.XMin, r.XMax, r.YMin, r.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// AffineTransform represents a 2x3 affine transformation matrix.
// [a b tx]
// [c d ty]
type AffineTransform struct {
	A, B, TX float64
	C, D, TY float64
}

// Identity returns the identity transform.
func Identity() AffineTransform {
	return AffineTransform{A: 1, D: 1}
}

// Apply applies the transform to a point.
func (t AffineTransform) Apply(p Point2D) Point2D {
	return Point2D{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// Inverse returns the inverse transform, if it exists.
func (t AffineTransform) Inverse() (AffineTransform, bool) {
	det := t.A*t.D - t.B*t.C
	if math.Abs(det) < 1e-10 {
		return AffineTransform{}, false
	}

	invDet := 1.0 / det
	return AffineTransform{
		A:  t.D * invDet,
		B:  -t.B * invDet,
		TX: (t.B*t.TY - t.D*t.TX) * invDet,
		C:  -t.C * invDet,
		D:  t.A * invDet,
		TY: (t.C*t.TX - t.A*t.TY) * invDet,
	}, true
}

// BoundingBox computes the axis-aligned bounding box of a set of points.
func BoundingBox(points []Point2D) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{XMin: points[0].X, XMax: points[0].X, YMin: points[0].Y, YMax: points[0].Y}
	for _, p := range points[1:] {
		r = r.Include(p)
	}
	return r
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
