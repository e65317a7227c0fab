package brushpaint

import (
	"math"
	"strconv"
)

// Vec represents a 2-component value used for texture sizes, offsets,
// and jitter ranges. Equality is exact on both components; there is no
// epsilon comparison anywhere in the paint model because paints are
// hashed and deduplicated, and hashing requires exact matching.
type Vec struct {
	X, Y float64
}

// V is a convenience function to create a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length (magnitude) of the vector.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// IsZero returns true if the vector is the zero vector.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite returns true if neither component is infinite or NaN.
func (v Vec) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Equal reports whether two vectors are exactly equal.
// NaN components compare unequal, like the == operator.
func (v Vec) Equal(w Vec) bool {
	return v.X == w.X && v.Y == w.Y
}

// String returns the canonical text form "<x, y>". The form is stable
// and minimal (integers print without a fractional part) so it can be
// used in diffable snapshots.
func (v Vec) String() string {
	return "<" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ">"
}

// formatFloat renders a float with the shortest decimal representation
// that round-trips. Shared by every String method in the package so the
// canonical text form stays uniform.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// isFinite returns true if f is neither infinite nor NaN.
func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
