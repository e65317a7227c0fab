package brushpaint

import "math"

// Angle represents a signed rotation angle. The zero value is a zero
// rotation. Angle is a thin wrapper around a radian count rather than a
// bare float64 so that degree/radian conversions stay explicit and the
// canonical π-relative text form lives in one place.
//
// Equality and hashing operate on the stored radians exactly, with no
// wrap-around: Radians(0) and Radians(2 * math.Pi) are distinct values.
// Callers that want wrap-around comparison normalize first.
type Angle struct {
	rad float64
}

// Radians creates an Angle from a radian count.
// The value is stored as given; finiteness is enforced by Validate,
// not at construction time.
func Radians(r float64) Angle {
	return Angle{rad: r}
}

// Degrees creates an Angle from a degree count.
func Degrees(d float64) Angle {
	return Angle{rad: d * math.Pi / 180}
}

// Radians returns the stored radian count.
func (a Angle) Radians() float64 {
	return a.rad
}

// Degrees returns the angle converted to degrees.
func (a Angle) Degrees() float64 {
	return a.rad * 180 / math.Pi
}

// IsFinite returns true if the angle is neither infinite nor NaN.
func (a Angle) IsFinite() bool {
	return isFinite(a.rad)
}

// Normalized returns the equivalent angle in [0, 2π).
func (a Angle) Normalized() Angle {
	r := math.Mod(a.rad, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return Angle{rad: r}
}

// NormalizedAboutZero returns the equivalent angle in (-π, π].
func (a Angle) NormalizedAboutZero() Angle {
	r := a.Normalized().rad
	if r > math.Pi {
		r -= 2 * math.Pi
	}
	return Angle{rad: r}
}

// Equal reports whether two angles store exactly the same radian count.
func (a Angle) Equal(b Angle) bool {
	return a.rad == b.rad
}

// String renders the angle as a decimal multiple of π, e.g. "0.5π" for
// a quarter turn and "0π" for zero. The method is total: non-finite
// angles print their raw value ("+Infπ", "NaNπ") rather than failing,
// so unvalidated paints can still be logged.
func (a Angle) String() string {
	return formatFloat(a.rad/math.Pi) + "π"
}
