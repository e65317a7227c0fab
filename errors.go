package brushpaint

import "errors"

// Sentinel errors for the brushpaint package.
var (
	// ErrInvalidPaint is the stable error kind for a BrushPaint that
	// violates a structural invariant. Every error returned by Validate
	// matches it via errors.Is; host bindings translate it to their
	// "invalid argument" convention.
	ErrInvalidPaint = errors.New("brushpaint: invalid paint")

	// ErrInvalidUri is returned by ParseUri for a malformed asset URI.
	ErrInvalidUri = errors.New("brushpaint: invalid asset uri")
)

// ValidationError reports the first structural invariant violated by a
// candidate BrushPaint.
type ValidationError struct {
	// Field is the path of the offending field within the paint, e.g.
	// "texture_layers[1].keyframes[0].rotation".
	Field string

	// Value is the offending value.
	Value float64
}

func (e *ValidationError) Error() string {
	return "brushpaint: `" + e.Field + "` must be finite, got " + formatFloat(e.Value)
}

// Is reports ErrInvalidPaint as this error's kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidPaint
}
