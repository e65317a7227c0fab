package brushpaint

import "strconv"

// Validate checks the structural invariant of a candidate BrushPaint:
// every floating-point field reachable from it must be finite (neither
// infinite nor NaN). It never mutates the paint and never checks value
// ranges; opacity outside [0, 1] or a negative size pass validation,
// because range policy belongs to the authoring surface, not to the
// value type.
//
// Fields are checked independently, scanning layers and their keyframes
// in stored order, and the first violation is returned as a
// *ValidationError naming the offending field path. A paint with no
// layers is always valid. Identical input always yields the identical
// result, message included.
func Validate(p BrushPaint) error {
	for i, layer := range p.TextureLayers {
		if err := validateTextureLayer(layer, i); err != nil {
			Logger().Debug("brushpaint: rejected paint", "error", err)
			return err
		}
	}
	return nil
}

func validateTextureLayer(l TextureLayer, index int) error {
	prefix := "texture_layers[" + strconv.Itoa(index) + "]."
	if !l.Size.IsFinite() {
		return finiteErr(prefix+"size", nonFiniteComponent(l.Size))
	}
	if !l.Offset.IsFinite() {
		return finiteErr(prefix+"offset", nonFiniteComponent(l.Offset))
	}
	if !l.Rotation.IsFinite() {
		return finiteErr(prefix+"rotation", l.Rotation.Radians())
	}
	if !l.SizeJitter.IsFinite() {
		return finiteErr(prefix+"size_jitter", nonFiniteComponent(l.SizeJitter))
	}
	if !l.OffsetJitter.IsFinite() {
		return finiteErr(prefix+"offset_jitter", nonFiniteComponent(l.OffsetJitter))
	}
	if !l.RotationJitter.IsFinite() {
		return finiteErr(prefix+"rotation_jitter", l.RotationJitter.Radians())
	}
	if !isFinite(l.Opacity) {
		return finiteErr(prefix+"opacity", l.Opacity)
	}
	for j, k := range l.Keyframes {
		if err := validateTextureKeyframe(k, prefix+"keyframes["+strconv.Itoa(j)+"]."); err != nil {
			return err
		}
	}
	return nil
}

func validateTextureKeyframe(k TextureKeyframe, prefix string) error {
	if !isFinite(k.Progress) {
		return finiteErr(prefix+"progress", k.Progress)
	}
	if k.Size != nil && !k.Size.IsFinite() {
		return finiteErr(prefix+"size", nonFiniteComponent(*k.Size))
	}
	if k.Offset != nil && !k.Offset.IsFinite() {
		return finiteErr(prefix+"offset", nonFiniteComponent(*k.Offset))
	}
	if k.Rotation != nil && !k.Rotation.IsFinite() {
		return finiteErr(prefix+"rotation", k.Rotation.Radians())
	}
	if k.Opacity != nil && !isFinite(*k.Opacity) {
		return finiteErr(prefix+"opacity", *k.Opacity)
	}
	return nil
}

func finiteErr(field string, value float64) error {
	return &ValidationError{Field: field, Value: value}
}

// nonFiniteComponent picks the component to report for a vector that
// failed the finiteness check.
func nonFiniteComponent(v Vec) float64 {
	if !isFinite(v.X) {
		return v.X
	}
	return v.Y
}
