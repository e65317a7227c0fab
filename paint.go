package brushpaint

import "strings"

// TextureKeyframe is one control point of a layer's animation track,
// positioned along the stroke's normalized progress axis. Each of the
// four override fields is optional: a nil field means the keyframe does
// not override that parameter, which is distinct from overriding it
// with any value (including zero). Presence participates in equality,
// hashing, and the text form.
//
// A keyframe is never mutated once placed into a layer's track;
// replacing one means building a new track.
type TextureKeyframe struct {
	// Progress is the position of this keyframe along the stroke,
	// conceptually in [0, 1]. The paint model validates it only for
	// finiteness.
	Progress float64

	// Size, if set, overrides the layer's texture size at this point.
	Size *Vec

	// Offset, if set, overrides the layer's texture offset.
	Offset *Vec

	// Rotation, if set, overrides the layer's texture rotation.
	Rotation *Angle

	// Opacity, if set, overrides the layer's opacity.
	Opacity *float64
}

// Clone returns a deep copy of the keyframe. The copy shares no
// pointers with the original, so mutating one can never alias into the
// other.
func (k TextureKeyframe) Clone() TextureKeyframe {
	c := TextureKeyframe{Progress: k.Progress}
	if k.Size != nil {
		size := *k.Size
		c.Size = &size
	}
	if k.Offset != nil {
		offset := *k.Offset
		c.Offset = &offset
	}
	if k.Rotation != nil {
		rotation := *k.Rotation
		c.Rotation = &rotation
	}
	if k.Opacity != nil {
		opacity := *k.Opacity
		c.Opacity = &opacity
	}
	return c
}

// Equal reports whether two keyframes match on all five fields,
// including the present-vs-absent state of each optional field.
func (k TextureKeyframe) Equal(o TextureKeyframe) bool {
	return k.Progress == o.Progress &&
		vecPtrEqual(k.Size, o.Size) &&
		vecPtrEqual(k.Offset, o.Offset) &&
		anglePtrEqual(k.Rotation, o.Rotation) &&
		floatPtrEqual(k.Opacity, o.Opacity)
}

// String returns the canonical text form. Optional fields are emitted
// only when present, in the fixed order progress, size, offset,
// rotation, opacity:
//
//	TextureKeyframe{progress=0.3, size=<4, 6>, rotation=0.5π}
func (k TextureKeyframe) String() string {
	var b strings.Builder
	b.WriteString("TextureKeyframe{progress=")
	b.WriteString(formatFloat(k.Progress))
	if k.Size != nil {
		b.WriteString(", size=")
		b.WriteString(k.Size.String())
	}
	if k.Offset != nil {
		b.WriteString(", offset=")
		b.WriteString(k.Offset.String())
	}
	if k.Rotation != nil {
		b.WriteString(", rotation=")
		b.WriteString(k.Rotation.String())
	}
	if k.Opacity != nil {
		b.WriteString(", opacity=")
		b.WriteString(formatFloat(*k.Opacity))
	}
	b.WriteByte('}')
	return b.String()
}

func vecPtrEqual(a, b *Vec) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func anglePtrEqual(a, b *Angle) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// TextureLayer is one texture pass of a paint. Layers are composited in
// the order they appear in BrushPaint.TextureLayers.
//
// The zero value has zero size and opacity and the first enum variants;
// use NewTextureLayer for a layer with the documented defaults.
type TextureLayer struct {
	// ColorTextureUri identifies the layer's color texture. The zero
	// Uri means no texture is assigned.
	ColorTextureUri Uri

	// Mapping specifies how the texture follows the stroke.
	Mapping TextureMapping

	// Origin specifies the texture's anchor point.
	Origin TextureOrigin

	// SizeUnit specifies the unit Size is measured in.
	SizeUnit TextureSizeUnit

	// Size is the texture's display size, in units of SizeUnit.
	Size Vec

	// Offset translates the texture from its origin.
	Offset Vec

	// Rotation rotates the texture about its origin.
	Rotation Angle

	// SizeJitter is the per-stroke random variation range around Size.
	// Jitter is stored here and applied by the renderer.
	SizeJitter Vec

	// OffsetJitter is the random variation range around Offset.
	OffsetJitter Vec

	// RotationJitter is the random variation range around Rotation.
	RotationJitter Angle

	// Opacity scales the texture's alpha.
	Opacity float64

	// Keyframes is the layer's animation track, in caller-supplied
	// track order. The order is significant and is not sorted by
	// progress.
	Keyframes []TextureKeyframe

	// BlendMode combines this layer's color with the layers below it.
	BlendMode BlendMode
}

// NewTextureLayer creates a TextureLayer with default values: a tiling,
// stroke-space-anchored texture of size <1, 1> in stroke coordinates,
// unrotated, without jitter, fully opaque, with an empty animation
// track and modulate blending.
func NewTextureLayer() TextureLayer {
	return TextureLayer{
		Mapping:  TextureMappingTiling,
		Origin:   TextureOriginStrokeSpaceOrigin,
		SizeUnit: TextureSizeUnitStrokeCoordinates,
		Size:     V(1, 1),
		Opacity:  1,
	}
}

// Clone returns a deep copy of the layer, including its keyframe track.
func (l TextureLayer) Clone() TextureLayer {
	c := l
	if l.Keyframes != nil {
		c.Keyframes = make([]TextureKeyframe, len(l.Keyframes))
		for i, k := range l.Keyframes {
			c.Keyframes[i] = k.Clone()
		}
	}
	return c
}

// Equal reports whether two layers match field-wise. Keyframe tracks
// compare element-wise in order; a nil track equals an empty one.
func (l TextureLayer) Equal(o TextureLayer) bool {
	if !l.ColorTextureUri.Equal(o.ColorTextureUri) ||
		l.Mapping != o.Mapping ||
		l.Origin != o.Origin ||
		l.SizeUnit != o.SizeUnit ||
		!l.Size.Equal(o.Size) ||
		!l.Offset.Equal(o.Offset) ||
		!l.Rotation.Equal(o.Rotation) ||
		!l.SizeJitter.Equal(o.SizeJitter) ||
		!l.OffsetJitter.Equal(o.OffsetJitter) ||
		!l.RotationJitter.Equal(o.RotationJitter) ||
		l.Opacity != o.Opacity ||
		l.BlendMode != o.BlendMode ||
		len(l.Keyframes) != len(o.Keyframes) {
		return false
	}
	for i := range l.Keyframes {
		if !l.Keyframes[i].Equal(o.Keyframes[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical text form. Unlike TextureKeyframe,
// every field is always emitted, in fixed order, so two layers'
// snapshots line up field by field in a diff.
func (l TextureLayer) String() string {
	var b strings.Builder
	b.WriteString("TextureLayer{color_texture_uri=")
	b.WriteString(l.ColorTextureUri.String())
	b.WriteString(", mapping=")
	b.WriteString(l.Mapping.String())
	b.WriteString(", origin=")
	b.WriteString(l.Origin.String())
	b.WriteString(", size_unit=")
	b.WriteString(l.SizeUnit.String())
	b.WriteString(", size=")
	b.WriteString(l.Size.String())
	b.WriteString(", offset=")
	b.WriteString(l.Offset.String())
	b.WriteString(", rotation=")
	b.WriteString(l.Rotation.String())
	b.WriteString(", size_jitter=")
	b.WriteString(l.SizeJitter.String())
	b.WriteString(", offset_jitter=")
	b.WriteString(l.OffsetJitter.String())
	b.WriteString(", rotation_jitter=")
	b.WriteString(l.RotationJitter.String())
	b.WriteString(", opacity=")
	b.WriteString(formatFloat(l.Opacity))
	b.WriteString(", keyframes={")
	for i, k := range l.Keyframes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteString("}, blend_mode=")
	b.WriteString(l.BlendMode.String())
	b.WriteByte('}')
	return b.String()
}

// BrushPaint describes how a stroke's ink is textured: an ordered
// stack of texture layers, composited in sequence. The zero value has
// no layers and denotes untextured solid ink; it is a fully valid
// paint.
type BrushPaint struct {
	// TextureLayers is the layer stack, bottom first. Order is
	// significant.
	TextureLayers []TextureLayer
}

// Clone returns a deep copy of the paint and every nested structure.
func (p BrushPaint) Clone() BrushPaint {
	if p.TextureLayers == nil {
		return BrushPaint{}
	}
	layers := make([]TextureLayer, len(p.TextureLayers))
	for i, l := range p.TextureLayers {
		layers[i] = l.Clone()
	}
	return BrushPaint{TextureLayers: layers}
}

// Equal reports whether two paints have equal layer stacks. Appending,
// removing, or reordering a layer all produce inequality; a nil stack
// equals an empty one.
func (p BrushPaint) Equal(o BrushPaint) bool {
	if len(p.TextureLayers) != len(o.TextureLayers) {
		return false
	}
	for i := range p.TextureLayers {
		if !p.TextureLayers[i].Equal(o.TextureLayers[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical text form, e.g.
// "BrushPaint{texture_layers={}}" for solid ink.
func (p BrushPaint) String() string {
	var b strings.Builder
	b.WriteString("BrushPaint{texture_layers={")
	for i, l := range p.TextureLayers {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(l.String())
	}
	b.WriteString("}}")
	return b.String()
}
