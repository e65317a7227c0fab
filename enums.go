package brushpaint

import "strconv"

// TextureMapping specifies how a layer's texture is laid out along a
// stroke.
type TextureMapping int

const (
	// TextureMappingWinding bends the texture around the stroke's path,
	// following its winding.
	TextureMappingWinding TextureMapping = iota
	// TextureMappingTiling repeats the texture across stroke space.
	// This is the default for a new layer.
	TextureMappingTiling
)

// TextureOrigin specifies the anchor point of a layer's texture.
type TextureOrigin int

const (
	// TextureOriginStrokeSpaceOrigin anchors the texture at the origin
	// of stroke space. This is the default for a new layer.
	TextureOriginStrokeSpaceOrigin TextureOrigin = iota
	// TextureOriginFirstStrokeInput anchors the texture at the first
	// input point of the stroke.
	TextureOriginFirstStrokeInput
	// TextureOriginLastStrokeInput anchors the texture at the last
	// input point of the stroke.
	TextureOriginLastStrokeInput
)

// TextureSizeUnit specifies the unit of a layer's Size field.
type TextureSizeUnit int

const (
	// TextureSizeUnitBrushSize measures texture size in multiples of
	// the brush size.
	TextureSizeUnitBrushSize TextureSizeUnit = iota
	// TextureSizeUnitStrokeSize measures texture size relative to the
	// bounds of the whole stroke.
	TextureSizeUnitStrokeSize
	// TextureSizeUnitStrokeCoordinates measures texture size directly
	// in stroke coordinates. This is the default for a new layer.
	TextureSizeUnitStrokeCoordinates
)

// BlendMode specifies the compositing rule that combines a texture
// layer's color with the layers below it.
type BlendMode int

const (
	// BlendModeModulate multiplies source and destination color.
	// This is the default for a new layer.
	BlendModeModulate BlendMode = iota
	// BlendModeDstIn keeps the destination where the source is opaque.
	BlendModeDstIn
	// BlendModeDstOut keeps the destination where the source is
	// transparent.
	BlendModeDstOut
	// BlendModeSrcAtop draws the source only over opaque destination.
	BlendModeSrcAtop
	// BlendModeSrcIn keeps the source where the destination is opaque.
	BlendModeSrcIn
	// BlendModeSrcOver draws the source over the destination.
	BlendModeSrcOver
	// BlendModeSrc replaces the destination with the source.
	BlendModeSrc
	// BlendModeXor keeps source and destination where they do not
	// overlap.
	BlendModeXor
)

// The String methods below render the fixed token table used by the
// canonical paint text form. Out-of-range ordinals render as
// "TypeName(ordinal)" rather than failing, so corrupted or
// forward-incompatible values never crash the formatter.

// String returns the canonical token for the mapping.
func (m TextureMapping) String() string {
	switch m {
	case TextureMappingWinding:
		return "kWinding"
	case TextureMappingTiling:
		return "kTiling"
	default:
		return "TextureMapping(" + strconv.Itoa(int(m)) + ")"
	}
}

// String returns the canonical token for the origin.
func (o TextureOrigin) String() string {
	switch o {
	case TextureOriginStrokeSpaceOrigin:
		return "kStrokeSpaceOrigin"
	case TextureOriginFirstStrokeInput:
		return "kFirstStrokeInput"
	case TextureOriginLastStrokeInput:
		return "kLastStrokeInput"
	default:
		return "TextureOrigin(" + strconv.Itoa(int(o)) + ")"
	}
}

// String returns the canonical token for the size unit.
func (u TextureSizeUnit) String() string {
	switch u {
	case TextureSizeUnitBrushSize:
		return "kBrushSize"
	case TextureSizeUnitStrokeSize:
		return "kStrokeSize"
	case TextureSizeUnitStrokeCoordinates:
		return "kStrokeCoordinates"
	default:
		return "TextureSizeUnit(" + strconv.Itoa(int(u)) + ")"
	}
}

// String returns the canonical token for the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendModeModulate:
		return "kModulate"
	case BlendModeDstIn:
		return "kDstIn"
	case BlendModeDstOut:
		return "kDstOut"
	case BlendModeSrcAtop:
		return "kSrcAtop"
	case BlendModeSrcIn:
		return "kSrcIn"
	case BlendModeSrcOver:
		return "kSrcOver"
	case BlendModeSrc:
		return "kSrc"
	case BlendModeXor:
		return "kXor"
	default:
		return "BlendMode(" + strconv.Itoa(int(m)) + ")"
	}
}
