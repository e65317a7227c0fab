package brushpaint

import "math"

// Paints are deduplicated across brush definitions and used as render
// cache keys, so every aggregate exposes a stable structural hash.
// Hashing follows the same discipline as exact-match cache keys
// elsewhere in the ecosystem: FNV-1a over IEEE 754 bit patterns, never
// over rounded values, so equal values hash equal and nothing else is
// promised. Optional fields contribute a presence discriminant before
// their value, keeping "absent" distinct from any present value.

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// hasher accumulates an FNV-1a hash field by field.
type hasher struct {
	h uint64
}

func newHasher() *hasher {
	return &hasher{h: fnvOffset}
}

func (h *hasher) writeByte(b byte) {
	h.h ^= uint64(b)
	h.h *= fnvPrime
}

func (h *hasher) writeUint64(v uint64) {
	for i := 0; i < 8; i++ {
		h.writeByte(byte(v >> (8 * i)))
	}
}

func (h *hasher) writeFloat(f float64) {
	// +0 and -0 compare equal but differ in their sign bit; fold them
	// to one pattern so the hash stays consistent with Equal.
	if f == 0 {
		f = 0
	}
	h.writeUint64(math.Float64bits(f))
}

func (h *hasher) writeVec(v Vec) {
	h.writeFloat(v.X)
	h.writeFloat(v.Y)
}

func (h *hasher) writeAngle(a Angle) {
	h.writeFloat(a.Radians())
}

func (h *hasher) writeString(s string) {
	// Length first, so adjacent strings cannot collide by shifting
	// bytes across their boundary.
	h.writeUint64(uint64(len(s)))
	for i := 0; i < len(s); i++ {
		h.writeByte(s[i])
	}
}

func (h *hasher) sum() uint64 {
	return h.h
}

// Hash returns a stable structural hash of the keyframe, consistent
// with Equal.
func (k TextureKeyframe) Hash() uint64 {
	h := newHasher()
	k.hashInto(h)
	return h.sum()
}

func (k TextureKeyframe) hashInto(h *hasher) {
	h.writeFloat(k.Progress)
	if k.Size != nil {
		h.writeByte(1)
		h.writeVec(*k.Size)
	} else {
		h.writeByte(0)
	}
	if k.Offset != nil {
		h.writeByte(1)
		h.writeVec(*k.Offset)
	} else {
		h.writeByte(0)
	}
	if k.Rotation != nil {
		h.writeByte(1)
		h.writeAngle(*k.Rotation)
	} else {
		h.writeByte(0)
	}
	if k.Opacity != nil {
		h.writeByte(1)
		h.writeFloat(*k.Opacity)
	} else {
		h.writeByte(0)
	}
}

// Hash returns a stable structural hash of the layer, consistent with
// Equal. A nil keyframe track hashes like an empty one.
func (l TextureLayer) Hash() uint64 {
	h := newHasher()
	l.hashInto(h)
	return h.sum()
}

func (l TextureLayer) hashInto(h *hasher) {
	h.writeString(l.ColorTextureUri.String())
	h.writeUint64(uint64(int64(l.Mapping)))
	h.writeUint64(uint64(int64(l.Origin)))
	h.writeUint64(uint64(int64(l.SizeUnit)))
	h.writeVec(l.Size)
	h.writeVec(l.Offset)
	h.writeAngle(l.Rotation)
	h.writeVec(l.SizeJitter)
	h.writeVec(l.OffsetJitter)
	h.writeAngle(l.RotationJitter)
	h.writeFloat(l.Opacity)
	h.writeUint64(uint64(len(l.Keyframes)))
	for _, k := range l.Keyframes {
		k.hashInto(h)
	}
	h.writeUint64(uint64(int64(l.BlendMode)))
}

// Hash returns a stable structural hash of the whole paint, consistent
// with Equal. It is suitable as a dedup or render-cache key.
func (p BrushPaint) Hash() uint64 {
	h := newHasher()
	h.writeUint64(uint64(len(p.TextureLayers)))
	for _, l := range p.TextureLayers {
		l.hashInto(h)
	}
	return h.sum()
}
