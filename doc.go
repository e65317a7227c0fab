// Package brushpaint describes how a drawing stroke's ink is textured
// and composited.
//
// # Overview
//
// A BrushPaint is a declarative, immutable-by-convention value: an
// ordered stack of texture layers, each with static transform
// parameters, jitter ranges, an animation keyframe track, and a blend
// mode. The package is the data-model and validation layer between a
// brush authoring surface (or a deserialized asset) and the stroke
// geometry engine that consumes the paint; it never rasterizes and
// never resolves texture URIs to pixel data.
//
// # Quick Start
//
//	import "github.com/gogpu/brushpaint"
//
//	uri, err := brushpaint.ParseUri("ink://ink/texture:paper-grain")
//	if err != nil {
//	    // handle malformed asset identifier
//	}
//
//	layer := brushpaint.NewTextureLayer()
//	layer.ColorTextureUri = uri
//	layer.SizeUnit = brushpaint.TextureSizeUnitBrushSize
//	layer.Size = brushpaint.V(3, 3)
//
//	paint := brushpaint.BrushPaint{TextureLayers: []brushpaint.TextureLayer{layer}}
//	if err := brushpaint.Validate(paint); err != nil {
//	    // reject the asset, or fall back to a default paint
//	}
//
// # Value Semantics
//
// All types are plain value aggregates. Once a paint has been validated
// it is treated as immutable: it may be freely copied (Clone), compared
// (Equal), hashed (Hash), and logged (String) from any goroutine.
// Equality is structural and exact; Hash is consistent with Equal, so a
// paint's hash can key render caches and deduplicate paints across
// brush definitions.
//
// # Validation
//
// Validate checks a single structural invariant: every floating-point
// field reachable from the paint must be finite. It checks per field,
// in stored order, and reports the first violation with the offending
// field path. Range policy (opacity in [0, 1], non-negative sizes) is
// deliberately left to the authoring surface.
package brushpaint
