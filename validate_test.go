package brushpaint

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidate_EmptyPaintSucceeds(t *testing.T) {
	if err := Validate(BrushPaint{}); err != nil {
		t.Errorf("Validate(BrushPaint{}) = %v, want nil", err)
	}
}

func TestValidate_FinitePaintSucceeds(t *testing.T) {
	layer := NewTextureLayer()
	layer.ColorTextureUri = mustParseUri(t, "/texture:foo")
	layer.Size = V(3, 5)
	layer.Offset = V(2, 0.2)
	layer.Rotation = Radians(math.Pi / 2)
	layer.SizeJitter = V(0.1, 0.2)
	layer.OffsetJitter = V(0.7, 0.3)
	layer.RotationJitter = Radians(math.Pi / 8)
	layer.Opacity = 0.6
	layer.Keyframes = []TextureKeyframe{
		{Progress: 0.3, Size: vp(4, 6), Offset: vp(2, 0.2), Rotation: ap(math.Pi / 2), Opacity: fp(0.6)},
	}

	if err := Validate(BrushPaint{TextureLayers: []TextureLayer{layer}}); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

// Only finiteness is validated; out-of-range but finite values pass.
// Range policy belongs to the authoring surface.
func TestValidate_NoRangeChecks(t *testing.T) {
	layer := NewTextureLayer()
	layer.Opacity = 5
	layer.Size = V(-3, -5)
	layer.Keyframes = []TextureKeyframe{{Progress: 7, Opacity: fp(-2)}}

	if err := Validate(BrushPaint{TextureLayers: []TextureLayer{layer}}); err != nil {
		t.Errorf("Validate() = %v, want nil for finite out-of-range values", err)
	}
}

func TestValidate_NonFiniteLayerFields(t *testing.T) {
	badValues := []struct {
		name  string
		value float64
	}{
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
		{"NaN", math.NaN()},
	}

	fields := []struct {
		name   string
		mutate func(*TextureLayer, float64)
	}{
		{"size", func(l *TextureLayer, v float64) { l.Size = V(v, 1) }},
		{"offset", func(l *TextureLayer, v float64) { l.Offset = V(0, v) }},
		{"rotation", func(l *TextureLayer, v float64) { l.Rotation = Radians(v) }},
		{"size_jitter", func(l *TextureLayer, v float64) { l.SizeJitter = V(v, 0) }},
		{"offset_jitter", func(l *TextureLayer, v float64) { l.OffsetJitter = V(0, v) }},
		{"rotation_jitter", func(l *TextureLayer, v float64) { l.RotationJitter = Radians(v) }},
		{"opacity", func(l *TextureLayer, v float64) { l.Opacity = v }},
	}

	for _, field := range fields {
		for _, bad := range badValues {
			t.Run(field.name+"/"+bad.name, func(t *testing.T) {
				layer := NewTextureLayer()
				layer.ColorTextureUri = mustParseUri(t, "/texture:foo")
				field.mutate(&layer, bad.value)

				err := Validate(BrushPaint{TextureLayers: []TextureLayer{layer}})
				if err == nil {
					t.Fatalf("Validate() = nil, want error for non-finite %s", field.name)
				}
				if !errors.Is(err, ErrInvalidPaint) {
					t.Errorf("error %v does not match ErrInvalidPaint", err)
				}
				if want := field.name + "` must be finite"; !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not contain %q", err.Error(), want)
				}
			})
		}
	}
}

func TestValidate_NonFiniteKeyframeFields(t *testing.T) {
	fields := []struct {
		name string
		make func(v float64) TextureKeyframe
	}{
		{"progress", func(v float64) TextureKeyframe { return TextureKeyframe{Progress: v} }},
		{"size", func(v float64) TextureKeyframe { return TextureKeyframe{Progress: 0.5, Size: vp(v, 1)} }},
		{"offset", func(v float64) TextureKeyframe { return TextureKeyframe{Progress: 0.5, Offset: vp(1, v)} }},
		{"rotation", func(v float64) TextureKeyframe { return TextureKeyframe{Progress: 0.5, Rotation: ap(v)} }},
		{"opacity", func(v float64) TextureKeyframe { return TextureKeyframe{Progress: 0.5, Opacity: fp(v)} }},
	}

	for _, field := range fields {
		for _, bad := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
			layer := NewTextureLayer()
			layer.Keyframes = []TextureKeyframe{field.make(bad)}

			err := Validate(BrushPaint{TextureLayers: []TextureLayer{layer}})
			if err == nil {
				t.Fatalf("Validate() = nil, want error for non-finite keyframe %s", field.name)
			}
			if !errors.Is(err, ErrInvalidPaint) {
				t.Errorf("error %v does not match ErrInvalidPaint", err)
			}
			if want := field.name + "` must be finite"; !strings.Contains(err.Error(), want) {
				t.Errorf("error %q does not contain %q", err.Error(), want)
			}
		}
	}
}

// Absent keyframe overrides are skipped entirely, so a keyframe that
// sets nothing but progress cannot fail on its absent fields.
func TestValidate_AbsentKeyframeFieldsSkipped(t *testing.T) {
	layer := NewTextureLayer()
	layer.Keyframes = []TextureKeyframe{{Progress: 0.5}}
	if err := Validate(BrushPaint{TextureLayers: []TextureLayer{layer}}); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_ReportsFieldPath(t *testing.T) {
	good := NewTextureLayer()
	bad := NewTextureLayer()
	bad.Keyframes = []TextureKeyframe{
		{Progress: 0.1},
		{Progress: 0.2, Rotation: ap(math.NaN())},
	}

	err := Validate(BrushPaint{TextureLayers: []TextureLayer{good, bad}})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if want := "texture_layers[1].keyframes[1].rotation"; verr.Field != want {
		t.Errorf("Field = %q, want %q", verr.Field, want)
	}
}

// The first violation in stored order wins: layers scan before their
// successors, and within a layer the static fields scan before the
// keyframe track.
func TestValidate_FirstViolationWins(t *testing.T) {
	layer := NewTextureLayer()
	layer.Offset = V(math.Inf(1), 0)
	layer.Rotation = Radians(math.NaN())
	layer.Keyframes = []TextureKeyframe{{Progress: math.NaN()}}

	err := Validate(BrushPaint{TextureLayers: []TextureLayer{layer}})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if want := "texture_layers[0].offset"; verr.Field != want {
		t.Errorf("Field = %q, want %q", verr.Field, want)
	}
}

// Validation never mutates its input; the caller can inspect the
// rejected candidate unchanged.
func TestValidate_DoesNotMutate(t *testing.T) {
	layer := NewTextureLayer()
	layer.Rotation = Radians(math.Inf(1))
	paint := BrushPaint{TextureLayers: []TextureLayer{layer}}
	before := paint.String()

	if err := Validate(paint); err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if after := paint.String(); after != before {
		t.Errorf("Validate mutated its input:\nbefore %q\nafter  %q", before, after)
	}
}

// Determinism: identical input yields the identical message.
func TestValidate_DeterministicMessage(t *testing.T) {
	layer := NewTextureLayer()
	layer.RotationJitter = Radians(math.Inf(1))
	paint := BrushPaint{TextureLayers: []TextureLayer{layer}}

	err1 := Validate(paint)
	err2 := Validate(paint)
	if err1 == nil || err2 == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if err1.Error() != err2.Error() {
		t.Errorf("messages differ: %q vs %q", err1.Error(), err2.Error())
	}
	if want := "rotation_jitter` must be finite"; !strings.Contains(err1.Error(), want) {
		t.Errorf("error %q does not contain %q", err1.Error(), want)
	}
}
