package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/longbow/vmath"
)

func TestHexRGB(t *testing.T) {
	got := HexRGB(0x010203)
	if got != (RGB{1, 2, 3}) {
		t.Errorf("Expected {1 2 3}, got %v", got)
	}
	if HexRGB(0xffffff) != RGBWhite {
		t.Error("Expected white")
	}
}

func TestRGBBlend(t *testing.T) {
	if got := RGBBlack.Blend(RGBWhite, 0); got != RGBBlack {
		t.Errorf("Expected dst at alpha 0, got %v", got)
	}
	if got := RGBBlack.Blend(RGBWhite, 1); got != RGBWhite {
		t.Errorf("Expected src at alpha 1, got %v", got)
	}
	if got := (RGB{100, 0, 200}).Blend(RGB{200, 100, 0}, 0.5); got != (RGB{150, 50, 100}) {
		t.Errorf("Expected midpoint, got %v", got)
	}
}

func TestRGBScaleClamps(t *testing.T) {
	if got := (RGB{200, 100, 0}).Scale(2); got != (RGB{255, 200, 0}) {
		t.Errorf("Expected clamp at 255, got %v", got)
	}
	if got := (RGB{200, 100, 50}).Scale(-1); got != RGBBlack {
		t.Errorf("Expected clamp at 0, got %v", got)
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		dir  vmath.Vec3F
		want rune
	}{
		{vmath.Vec3F{Z: 1}, '↑'},
		{vmath.Vec3F{X: 1, Z: 1}, '↗'},
		{vmath.Vec3F{X: 1}, '→'},
		{vmath.Vec3F{Z: -1}, '↓'},
		{vmath.Vec3F{X: -1}, '←'},
		{vmath.Vec3F{X: -1, Z: 1}, '↖'},
		{vmath.Vec3F{Y: 1}, verticalGlyph},
	}
	for _, tc := range tests {
		if got := headingGlyph(tc.dir); got != tc.want {
			t.Errorf("headingGlyph(%v): expected %q, got %q", tc.dir, tc.want, got)
		}
	}
}

func TestQuarterGlyphCycles(t *testing.T) {
	for i := 0; i < 4; i++ {
		angle := float64(i)*math.Pi/2 + 0.1
		if got := quarterGlyph(markerGlyphs, angle); got != markerGlyphs[i] {
			t.Errorf("Quarter %d: expected %q, got %q", i, markerGlyphs[i], got)
		}
	}
}
