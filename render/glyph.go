package render

import (
	"math"

	"github.com/lixenwraith/longbow/vmath"
)

// Eight compass arrows starting at screen up (+Z) and turning clockwise toward +X
var headingGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

var (
	orbGlyphs    = [4]rune{'◐', '◓', '◑', '◒'}
	markerGlyphs = [4]rune{'◰', '◳', '◲', '◱'}
)

// verticalGlyph marks a direction with no usable planar component
const verticalGlyph = '•'

// headingGlyph picks the arrow closest to dir's planar heading
func headingGlyph(dir vmath.Vec3F) rune {
	if math.Hypot(dir.X, dir.Z) < 1e-3 {
		return verticalGlyph
	}
	a := math.Atan2(dir.X, dir.Z)
	octant := int(math.Round(a/(math.Pi/4))) & 7
	return headingGlyphs[octant]
}

// quarterGlyph cycles through four frames as angle turns
func quarterGlyph(frames [4]rune, angle float64) rune {
	q := int(math.Floor(angle/(math.Pi/2))) & 3
	return frames[q]
}
