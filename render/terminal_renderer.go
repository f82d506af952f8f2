package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/longbow/engine"
	"github.com/lixenwraith/longbow/parameter"
	"github.com/lixenwraith/longbow/projectile"
	"github.com/lixenwraith/longbow/scene"
	"github.com/lixenwraith/longbow/telemetry"
	"github.com/lixenwraith/longbow/vmath"
)

// Shadow modes
const (
	ShadowsNone = "none"
	ShadowsHard = "hard"
	ShadowsSoft = "soft"
)

// Fog blends scene colors toward Color between Near and Far distance from the camera
type Fog struct {
	Color uint32
	Near  float64
	Far   float64
}

// Factor returns the blend amount at distance d: 0 clear, 1 fully fogged
func (f Fog) Factor(d float64) float64 {
	if f.Far <= f.Near {
		if d >= f.Far {
			return 1
		}
		return 0
	}
	return math.Max(0, math.Min((d-f.Near)/(f.Far-f.Near), 1))
}

// Options are the per-variant presentation knobs
type Options struct {
	Fog     Fog
	Shadows string

	// Scale is world units per column
	Scale float64
}

// DefaultOptions matches the night variant
func DefaultOptions() Options {
	return Options{
		Fog: Fog{
			Color: parameter.NightFogColor,
			Near:  parameter.NightFogNear,
			Far:   parameter.NightFogFar,
		},
		Shadows: parameter.NightShadows,
		Scale:   parameter.ViewScale,
	}
}

// Frame is everything one render pass reads; nothing is written back
type Frame struct {
	Report engine.Report
	Pool   *projectile.Pool
	Camera *scene.Camera
	World  *scene.World
	Stats  telemetry.Stats
	Paused bool
}

// TerminalRenderer draws a camera-centered top-down view with a status bar
// Screen up is world +Z, screen right is world +X
type TerminalRenderer struct {
	screen tcell.Screen
	opts   Options
	fog    RGB

	width      int
	height     int
	viewHeight int
	cx, cy     int

	// Camera position for the frame being drawn
	eye vmath.Vec3F
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, opts Options) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.SetOptions(opts)
	r.Resize()
	return r
}

// SetOptions replaces fog, shadow and scale settings
func (r *TerminalRenderer) SetOptions(opts Options) {
	if !(opts.Scale > 0) {
		opts.Scale = parameter.ViewScale
	}
	r.opts = opts
	r.fog = HexRGB(opts.Fog.Color)
}

// Resize re-reads the screen size; call after a resize event
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.viewHeight = max(r.height-parameter.HUDRows, 0)
	r.cx = r.width / 2
	r.cy = r.viewHeight / 2
}

// RenderFrame draws one full frame and shows it
func (r *TerminalRenderer) RenderFrame(f Frame) {
	if f.Camera != nil {
		r.eye = f.Camera.Position
	}

	r.drawFloor(f.World)
	if f.World != nil {
		if r.opts.Shadows != ShadowsNone {
			r.drawShadows(f.World)
		}
		r.drawTrees(f.World)
		r.drawMarker(f.World)
		r.drawOrbs(f.World)
	}
	if f.Pool != nil {
		r.drawProjectiles(f.Pool)
	}
	if f.Camera != nil {
		r.drawCamera(f.Camera)
	}
	r.drawStatusBar(f)

	r.screen.Show()
}

// project maps a world point to a view cell
func (r *TerminalRenderer) project(p vmath.Vec3F) (int, int, bool) {
	dx := (p.X - r.eye.X) / r.opts.Scale
	dz := (p.Z - r.eye.Z) / (r.opts.Scale * parameter.ViewRowAspect)
	x := r.cx + int(math.Round(dx))
	y := r.cy - int(math.Round(dz))
	return x, y, x >= 0 && x < r.width && y >= 0 && y < r.viewHeight
}

// unproject returns the floor point under a view cell
func (r *TerminalRenderer) unproject(x, y int) vmath.Vec3F {
	return vmath.Vec3F{
		X: r.eye.X + float64(x-r.cx)*r.opts.Scale,
		Z: r.eye.Z + float64(r.cy-y)*r.opts.Scale*parameter.ViewRowAspect,
	}
}

// fogged blends c toward the fog color by its planar distance from the camera
func (r *TerminalRenderer) fogged(c RGB, p vmath.Vec3F) RGB {
	d := math.Hypot(p.X-r.eye.X, p.Z-r.eye.Z)
	return c.Blend(r.fog, r.opts.Fog.Factor(d))
}

func (r *TerminalRenderer) drawFloor(world *scene.World) {
	for y := 0; y < r.viewHeight; y++ {
		for x := 0; x < r.width; x++ {
			bg := RgbVoid
			if world != nil {
				p := r.unproject(x, y)
				if world.InBounds(p) {
					bg = r.fogged(RgbFloor, p)
				} else {
					bg = r.fogged(RgbVoid, p)
				}
			}
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg.Color()))
		}
	}
}

// darken multiplies the background of an already drawn cell toward the shadow tint
func (r *TerminalRenderer) darken(x, y int, alpha float64) {
	if x < 0 || x >= r.width || y < 0 || y >= r.viewHeight {
		return
	}
	mainc, comb, style, _ := r.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	cr, cg, cb := bg.RGB()
	base := RGB{uint8(cr), uint8(cg), uint8(cb)}
	r.screen.SetContent(x, y, mainc, comb, style.Background(base.Blend(RgbShadow, alpha).Color()))
}

// castShadow darkens the floor below an elevated point, slanted by its height
func (r *TerminalRenderer) castShadow(p vmath.Vec3F) {
	ground := vmath.Vec3F{X: p.X + p.Y*parameter.ShadowSlant, Z: p.Z}
	x, y, ok := r.project(ground)
	if !ok {
		return
	}
	switch r.opts.Shadows {
	case ShadowsHard:
		r.darken(x, y, parameter.ShadowHardAlpha)
	case ShadowsSoft:
		r.darken(x, y, parameter.ShadowSoftAlpha)
		half := parameter.ShadowSoftAlpha / 2
		r.darken(x-1, y, half)
		r.darken(x+1, y, half)
		r.darken(x, y-1, half)
		r.darken(x, y+1, half)
	}
}

func (r *TerminalRenderer) drawShadows(world *scene.World) {
	for _, o := range world.Orbs {
		r.castShadow(o.Position)
	}
	r.castShadow(world.Marker.Position)
}

// put draws a glyph keeping the cell's background
func (r *TerminalRenderer) put(x, y int, ch rune, fg RGB, attrs tcell.AttrMask) {
	_, _, style, _ := r.screen.GetContent(x, y)
	r.screen.SetContent(x, y, ch, nil, style.Foreground(fg.Color()).Attributes(attrs))
}

func (r *TerminalRenderer) drawTrees(world *scene.World) {
	for _, t := range world.Trees {
		if x, y, ok := r.project(t.Position); ok {
			r.put(x, y, '♣', r.fogged(RgbTree, t.Position), tcell.AttrNone)
		}
	}
}

func (r *TerminalRenderer) drawOrbs(world *scene.World) {
	for _, o := range world.Orbs {
		if x, y, ok := r.project(o.Position); ok {
			r.put(x, y, quarterGlyph(orbGlyphs, o.Rotation.Y), r.fogged(RgbOrb, o.Position), tcell.AttrBold)
		}
	}
}

func (r *TerminalRenderer) drawMarker(world *scene.World) {
	m := world.Marker
	if x, y, ok := r.project(m.Position); ok {
		r.put(x, y, quarterGlyph(markerGlyphs, m.Yaw), r.fogged(RgbMarker, m.Position), tcell.AttrNone)
	}
}

// drawProjectiles walks the pool oldest to newest so the newest arrow ends on top
func (r *TerminalRenderer) drawProjectiles(pool *projectile.Pool) {
	for i := pool.Len() - 1; i >= 0; i-- {
		p := pool.At(i)
		pos := p.Position()
		x, y, ok := r.project(pos)
		if !ok {
			continue
		}
		color, attrs := RgbProjectile, tcell.AttrNone
		if i == 0 {
			color, attrs = RgbNewest, tcell.AttrBold
		}
		r.put(x, y, headingGlyph(p.Direction), r.fogged(color, pos), attrs)
	}
}

func (r *TerminalRenderer) drawCamera(cam *scene.Camera) {
	if x, y, ok := r.project(cam.Position); ok {
		fwd := vmath.YawBasis(cam.Yaw).Forward
		r.put(x, y, headingGlyph(fwd), RgbCamera, tcell.AttrBold)
	}
}
