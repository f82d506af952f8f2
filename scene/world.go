// Package scene holds the procedurally populated terrain and the first-person camera rig
package scene

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/longbow/parameter"
	"github.com/lixenwraith/longbow/vmath"
)

// Tree is a static prop on the ring
type Tree struct {
	Position vmath.Vec3F
	Yaw      float64
}

// Orb is a light floating above a tree, tumbling on all three axes
type Orb struct {
	Position vmath.Vec3F
	Rotation vmath.Vec3F // Euler angles in [0, 2pi)
	Spin     vmath.Vec3F // rad/s per axis
}

// Marker is the spinning box at the origin
type Marker struct {
	Position vmath.Vec3F
	Size     float64
	Yaw      float64
	Spin     float64
}

// Layout drives Populate
type Layout struct {
	FloorSize    float64
	TreeCount    int
	RingRadius   float64
	OrbHeight    float64
	OrbMaxSpin   float64
	MarkerSize   float64
	MarkerHeight float64
	MarkerSpin   float64
}

// DefaultLayout returns the stock terrain
func DefaultLayout() Layout {
	return Layout{
		FloorSize:    parameter.FloorSize,
		TreeCount:    parameter.TreeCount,
		RingRadius:   parameter.TreeRingRadius,
		OrbHeight:    parameter.OrbHeight,
		OrbMaxSpin:   parameter.OrbMaxSpin,
		MarkerSize:   parameter.MarkerSize,
		MarkerHeight: parameter.MarkerHeight,
		MarkerSpin:   parameter.MarkerSpin,
	}
}

// World is the scene state animated by the simulation tick
type World struct {
	FloorSize float64
	Trees     []Tree
	Orbs      []Orb
	Marker    Marker
}

// Populate builds a world; seed 0 picks a random seed
func Populate(layout Layout, seed uint64) *World {
	var rng *rand.Rand
	if seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	w := &World{
		FloorSize: layout.FloorSize,
		Trees:     make([]Tree, 0, layout.TreeCount),
		Orbs:      make([]Orb, 0, layout.TreeCount),
		Marker: Marker{
			Position: vmath.Vec3F{Y: layout.MarkerHeight},
			Size:     layout.MarkerSize,
			Spin:     layout.MarkerSpin,
		},
	}

	for i := 0; i < layout.TreeCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(layout.TreeCount)
		s, c := math.Sincos(angle)
		pos := vmath.Vec3F{X: layout.RingRadius * c, Z: layout.RingRadius * s}

		w.Trees = append(w.Trees, Tree{
			Position: pos,
			Yaw:      rng.Float64() * 2 * math.Pi,
		})
		w.Orbs = append(w.Orbs, Orb{
			Position: vmath.V3FAdd(pos, vmath.Vec3F{Y: layout.OrbHeight}),
			Spin: vmath.Vec3F{
				X: rng.Float64() * layout.OrbMaxSpin,
				Y: rng.Float64() * layout.OrbMaxSpin,
				Z: rng.Float64() * layout.OrbMaxSpin,
			},
		})
	}

	return w
}

// Update advances ambient animation by dt seconds
func (w *World) Update(dt float64) {
	if !(dt > 0) {
		return
	}

	w.Marker.Yaw = wrapTurn(w.Marker.Yaw + w.Marker.Spin*dt)
	for i := range w.Orbs {
		o := &w.Orbs[i]
		o.Rotation = vmath.Vec3F{
			X: wrapTurn(o.Rotation.X + o.Spin.X*dt),
			Y: wrapTurn(o.Rotation.Y + o.Spin.Y*dt),
			Z: wrapTurn(o.Rotation.Z + o.Spin.Z*dt),
		}
	}
}

// InBounds reports whether p lies over the floor plane
func (w *World) InBounds(p vmath.Vec3F) bool {
	h := w.FloorSize / 2
	return math.Abs(p.X) <= h && math.Abs(p.Z) <= h
}

// wrapTurn maps a to [0, 2pi)
func wrapTurn(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
