package bow

import (
	"fmt"

	"github.com/lixenwraith/longbow/parameter"
	"github.com/lixenwraith/longbow/vmath"
)

// Skeleton is the rig collaborator the pose driver writes joint offsets into
type Skeleton interface {
	SetPosition(joint int, p vmath.Vec3F)
	SetRotationZ(joint int, rad float64)
}

// Pose is the visual state derived from draw power alone
type Pose struct {
	// StringOffset is the string joint's lateral position
	StringOffset float64
	// LimbBend is the upper chain's Z rotation; the lower chain gets its negation
	LimbBend float64
	// NockVisible shows the resting arrow while the bow is drawn
	NockVisible bool
	// NockDepth places the resting arrow behind the string
	NockDepth float64
}

// PoseFor maps power in [0, 100] to a pose; out-of-range power is clamped
func PoseFor(power float64) Pose {
	power = clamp(power, 0, parameter.MaxDrawPower)
	frac := power / parameter.MaxDrawPower

	str := parameter.StringRestOffset + parameter.StringTravel*frac
	return Pose{
		StringOffset: str,
		LimbBend:     parameter.LimbBendMax * frac,
		NockVisible:  power > 0,
		NockDepth:    -str + parameter.NockBaseDepth,
	}
}

// Driver applies poses to a skeleton through joints resolved once at construction
type Driver struct {
	skel  Skeleton
	str   int
	upper []int
	lower []int

	last Pose
}

// NewDriver binds the string joint and both limb chains from jt
func NewDriver(skel Skeleton, jt *JointTable) (*Driver, error) {
	str, err := jt.Joint(JointString)
	if err != nil {
		return nil, fmt.Errorf("pose driver: %w", err)
	}
	upper, err := jt.Chain(ChainUpper)
	if err != nil {
		return nil, fmt.Errorf("pose driver: %w", err)
	}
	lower, err := jt.Chain(ChainLower)
	if err != nil {
		return nil, fmt.Errorf("pose driver: %w", err)
	}
	return &Driver{skel: skel, str: str, upper: upper, lower: lower}, nil
}

// Apply writes the pose for power; same input always produces the same joint state
func (d *Driver) Apply(power float64) Pose {
	p := PoseFor(power)

	d.skel.SetPosition(d.str, vmath.Vec3F{X: p.StringOffset})
	for _, j := range d.upper {
		d.skel.SetRotationZ(j, p.LimbBend)
	}
	for _, j := range d.lower {
		d.skel.SetRotationZ(j, -p.LimbBend)
	}

	d.last = p
	return p
}

// Last returns the most recently applied pose
func (d *Driver) Last() Pose { return d.last }

// MemorySkeleton is an in-process joint store read by the renderer
type MemorySkeleton struct {
	Positions []vmath.Vec3F
	RotationZ []float64
}

// NewMemorySkeleton allocates count joints at rest
func NewMemorySkeleton(count int) *MemorySkeleton {
	return &MemorySkeleton{
		Positions: make([]vmath.Vec3F, count),
		RotationZ: make([]float64, count),
	}
}

func (s *MemorySkeleton) SetPosition(joint int, p vmath.Vec3F) {
	if joint >= 0 && joint < len(s.Positions) {
		s.Positions[joint] = p
	}
}

func (s *MemorySkeleton) SetRotationZ(joint int, rad float64) {
	if joint >= 0 && joint < len(s.RotationZ) {
		s.RotationZ[joint] = rad
	}
}
