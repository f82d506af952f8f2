package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/longbow/bow"
	"github.com/lixenwraith/longbow/input"
	"github.com/lixenwraith/longbow/parameter"
	"github.com/lixenwraith/longbow/physics"
	"github.com/lixenwraith/longbow/projectile"
)

// ErrNoSkeleton is returned when the rig collaborator is missing
var ErrNoSkeleton = errors.New("skeleton collaborator missing")

// ErrNoJointTable is returned when the rig joints were never loaded
var ErrNoJointTable = errors.New("joint table missing")

// Settings collects every tunable the simulation reads
type Settings struct {
	Move   physics.MoveTuning
	Draw   bow.DrawTuning
	Launch projectile.LaunchTuning
	Pool   projectile.PoolTuning

	// Camera turn rates in rad/s for keyboard look
	TurnRate  float64
	PitchRate float64
}

// DefaultSettings returns the stock tuning
func DefaultSettings() Settings {
	return Settings{
		Move:      physics.DefaultMoveTuning(),
		Draw:      bow.DefaultDrawTuning(),
		Launch:    projectile.DefaultLaunchTuning(),
		Pool:      projectile.DefaultPoolTuning(),
		TurnRate:  parameter.CameraTurnRate,
		PitchRate: parameter.CameraPitchRate,
	}
}

// Report summarizes one tick for the renderer and the HUD
type Report struct {
	Frame    uint64
	Power    float64
	Phase    bow.Phase
	Fired    bool
	Velocity physics.Velocity
	Pose     bow.Pose

	// Evictions is only valid until the next Tick
	Evictions []projectile.Eviction
}

// Simulation owns all core state; a single goroutine calls Tick and then reads it
type Simulation struct {
	// ===== Immutable After Init =====

	settings Settings
	collab   Collaborators
	log      zerolog.Logger

	// ===== Core State (tick goroutine only) =====

	mover    *physics.Mover
	draw     *bow.Draw
	composer *projectile.Composer
	pool     *projectile.Pool
	pose     *bow.Driver

	frame   uint64
	simTime float64

	// Reused between ticks to avoid per-frame allocation
	evictions []projectile.Eviction
}

// New builds a simulation once every collaborator is available
// The joint table and skeleton are preconditions; a Simulation never exists without them
func New(jt *bow.JointTable, collab Collaborators, settings Settings, log zerolog.Logger) (*Simulation, error) {
	if jt == nil {
		return nil, ErrNoJointTable
	}
	if collab.Skeleton == nil {
		return nil, ErrNoSkeleton
	}

	pose, err := bow.NewDriver(collab.Skeleton, jt)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	if collab.Rig == nil {
		collab.Rig = nopRig{}
	}
	if collab.Aim == nil {
		collab.Aim = missingAim{}
	}
	if collab.Socket == nil {
		collab.Socket = missingSocket{}
	}
	if collab.Audio == nil {
		collab.Audio = nopAudio{}
	}
	if collab.Ambient == nil {
		collab.Ambient = nopAmbient{}
	}
	if collab.Observer == nil {
		collab.Observer = nopObserver{}
	}

	s := &Simulation{
		settings:  settings,
		collab:    collab,
		log:       log.With().Str("component", "simulation").Logger(),
		mover:     physics.NewMover(settings.Move),
		draw:      bow.NewDraw(settings.Draw),
		composer:  projectile.NewComposer(settings.Launch),
		pool:      projectile.NewPool(settings.Pool),
		pose:      pose,
		evictions: make([]projectile.Eviction, 0, settings.Pool.Capacity+1),
	}

	// Rest pose before the first frame
	s.pose.Apply(0)
	return s, nil
}

// Tick advances one frame
// Order: movement, look, draw, launch and append, pose, advance, expire, ambient
func (s *Simulation) Tick(in input.Intent, dt float64) Report {
	if !(dt > 0) || math.IsInf(dt, 1) {
		dt = 0
	}
	s.frame++
	s.simTime += dt
	s.evictions = s.evictions[:0]

	// Movement
	vel := s.mover.Tick(in, dt)
	s.look(in, dt)
	physics.Translate(s.collab.Rig, vel, dt)

	// Draw and launch; aim and socket are sampled only for an armed release
	var (
		shot     projectile.Projectile
		composed bool
	)
	launchable := true
	if !in.Draw && s.draw.Armed() {
		var err error
		shot, err = s.compose()
		composed = err == nil
		launchable = composed
		if err != nil {
			s.log.Debug().Err(err).Float64("power", s.draw.Power()).Msg("release deferred")
		}
	}

	power, fired := s.draw.Step(in.Draw, dt, launchable)
	switch {
	case fired && composed:
		s.evictions = append(s.evictions, s.pool.Append(shot)...)
		s.collab.Audio.PlayShot()
		s.collab.Observer.OnFire(Shot{
			Frame:      s.frame,
			SimTime:    s.simTime,
			Power:      s.draw.LastReleasePower(),
			Projectile: shot,
		})
	case s.draw.Phase() == bow.PhaseFalseStart:
		s.collab.Observer.OnFalseStart(s.draw.LastReleasePower())
	}

	// Pose every frame, including the fire frame at power 0
	pose := s.pose.Apply(power)

	// Flight
	s.evictions = append(s.evictions, s.pool.Advance(dt)...)
	s.evictions = append(s.evictions, s.pool.EvictExpired()...)
	for _, ev := range s.evictions {
		s.collab.Observer.OnEvict(ev)
	}

	s.collab.Ambient.Update(dt)

	return Report{
		Frame:     s.frame,
		Power:     power,
		Phase:     s.draw.Phase(),
		Fired:     fired,
		Velocity:  vel,
		Pose:      pose,
		Evictions: s.evictions,
	}
}

func (s *Simulation) compose() (projectile.Projectile, error) {
	aim, ok := s.collab.Aim.Aim()
	if !ok {
		return projectile.Projectile{}, projectile.ErrNoAim
	}
	socket, ok := s.collab.Socket.Socket()
	if !ok {
		return projectile.Projectile{}, projectile.ErrNoSocket
	}
	return s.composer.Compose(aim, socket)
}

func (s *Simulation) look(in input.Intent, dt float64) {
	var yaw, pitch float64
	if in.TurnRight {
		yaw += s.settings.TurnRate * dt
	}
	if in.TurnLeft {
		yaw -= s.settings.TurnRate * dt
	}
	if in.LookUp {
		pitch += s.settings.PitchRate * dt
	}
	if in.LookDown {
		pitch -= s.settings.PitchRate * dt
	}
	if yaw != 0 || pitch != 0 {
		s.collab.Rig.Turn(yaw, pitch)
	}
}

// Cancel aborts the current draw; the bow stays slack until the button is released
func (s *Simulation) Cancel() {
	power := s.draw.Power()
	if s.draw.Cancel() {
		s.collab.Observer.OnCancel(power)
	}
	s.pose.Apply(0)
}

// Reset clears every projectile and returns to rest
func (s *Simulation) Reset() {
	for _, ev := range s.pool.Clear() {
		s.collab.Observer.OnEvict(ev)
	}
	s.draw.Reset()
	s.mover.Stop()
	s.pose.Apply(0)
}

// SetCapacity changes the pool limit at runtime; the excess is evicted on the next tick
func (s *Simulation) SetCapacity(n int) {
	s.pool.SetCapacity(n)
}

// Pool exposes the in-flight projectiles in newest-first order for rendering
func (s *Simulation) Pool() *projectile.Pool { return s.pool }

// Power returns current draw power
func (s *Simulation) Power() float64 { return s.draw.Power() }

// Phase returns the draw phase
func (s *Simulation) Phase() bow.Phase { return s.draw.Phase() }

// Pose returns the pose applied on the last tick
func (s *Simulation) Pose() bow.Pose { return s.pose.Last() }

// Velocity returns the rig-local planar velocity
func (s *Simulation) Velocity() physics.Velocity { return s.mover.Velocity() }

// Frame returns the number of ticks run
func (s *Simulation) Frame() uint64 { return s.frame }

// SimTime returns total simulated seconds
func (s *Simulation) SimTime() float64 { return s.simTime }
