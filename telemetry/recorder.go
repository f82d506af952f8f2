// Package telemetry records shot lifecycle metrics
package telemetry

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/longbow/engine"
	"github.com/lixenwraith/longbow/projectile"
)

// Stats is a point-in-time copy of the recorder's totals
type Stats struct {
	Shots       int64
	FalseStarts int64
	Cancels     int64
	Expired     int64
	Displaced   int64
	LastPower   float64
}

// Recorder is an engine.Observer feeding OTel instruments and local totals
// Instruments come from the global meter provider, a no-op unless one is installed
type Recorder struct {
	shots       metric.Int64Counter
	falseStarts metric.Int64Counter
	cancels     metric.Int64Counter
	evictions   metric.Int64Counter
	power       metric.Float64Histogram
	inFlight    metric.Int64ObservableGauge

	nShots       atomic.Int64
	nFalseStarts atomic.Int64
	nCancels     atomic.Int64
	nExpired     atomic.Int64
	nDisplaced   atomic.Int64
	lastPower    atomic.Uint64 // float64 bits
}

// New creates a recorder on the global meter
// inFlight reports the pool size for the gauge; nil disables the gauge
func New(inFlight func() int) (*Recorder, error) {
	return NewWithMeter(meter(), inFlight)
}

// NewWithMeter creates a recorder on m
func NewWithMeter(m metric.Meter, inFlight func() int) (*Recorder, error) {
	r := &Recorder{}
	var err error

	r.shots, err = m.Int64Counter(
		"longbow.shots",
		metric.WithDescription("Releases that launched a projectile"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	r.falseStarts, err = m.Int64Counter(
		"longbow.false_starts",
		metric.WithDescription("Releases at or below the fire threshold"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating false start counter: %w", err)
	}

	r.cancels, err = m.Int64Counter(
		"longbow.cancels",
		metric.WithDescription("Draws aborted by the cancel action"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cancel counter: %w", err)
	}

	r.evictions, err = m.Int64Counter(
		"longbow.evictions",
		metric.WithDescription("Projectiles removed from the pool"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating eviction counter: %w", err)
	}

	r.power, err = m.Float64Histogram(
		"longbow.release.power",
		metric.WithDescription("Draw power at release"),
		metric.WithExplicitBucketBoundaries(25, 50, 60, 70, 80, 90, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("creating power histogram: %w", err)
	}

	if inFlight != nil {
		r.inFlight, err = m.Int64ObservableGauge(
			"longbow.projectiles.in_flight",
			metric.WithDescription("Projectiles currently in the pool"),
		)
		if err != nil {
			return nil, fmt.Errorf("creating in-flight gauge: %w", err)
		}
		_, err = m.RegisterCallback(
			func(ctx context.Context, o metric.Observer) error {
				o.ObserveInt64(r.inFlight, int64(inFlight()))
				return nil
			},
			r.inFlight,
		)
		if err != nil {
			return nil, fmt.Errorf("registering in-flight callback: %w", err)
		}
	}

	return r, nil
}

var _ engine.Observer = (*Recorder)(nil)

func (r *Recorder) OnFire(shot engine.Shot) {
	ctx := context.Background()
	r.shots.Add(ctx, 1)
	r.power.Record(ctx, shot.Power, metric.WithAttributes(attribute.Bool("fired", true)))
	r.nShots.Add(1)
	r.lastPower.Store(math.Float64bits(shot.Power))
}

func (r *Recorder) OnFalseStart(power float64) {
	ctx := context.Background()
	r.falseStarts.Add(ctx, 1)
	r.power.Record(ctx, power, metric.WithAttributes(attribute.Bool("fired", false)))
	r.nFalseStarts.Add(1)
	r.lastPower.Store(math.Float64bits(power))
}

func (r *Recorder) OnCancel(power float64) {
	r.cancels.Add(context.Background(), 1)
	r.nCancels.Add(1)
}

func (r *Recorder) OnEvict(ev projectile.Eviction) {
	r.evictions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("reason", ev.Reason.String())))

	switch ev.Reason {
	case projectile.EvictExpired:
		r.nExpired.Add(1)
	case projectile.EvictCapacity:
		r.nDisplaced.Add(1)
	}
}

// Stats returns current totals
func (r *Recorder) Stats() Stats {
	return Stats{
		Shots:       r.nShots.Load(),
		FalseStarts: r.nFalseStarts.Load(),
		Cancels:     r.nCancels.Load(),
		Expired:     r.nExpired.Load(),
		Displaced:   r.nDisplaced.Load(),
		LastPower:   math.Float64frombits(r.lastPower.Load()),
	}
}
