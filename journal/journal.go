// Package journal persists shot lifecycle events to SQLite on a background writer
package journal

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/longbow/engine"
	"github.com/lixenwraith/longbow/projectile"
)

const (
	queueSize = 256
	batchSize = 64
)

// Journal is an engine.Observer that never blocks the tick
// Events beyond the queue capacity are dropped and counted
type Journal struct {
	db      *gorm.DB
	session string
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan ShotEvent
	syncs  chan chan struct{}
	done   chan struct{}

	written atomic.Int64
	dropped atomic.Int64
}

// Open connects to the journal database; an empty path keeps it in memory
func Open(path string, log zerolog.Logger) (*Journal, error) {
	dsn := path
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		CreateBatchSize:        batchSize,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	// One connection: an in-memory database exists per connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&ShotEvent{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrating journal: %w", err)
	}

	j := &Journal{
		db:      db,
		session: time.Now().UTC().Format("20060102T150405.000"),
		log:     log.With().Str("component", "journal").Logger(),
		queue:   make(chan ShotEvent, queueSize),
		syncs:   make(chan chan struct{}),
		done:    make(chan struct{}),
	}
	go j.writer()

	if path != "" {
		j.log.Info().Str("path", path).Str("session", j.session).Msg("journal open")
	}
	return j, nil
}

// Session returns this run's session key
func (j *Journal) Session() string { return j.session }

// Written returns rows committed so far
func (j *Journal) Written() int64 { return j.written.Load() }

// Dropped returns events lost to a full queue
func (j *Journal) Dropped() int64 { return j.dropped.Load() }

func (j *Journal) writer() {
	defer close(j.done)

	batch := make([]ShotEvent, 0, batchSize)
	for {
		select {
		case ev, ok := <-j.queue:
			if !ok {
				return
			}
			batch = j.collect(append(batch, ev))
			j.flush(batch)
			batch = batch[:0]

		case ack := <-j.syncs:
			// Everything sent before the sync request is already buffered
			for {
				batch = j.collect(batch)
				if len(batch) == 0 {
					break
				}
				j.flush(batch)
				batch = batch[:0]
			}
			close(ack)
		}
	}
}

// collect appends whatever is already queued, up to batchSize
func (j *Journal) collect(batch []ShotEvent) []ShotEvent {
	for len(batch) < batchSize {
		select {
		case ev, ok := <-j.queue:
			if !ok {
				return batch
			}
			batch = append(batch, ev)
		default:
			return batch
		}
	}
	return batch
}

func (j *Journal) flush(batch []ShotEvent) {
	if len(batch) == 0 {
		return
	}
	if err := j.db.Create(&batch).Error; err != nil {
		j.log.Error().Err(err).Int("rows", len(batch)).Msg("journal write failed")
		return
	}
	j.written.Add(int64(len(batch)))
}

func (j *Journal) enqueue(ev ShotEvent) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if j.closed {
		return
	}
	ev.Session = j.session
	ev.CreatedAt = time.Now().UTC()

	select {
	case j.queue <- ev:
	default:
		j.dropped.Add(1)
	}
}

var _ engine.Observer = (*Journal)(nil)

func (j *Journal) OnFire(shot engine.Shot) {
	p := shot.Projectile
	pos := p.Spawn.Position
	j.enqueue(ShotEvent{
		Kind:    KindFire,
		Frame:   shot.Frame,
		SimTime: shot.SimTime,
		Power:   shot.Power,
		Visual:  uint64(p.Visual),
		OriginX: pos.X,
		OriginY: pos.Y,
		OriginZ: pos.Z,
		DirX:    p.Direction.X,
		DirY:    p.Direction.Y,
		DirZ:    p.Direction.Z,
	})
}

func (j *Journal) OnFalseStart(power float64) {
	j.enqueue(ShotEvent{Kind: KindFalseStart, Power: power})
}

func (j *Journal) OnCancel(power float64) {
	j.enqueue(ShotEvent{Kind: KindCancel, Power: power})
}

func (j *Journal) OnEvict(ev projectile.Eviction) {
	row := ShotEvent{Kind: KindEvict, Reason: ev.Reason.String()}
	if ev.Projectile != nil {
		row.Visual = uint64(ev.Projectile.Visual)
	}
	j.enqueue(row)
}

// Close stops accepting events, flushes the queue and closes the database
func (j *Journal) Close() error {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return nil
	}
	j.closed = true
	close(j.queue)
	j.mu.Unlock()

	<-j.done

	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	j.log.Debug().Int64("written", j.written.Load()).Int64("dropped", j.dropped.Load()).Msg("journal closed")
	return sqlDB.Close()
}

// Sync blocks until every event queued before the call is written
func (j *Journal) Sync(ctx context.Context) error {
	j.mu.RLock()
	closed := j.closed
	j.mu.RUnlock()
	if closed {
		return nil
	}

	ack := make(chan struct{})
	select {
	case j.syncs <- ack:
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events returns this session's rows of the given kind, oldest first; empty kind returns all
func (j *Journal) Events(ctx context.Context, kind string) ([]ShotEvent, error) {
	q := j.db.WithContext(ctx).Where("session = ?", j.session)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	var rows []ShotEvent
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}
	return rows, nil
}

// Count returns this session's row count per kind
func (j *Journal) Count(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Kind string
		N    int64
	}
	err := j.db.WithContext(ctx).Model(&ShotEvent{}).
		Select("kind, count(*) as n").
		Where("session = ?", j.session).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("counting journal: %w", err)
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Kind] = r.N
	}
	return out, nil
}
