package journal

import "time"

// Event kinds
const (
	KindFire       = "fire"
	KindFalseStart = "false_start"
	KindCancel     = "cancel"
	KindEvict      = "evict"
)

// ShotEvent is one row of the shot journal
type ShotEvent struct {
	ID        uint   `gorm:"primaryKey"`
	Session   string `gorm:"index;size:32"`
	Kind      string `gorm:"index;size:16"`
	Frame     uint64
	SimTime   float64
	Power     float64
	Visual    uint64
	Reason    string `gorm:"size:16"`
	OriginX   float64
	OriginY   float64
	OriginZ   float64
	DirX      float64
	DirY      float64
	DirZ      float64
	CreatedAt time.Time
}

// TableName pins the table name
func (ShotEvent) TableName() string { return "shot_events" }
