package model

import "time"

// PlaybackEvent is one proof-of-play record reported by a player.
type PlaybackEvent struct {
	ID          int       `db:"id"           json:"id"`
	CustomerID  int       `db:"customer_id"  json:"customer_id"`
	PlayerID    int       `db:"player_id"    json:"player_id"`
	ScheduleID  *int      `db:"schedule_id"  json:"schedule_id,omitempty"`
	LayoutID    int       `db:"layout_id"    json:"layout_id"`
	StartedAt   time.Time `db:"started_at"   json:"started_at"`
	DurationSec int       `db:"duration_sec" json:"duration_sec"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
}
