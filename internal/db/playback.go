package db

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/model"
)

func (s *pgStore) CreatePlaybackEvent(e model.PlaybackEvent) error {
	const q = `
	INSERT INTO playback_events
	  (customer_id, player_id, schedule_id, layout_id, started_at, duration_sec, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, now());`
	_, err := s.db.Exec(q, e.CustomerID, e.PlayerID, e.ScheduleID, e.LayoutID, e.StartedAt, e.DurationSec)
	if err != nil {
		log.Error().Err(err).Int("player_id", e.PlayerID).Msg("CreatePlaybackEvent failed")
	}
	return err
}

func (s *pgStore) ListPlaybackEvents(customerID int, playerID, scheduleID *int, from, to *time.Time) ([]model.PlaybackEvent, error) {
	var out []model.PlaybackEvent
	const q = `
	SELECT id, customer_id, player_id, schedule_id, layout_id, started_at, duration_sec, created_at
	  FROM playback_events
	 WHERE customer_id = $1
	   AND ($2::int IS NULL OR player_id = $2)
	   AND ($3::int IS NULL OR schedule_id = $3)
	   AND ($4::timestamptz IS NULL OR started_at >= $4)
	   AND ($5::timestamptz IS NULL OR started_at < $5)
	 ORDER BY started_at DESC
	 LIMIT 1000;`
	if err := s.db.Select(&out, q, customerID, playerID, scheduleID, from, to); err != nil {
		log.Error().Err(err).Msg("ListPlaybackEvents failed")
		return nil, err
	}
	return out, nil
}
