package db

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/model"
)

const scheduleColumns = `id, customer_id, name, layout_id, priority, start_date, end_date,
	start_time, end_time, days_of_week, is_active, created_by, created_at, updated_at`

const assignmentColumns = `id, schedule_id, assignment_type, target_customer_id, target_site_id, target_player_id, created_at`

func (s *pgStore) CreateSchedule(sc model.Schedule) (model.Schedule, error) {
	var out model.Schedule
	const q = `
	INSERT INTO schedules
	  (customer_id, name, layout_id, priority, start_date, end_date,
	   start_time, end_time, days_of_week, is_active, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
	RETURNING ` + scheduleColumns + `;`
	err := s.db.Get(&out, q,
		sc.CustomerID, sc.Name, sc.LayoutID, sc.Priority,
		sc.StartDate, sc.EndDate, sc.StartTime, sc.EndTime,
		sc.DaysOfWeek, sc.IsActive, sc.CreatedBy)
	if err != nil {
		log.Error().Err(err).Msg("CreateSchedule failed")
		return model.Schedule{}, err
	}
	return out, nil
}

func (s *pgStore) GetScheduleByID(customerID, id int) (model.Schedule, error) {
	var sc model.Schedule
	const q = `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1 AND customer_id = $2;`
	if err := s.db.Get(&sc, q, id, customerID); err != nil {
		return model.Schedule{}, notFound(err)
	}
	if err := s.attachAssignments([]*model.Schedule{&sc}); err != nil {
		return model.Schedule{}, err
	}
	return sc, nil
}

func (s *pgStore) ListSchedules(customerID int) ([]model.Schedule, error) {
	var out []model.Schedule
	const q = `
	SELECT ` + scheduleColumns + `
	  FROM schedules
	 WHERE customer_id = $1
	 ORDER BY priority DESC, id;`
	if err := s.db.Select(&out, q, customerID); err != nil {
		log.Error().Err(err).Msg("ListSchedules failed")
		return nil, err
	}
	refs := make([]*model.Schedule, len(out))
	for i := range out {
		refs[i] = &out[i]
	}
	if err := s.attachAssignments(refs); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateSchedule applies PATCH semantics: nil leaves a column unchanged,
// a Clear flag nulls the window column so a bounded schedule can become
// unbounded again.
func (s *pgStore) UpdateSchedule(customerID, id int, p UpdateScheduleParams) error {
	const q = `
	UPDATE schedules
	   SET name         = COALESCE($3, name),
	       layout_id    = COALESCE($4, layout_id),
	       priority     = COALESCE($5, priority),
	       start_date   = CASE WHEN $6  THEN NULL ELSE COALESCE($7,  start_date)   END,
	       end_date     = CASE WHEN $8  THEN NULL ELSE COALESCE($9,  end_date)     END,
	       start_time   = CASE WHEN $10 THEN NULL ELSE COALESCE($11, start_time)   END,
	       end_time     = CASE WHEN $12 THEN NULL ELSE COALESCE($13, end_time)     END,
	       days_of_week = CASE WHEN $14 THEN NULL ELSE COALESCE($15, days_of_week) END,
	       is_active    = COALESCE($16, is_active),
	       updated_at   = now()
	 WHERE id = $1 AND customer_id = $2;`
	res, err := s.db.Exec(q, id, customerID,
		p.Name, p.LayoutID, p.Priority,
		p.ClearStartDate, p.StartDate,
		p.ClearEndDate, p.EndDate,
		p.ClearStartTime, p.StartTime,
		p.ClearEndTime, p.EndTime,
		p.ClearDaysOfWeek, p.DaysOfWeek,
		p.IsActive)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("UpdateSchedule failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSchedule removes the schedule; assignments cascade at the schema
// level (ON DELETE CASCADE).
func (s *pgStore) DeleteSchedule(customerID, id int) error {
	res, err := s.db.Exec(`DELETE FROM schedules WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("DeleteSchedule failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) CreateAssignment(a model.ScheduleAssignment) (model.ScheduleAssignment, error) {
	var out model.ScheduleAssignment
	const q = `
	INSERT INTO schedule_assignments
	  (schedule_id, assignment_type, target_customer_id, target_site_id, target_player_id, created_at)
	VALUES ($1, $2, $3, $4, $5, now())
	RETURNING ` + assignmentColumns + `;`
	err := s.db.Get(&out, q, a.ScheduleID, a.Type, a.TargetCustomerID, a.TargetSiteID, a.TargetPlayerID)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", a.ScheduleID).Msg("CreateAssignment failed")
		return model.ScheduleAssignment{}, err
	}
	return out, nil
}

// DeleteAssignment only deletes when the assignment belongs to the given
// schedule inside the tenant; anything else is a not-found.
func (s *pgStore) DeleteAssignment(customerID, scheduleID, assignmentID int) error {
	const q = `
	DELETE FROM schedule_assignments a
	 USING schedules sc
	 WHERE a.id = $1
	   AND a.schedule_id = $2
	   AND sc.id = a.schedule_id
	   AND sc.customer_id = $3;`
	res, err := s.db.Exec(q, assignmentID, scheduleID, customerID)
	if err != nil {
		log.Error().Err(err).Int("assignment_id", assignmentID).Msg("DeleteAssignment failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListActiveSchedulesForPlayer is the resolver's coarse pre-filter: every
// enabled schedule with at least one assignment anywhere on the player's
// customer/site/player chain, highest priority first. Schedules with no
// assignments never appear (inner join). Time windows are evaluated in Go,
// not here, because "now" has to be the site's wall clock.
func (s *pgStore) ListActiveSchedulesForPlayer(customerID, siteID, playerID int) ([]model.Schedule, error) {
	var out []model.Schedule
	const q = `
	SELECT DISTINCT sc.id, sc.customer_id, sc.name, sc.layout_id, sc.priority,
	       sc.start_date, sc.end_date, sc.start_time, sc.end_time,
	       sc.days_of_week, sc.is_active, sc.created_by, sc.created_at, sc.updated_at
	  FROM schedules sc
	  INNER JOIN schedule_assignments a ON a.schedule_id = sc.id
	 WHERE sc.customer_id = $1
	   AND sc.is_active = true
	   AND (   (a.assignment_type = 'customer' AND a.target_customer_id = $1)
	        OR (a.assignment_type = 'site'     AND a.target_site_id     = $2)
	        OR (a.assignment_type = 'player'   AND a.target_player_id   = $3))
	 ORDER BY sc.priority DESC, sc.id;`
	if err := s.db.Select(&out, q, customerID, siteID, playerID); err != nil {
		log.Error().Err(err).Int("player_id", playerID).Msg("ListActiveSchedulesForPlayer failed")
		return nil, err
	}
	refs := make([]*model.Schedule, len(out))
	for i := range out {
		refs[i] = &out[i]
	}
	if err := s.attachAssignments(refs); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPlayerDeviceIDsForSchedule finds the paired devices a schedule can
// currently reach, used to push refresh commands after mutations.
func (s *pgStore) ListPlayerDeviceIDsForSchedule(scheduleID int) ([]string, error) {
	var out []string
	const q = `
	SELECT DISTINCT p.device_id
	  FROM players p
	  JOIN schedule_assignments a
	    ON (a.assignment_type = 'customer' AND a.target_customer_id = p.customer_id)
	    OR (a.assignment_type = 'site'     AND a.target_site_id     = p.site_id)
	    OR (a.assignment_type = 'player'   AND a.target_player_id   = p.id)
	 WHERE a.schedule_id = $1
	   AND p.paired = true
	   AND p.device_id IS NOT NULL;`
	if err := s.db.Select(&out, q, scheduleID); err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Msg("ListPlayerDeviceIDsForSchedule failed")
		return nil, err
	}
	return out, nil
}

// attachAssignments loads assignments for a batch of schedules in one query.
func (s *pgStore) attachAssignments(schedules []*model.Schedule) error {
	if len(schedules) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(schedules))
	byID := make(map[int]*model.Schedule, len(schedules))
	for _, sc := range schedules {
		ids = append(ids, int64(sc.ID))
		byID[sc.ID] = sc
	}

	var rows []model.ScheduleAssignment
	const q = `
	SELECT ` + assignmentColumns + `
	  FROM schedule_assignments
	 WHERE schedule_id = ANY($1)
	 ORDER BY id;`
	if err := s.db.Select(&rows, q, pq.Array(ids)); err != nil {
		log.Error().Err(err).Msg("attachAssignments failed")
		return err
	}
	for _, a := range rows {
		if sc, ok := byID[a.ScheduleID]; ok {
			sc.Assignments = append(sc.Assignments, a)
		}
	}
	return nil
}
