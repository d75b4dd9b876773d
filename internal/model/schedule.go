package model

import "time"

// Schedule is a time/priority-bounded rule pointing at one layout. The
// optional window fields are nullable in the database: a nil date bound is
// unbounded, nil times mean full-day, a nil day list means every day.
// StartTime/EndTime are "HH:mm:ss" strings; DaysOfWeek is comma-separated
// canonical tokens ("Mon,Wed,Fri").
type Schedule struct {
	ID         int        `db:"id"           json:"id"`
	CustomerID int        `db:"customer_id"  json:"customer_id"`
	Name       string     `db:"name"         json:"name"`
	LayoutID   int        `db:"layout_id"    json:"layout_id"`
	Priority   int        `db:"priority"     json:"priority"`
	StartDate  *time.Time `db:"start_date"   json:"start_date,omitempty"`
	EndDate    *time.Time `db:"end_date"     json:"end_date,omitempty"`
	StartTime  *string    `db:"start_time"   json:"start_time,omitempty"`
	EndTime    *string    `db:"end_time"     json:"end_time,omitempty"`
	DaysOfWeek *string    `db:"days_of_week" json:"days_of_week,omitempty"`
	IsActive   bool       `db:"is_active"    json:"is_active"`
	CreatedBy  int        `db:"created_by"   json:"created_by"`
	CreatedAt  time.Time  `db:"created_at"   json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"   json:"updated_at"`

	Assignments []ScheduleAssignment `db:"-" json:"assignments,omitempty"`
}

// ScheduleAssignment binds a schedule to exactly one target at one scope
// level; exactly one target column is non-null, matching Type.
type ScheduleAssignment struct {
	ID               int       `db:"id"                 json:"id"`
	ScheduleID       int       `db:"schedule_id"        json:"schedule_id"`
	Type             string    `db:"assignment_type"    json:"assignment_type"`
	TargetCustomerID *int      `db:"target_customer_id" json:"target_customer_id,omitempty"`
	TargetSiteID     *int      `db:"target_site_id"     json:"target_site_id,omitempty"`
	TargetPlayerID   *int      `db:"target_player_id"   json:"target_player_id,omitempty"`
	CreatedAt        time.Time `db:"created_at"         json:"created_at"`
}
