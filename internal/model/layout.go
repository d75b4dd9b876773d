package model

import "time"

// Layout is a sized visual composition. Schedules reference layouts by id
// only; zone contents are delivered to players out of band.
type Layout struct {
	ID              int       `db:"id"               json:"id"`
	CustomerID      int       `db:"customer_id"      json:"customer_id"`
	Name            string    `db:"name"             json:"name"`
	Width           int       `db:"width"            json:"width"`
	Height          int       `db:"height"           json:"height"`
	BackgroundColor string    `db:"background_color" json:"background_color"`
	CreatedBy       int       `db:"created_by"       json:"created_by"`
	CreatedAt       time.Time `db:"created_at"       json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"       json:"updated_at"`
}
