package model

import "time"

// Customer is the tenant boundary; every other entity hangs off one.
type Customer struct {
	ID        int       `db:"id"           json:"id"`
	Name      string    `db:"name"         json:"name"`
	CreatedAt time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt time.Time `db:"updated_at"   json:"updated_at"`
}

// Site is a physical location; its time zone drives schedule evaluation
// for every player attached to it.
type Site struct {
	ID         int       `db:"id"           json:"id"`
	CustomerID int       `db:"customer_id"  json:"customer_id"`
	Name       string    `db:"name"         json:"name"`
	TimeZone   string    `db:"time_zone"    json:"time_zone"`
	Location   *string   `db:"location"     json:"location,omitempty"`
	CreatedAt  time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"   json:"updated_at"`
}

// Player is a display device. DeviceID is bound at pairing time.
type Player struct {
	ID         int       `db:"id"           json:"id"`
	CustomerID int       `db:"customer_id"  json:"customer_id"`
	SiteID     int       `db:"site_id"      json:"site_id"`
	Name       string    `db:"name"         json:"name"`
	DeviceID   *string   `db:"device_id"    json:"device_id"`
	Paired     bool      `db:"paired"       json:"paired"`
	CreatedAt  time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"   json:"updated_at"`
}
