package model

import "time"

type Media struct {
	ID         int       `db:"id"           json:"id"`
	CustomerID int       `db:"customer_id"  json:"customer_id"`
	Name       string    `db:"name"         json:"name"`
	Type       string    `db:"type"         json:"type"`
	URL        string    `db:"url"          json:"url"`
	CreatedBy  int       `db:"created_by"   json:"created_by"`
	CreatedAt  time.Time `db:"created_at"   json:"created_at"`
}
