package model

import (
	"time"

	"github.com/lib/pq"
)

// Webhook is a per-customer subscription to backend events. Deliveries are
// signed with the subscription secret.
type Webhook struct {
	ID         int            `db:"id"          json:"id"`
	CustomerID int            `db:"customer_id" json:"customer_id"`
	URL        string         `db:"url"         json:"url"`
	Secret     string         `db:"secret"      json:"-"`
	Events     pq.StringArray `db:"events"      json:"events"`
	CreatedAt  time.Time      `db:"created_at"  json:"created_at"`
}
