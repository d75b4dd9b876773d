// Package db is the storage layer: an injected Store interface backed by
// PostgreSQL. Every read and write is scoped by customer id, so a row
// outside the caller's tenant is indistinguishable from a missing row.
package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Lumen-Signage/lumen/internal/model"
)

// ErrNotFound is returned for rows that do not exist inside the caller's
// tenant. Controllers map it to 404.
var ErrNotFound = errors.New("not found")

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// UpdateScheduleParams carries the PATCH semantics for schedules: nil
// means "leave unchanged". The window fields are nullable in the schema,
// so each carries a Clear flag to set it back to NULL; when a Clear flag
// is true the matching value pointer is ignored.
type UpdateScheduleParams struct {
	Name       *string
	LayoutID   *int
	Priority   *int
	StartDate  *time.Time
	EndDate    *time.Time
	StartTime  *string
	EndTime    *string
	DaysOfWeek *string
	IsActive   *bool

	ClearStartDate  bool
	ClearEndDate    bool
	ClearStartTime  bool
	ClearEndTime    bool
	ClearDaysOfWeek bool
}

type Store interface {
	// users & tenants
	CreateCustomer(name string) (int, error)
	CreateUser(customerID int, email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// sites
	CreateSite(customerID int, name, timeZone string, location *string) (model.Site, error)
	GetSiteByID(customerID, id int) (model.Site, error)
	ListSites(customerID int) ([]model.Site, error)
	UpdateSite(customerID, id int, name, timeZone, location *string) error
	DeleteSite(customerID, id int) error
	GetSiteTimeZone(siteID int) (string, error)

	// players
	CreatePlayer(customerID, siteID int, name string) (model.Player, error)
	GetPlayerByID(customerID, id int) (model.Player, error)
	GetPlayerByDeviceID(deviceID string) (model.Player, error)
	GetPlayerForAuth(id int) (model.Player, error)
	ListPlayersBySite(customerID, siteID int) ([]model.Player, error)
	UpdatePlayer(customerID, id int, name *string, siteID *int) error
	DeletePlayer(customerID, id int) error
	PairPlayer(customerID, id int, deviceID string) error

	// layouts
	CreateLayout(customerID int, name string, width, height int, background string, createdBy int) (model.Layout, error)
	GetLayoutByID(customerID, id int) (model.Layout, error)
	ListLayouts(customerID int) ([]model.Layout, error)
	UpdateLayout(customerID, id int, name *string, width, height *int, background *string) error
	DeleteLayout(customerID, id int) error

	// media
	CreateMedia(customerID int, name, mediaType, url string, createdBy int) (model.Media, error)
	GetMediaByID(customerID, id int) (model.Media, error)
	ListMedia(customerID int) ([]model.Media, error)
	DeleteMedia(customerID, id int) error

	// schedules & assignments
	CreateSchedule(s model.Schedule) (model.Schedule, error)
	GetScheduleByID(customerID, id int) (model.Schedule, error)
	ListSchedules(customerID int) ([]model.Schedule, error)
	UpdateSchedule(customerID, id int, p UpdateScheduleParams) error
	DeleteSchedule(customerID, id int) error
	CreateAssignment(a model.ScheduleAssignment) (model.ScheduleAssignment, error)
	DeleteAssignment(customerID, scheduleID, assignmentID int) error
	ListActiveSchedulesForPlayer(customerID, siteID, playerID int) ([]model.Schedule, error)
	ListPlayerDeviceIDsForSchedule(scheduleID int) ([]string, error)

	// proof of play
	CreatePlaybackEvent(e model.PlaybackEvent) error
	ListPlaybackEvents(customerID int, playerID, scheduleID *int, from, to *time.Time) ([]model.PlaybackEvent, error)

	// webhooks
	CreateWebhook(customerID int, url, secret string, events []string) (model.Webhook, error)
	ListWebhooks(customerID int) ([]model.Webhook, error)
	DeleteWebhook(customerID, id int) error
	ListWebhooksForEvent(customerID int, event string) ([]model.Webhook, error)
}

type pgStore struct {
	db *sqlx.DB
}

var _ Store = (*pgStore)(nil)

// NewStore wraps an open sqlx handle. The handle's lifecycle (open at boot,
// close at shutdown) belongs to the caller.
func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
