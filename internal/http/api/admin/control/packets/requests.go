package packets

// sites

type CreateSiteRequest struct {
	Name     string  `json:"name" binding:"required"`
	TimeZone string  `json:"time_zone" binding:"required"`
	Location *string `json:"location"`
}

type UpdateSiteRequest struct {
	Name     *string `json:"name"`
	TimeZone *string `json:"time_zone"`
	Location *string `json:"location"`
}

// players

type CreatePlayerRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdatePlayerRequest struct {
	Name   *string `json:"name"`
	SiteID *int    `json:"site_id"`
}

type PairPlayerRequest struct {
	PairingCode string `json:"code" binding:"required"`
}

// layouts

type CreateLayoutRequest struct {
	Name            string `json:"name" binding:"required"`
	Width           int    `json:"width" binding:"required,min=1"`
	Height          int    `json:"height" binding:"required,min=1"`
	BackgroundColor string `json:"background_color"`
}

type UpdateLayoutRequest struct {
	Name            *string `json:"name"`
	Width           *int    `json:"width"`
	Height          *int    `json:"height"`
	BackgroundColor *string `json:"background_color"`
}

// schedules; dates are "2006-01-02", times "15:04:05", days "Mon".."Sun"

type CreateScheduleRequest struct {
	Name       string   `json:"name" binding:"required"`
	LayoutID   int      `json:"layout_id" binding:"required"`
	Priority   *int     `json:"priority"`
	StartDate  *string  `json:"start_date"`
	EndDate    *string  `json:"end_date"`
	StartTime  *string  `json:"start_time"`
	EndTime    *string  `json:"end_time"`
	DaysOfWeek []string `json:"days_of_week"`
	IsActive   *bool    `json:"is_active"`
}

// UpdateScheduleRequest patches a schedule. Window fields distinguish
// absent (unchanged) from empty ("" or [] clears the bound back to
// unbounded) from a concrete value.
type UpdateScheduleRequest struct {
	Name       *string   `json:"name"`
	LayoutID   *int      `json:"layout_id"`
	Priority   *int      `json:"priority"`
	StartDate  *string   `json:"start_date"`
	EndDate    *string   `json:"end_date"`
	StartTime  *string   `json:"start_time"`
	EndTime    *string   `json:"end_time"`
	DaysOfWeek *[]string `json:"days_of_week"`
	IsActive   *bool     `json:"is_active"`
}

type CreateAssignmentRequest struct {
	Type             string `json:"assignment_type" binding:"required,oneof=customer site player"`
	TargetCustomerID *int   `json:"target_customer_id"`
	TargetSiteID     *int   `json:"target_site_id"`
	TargetPlayerID   *int   `json:"target_player_id"`
}

// webhooks

type CreateWebhookRequest struct {
	URL    string   `json:"url" binding:"required,url"`
	Secret string   `json:"secret" binding:"required,min=16"`
	Events []string `json:"events" binding:"required,min=1"`
}

// analytics

type PlaybackQuery struct {
	PlayerID   *int    `form:"player_id"`
	ScheduleID *int    `form:"schedule_id"`
	From       *string `form:"from"` // RFC3339
	To         *string `form:"to"`
}
