package packets

// RegisterPairingRequest carries the code the device is showing on
// screen alongside its hardware identity.
type RegisterPairingRequest struct {
	DeviceID    string `json:"device_id" binding:"required"`
	PairingCode string `json:"code"      binding:"required"`
}

type TokenRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
}

type PlaybackEventRequest struct {
	ScheduleID  *int   `json:"schedule_id"`
	LayoutID    int    `json:"layout_id"    binding:"required"`
	StartedAt   string `json:"started_at"   binding:"required"`
	DurationSec int    `json:"duration_sec" binding:"required,gt=0"`
}
