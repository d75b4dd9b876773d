package packets

import "time"

type RegisterPairingResponse struct {
	DeviceID  string `json:"device_id"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// CurrentLayoutResponse carries the resolution outcome. Nil ids mean
// nothing is scheduled and the device should show its idle screen.
type CurrentLayoutResponse struct {
	ScheduleID  *int      `json:"schedule_id"`
	LayoutID    *int      `json:"layout_id"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}
