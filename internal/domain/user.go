package domain

import "time"

// CachedUser is the last-known-user blob kept in the local store so the app
// can open to a PIN unlock instead of a full re-authentication.
type CachedUser struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PINHash      string    `json:"pin_hash"`
	RefreshToken string    `json:"refresh_token"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Schedule is one planned trip assignment fetched from the backend.
type Schedule struct {
	ID          string
	UserID      string
	RouteName   string
	TruckNumber string
	StartTime   time.Time
	EndTime     time.Time
	Status      ScheduleStatus
}
