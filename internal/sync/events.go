package sync

import "time"

// ProfileEvent announces a birth-profile change to timeline viewers.
// Type is "profile.update" or "profile.delete".
type ProfileEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	ProfileID string    `json:"profile_id"`
	BirthDate string    `json:"birth_date,omitempty"`
	At        time.Time `json:"at"`
}

// ReadingEvent announces a saved or removed reading.
// Type is "reading.save" or "reading.delete".
type ReadingEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	ReadingID int64     `json:"reading_id"`
	ProfileID string    `json:"profile_id,omitempty"`
	SunSign   string    `json:"sun_sign,omitempty"`
	At        time.Time `json:"at"`
}
