package models

import "time"

// BirthProfile is a stored birth record owned by a user. BirthTime,
// BirthPlace and Timezone are only forwarded to the ephemeris service;
// the timeline generators use the date alone.
type BirthProfile struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	BirthDate  string    `json:"birth_date"`           // YYYY-MM-DD
	BirthTime  string    `json:"birth_time,omitempty"` // HH:MM, optional
	BirthPlace string    `json:"birth_place,omitempty"`
	Timezone   string    `json:"timezone,omitempty"` // IANA name
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Reading is a saved snapshot of a computed analysis plus a user note.
type Reading struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	ProfileID     string    `json:"profile_id"`
	SunSign       string    `json:"sun_sign"`
	LifePath      int       `json:"life_path"`
	ChineseZodiac string    `json:"chinese_zodiac"`
	Note          string    `json:"note,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
