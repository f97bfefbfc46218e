package domain

import "time"

// ListeningEvent is one record of a user playing a track. Events are
// immutable after creation; CreatedAt/UpdatedAt are owned by the store.
type ListeningEvent struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	TrackID   string    `json:"trackId"`
	Artist    string    `json:"artist"`
	Genre     string    `json:"genre,omitempty"`
	Country   string    `json:"country,omitempty"`
	Device    string    `json:"device,omitempty"`
	Duration  int       `json:"duration"` // seconds
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Day returns the event's calendar day truncated to midnight UTC.
func (e ListeningEvent) Day() time.Time {
	return DayOf(e.Timestamp)
}

// DayOf truncates an instant to midnight UTC.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
