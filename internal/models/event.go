package models

import "time"

// RecordEvent is what gets published after a record is saved.
type RecordEvent struct {
	EventID string        `json:"eventId"`
	City    string        `json:"city"`
	SavedAt time.Time     `json:"savedAt"`
	Record  WeatherRecord `json:"record"`
}
