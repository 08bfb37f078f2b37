package models

import "time"

// Group is a training group with a weekly schedule.
type Group struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Days      *string   `json:"days" db:"days"` // Comma-joined weekdays
	TimeStart *string   `json:"time_start" db:"time_start"`
	TimeEnd   *string   `json:"time_end" db:"time_end"`
	Comment   *string   `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
