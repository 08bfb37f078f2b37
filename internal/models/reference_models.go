package models

import "time"

// DefaultFreezeMaxDays applies when freeze settings are created without maxDays.
const DefaultFreezeMaxDays = 30

// Period is a subscription option. Value is unique and is what clients store
// in subscription_period.
type Period struct {
	ID        int64     `json:"id" db:"id"`
	Label     string    `json:"label" db:"label"`
	Value     string    `json:"value" db:"value"`
	Months    int       `json:"months" db:"months"`
	Price     float64   `json:"price" db:"price"`
	Trainings int       `json:"trainings" db:"trainings"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Payment is a payment method. Banks is stored as encoded JSON text.
type Payment struct {
	ID        int64      `json:"id" db:"id"`
	Label     string     `json:"label" db:"label"`
	Value     string     `json:"value" db:"value"`
	Type      *string    `json:"type" db:"type"`
	Banks     StringList `json:"banks" db:"banks"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// FreezeSettings controls how a subscription can be paused.
type FreezeSettings struct {
	ID             int64      `json:"id" db:"id"`
	MaxDays        int        `json:"maxDays" db:"max_days"`
	Reasons        StringList `json:"reasons" db:"reasons"`
	RequireConfirm bool       `json:"requireConfirm" db:"require_confirm"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}
