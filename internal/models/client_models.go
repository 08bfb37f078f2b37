package models

import "time"

// DefaultClientStatus is assigned when a client is created without a status.
const DefaultClientStatus = "Active"

// Client represents a gym member. Trainer, Group, SubscriptionPeriod and
// PaymentMethod hold free-text references to other resources.
type Client struct {
	ID                 int64     `json:"id" db:"id"`
	ContractNumber     *string   `json:"contract_number" db:"contract_number"`
	Name               string    `json:"name" db:"name"`
	Surname            string    `json:"surname" db:"surname"`
	Phone              string    `json:"phone" db:"phone"`
	Address            *string   `json:"address" db:"address"`
	BirthDate          *string   `json:"birth_date" db:"birth_date"` // Stored as entered, usually YYYY-MM-DD
	StartDate          *string   `json:"start_date" db:"start_date"`
	EndDate            *string   `json:"end_date" db:"end_date"`
	SubscriptionPeriod *string   `json:"subscription_period" db:"subscription_period"`
	PaymentAmount      *string   `json:"payment_amount" db:"payment_amount"`
	PaymentMethod      *string   `json:"payment_method" db:"payment_method"`
	Group              *string   `json:"group" db:"group"`
	Comment            *string   `json:"comment" db:"comment"`
	Status             string    `json:"status" db:"status"`
	Paid               bool      `json:"paid" db:"paid"`
	TotalSessions      int       `json:"total_sessions" db:"total_sessions"`
	HasDiscount        bool      `json:"has_discount" db:"has_discount"`
	DiscountReason     *string   `json:"discount_reason" db:"discount_reason"`
	Deleted            bool      `json:"deleted" db:"deleted"` // Soft-delete marker, not filtered on reads
	Trainer            *string   `json:"trainer" db:"trainer"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
