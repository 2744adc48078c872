package models

import "time"

type Subscription struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	PlanID        uint       `gorm:"not null;index" json:"plan_id"`
	Status        string     `gorm:"type:varchar(20);default:pending;index" json:"status"`
	StartDate     time.Time  `gorm:"not null" json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	LastPaymentID *uint      `json:"last_payment_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Plan     Plan      `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	Payments []Payment `gorm:"foreignKey:SubscriptionID" json:"payments,omitempty"`
}

const (
	SubscriptionStatusPending  = "pending"
	SubscriptionStatusActive   = "active"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusExpired  = "expired"
)

type Payment struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	SubscriptionID uint       `gorm:"not null;index" json:"subscription_id"`
	Amount         int64      `gorm:"not null" json:"amount"`
	Method         string     `gorm:"type:varchar(20);default:pix" json:"method"`
	Status         string     `gorm:"type:varchar(20);default:pending;index" json:"status"`
	PixCode        string     `gorm:"type:varchar(100)" json:"pix_code"`
	PixExpiresAt   *time.Time `json:"pix_expires_at"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)
