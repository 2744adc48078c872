package models

import "time"

type WaitlistEntry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	Status    string    `gorm:"type:varchar(20);default:pending;index" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist"
}

const (
	WaitlistStatusPending  = "pending"
	WaitlistStatusApproved = "approved"
	WaitlistStatusRejected = "rejected"
)
