package auth

import "time"

// StaffUser is an account allowed through the staff gate. The public never
// registers; accounts are provisioned by the seed command or by hand.
type StaffUser struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Username     string    `gorm:"column:username;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Role         string    `gorm:"column:role" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (StaffUser) TableName() string { return "staff_users" }

const DefaultRole = "staff"
