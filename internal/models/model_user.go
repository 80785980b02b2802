package models

import "time"

// User is an account holder. PasswordHash is a bcrypt hash and is never
// serialized.
type User struct {
	ID           string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "app_user"
}
