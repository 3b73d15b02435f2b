package models

import (
	"gorm.io/gorm"
)

// User is an account that owns events.
type User struct {
	gorm.Model
	FirstName    string `gorm:"not null" json:"first_name"`
	LastName     string `gorm:"not null" json:"last_name"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Password     string `gorm:"-" json:"password,omitempty"`
}

func (user *User) ToUserResponse() *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}
