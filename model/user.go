package model

import "gorm.io/gorm"

type UserRole string

const (
	Manager UserRole = "manager"
)

// User is a back-office account (restaurant manager).
type User struct {
	gorm.Model
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Email        string   `json:"email" gorm:"uniqueIndex"`
	Contact      string   `json:"contact"`
	Role         UserRole `json:"role"`
	Password     string   `json:"password"`
	RefreshToken string   `json:"refresh_token"`
}
