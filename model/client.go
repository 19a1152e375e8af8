package model

import "gorm.io/gorm"

// Client is a customer, looked up or created by phone number at booking time.
type Client struct {
	gorm.Model
	PersonName   string `json:"person_name"`
	PersonNumber string `json:"person_number" gorm:"index"`
}
