package model

import "gorm.io/gorm"

// Chef is a kitchen worker. Admin chefs are protected from deletion and
// act as the fallback owner when another chef is removed. Load is never
// stored here; it is derived from active orders.
type Chef struct {
	gorm.Model
	ChefName string `json:"chef_name" gorm:"uniqueIndex"`
	IsAdmin  bool   `json:"is_admin"`
}
