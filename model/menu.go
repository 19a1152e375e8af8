package model

import "gorm.io/gorm"

// MenuItem is a dish on the menu. PreparationTime is in minutes and
// feeds the order engine's completion estimates.
type MenuItem struct {
	gorm.Model
	ItemName        string  `json:"item_name"`
	ItemPrice       float64 `json:"item_price"`
	ItemImage       string  `json:"item_image"`
	Description     string  `json:"description"`
	PreparationTime int     `json:"preparation_time"`
	Tax             float64 `json:"tax"`
	CategoryID      uint    `json:"category_id"`
}
