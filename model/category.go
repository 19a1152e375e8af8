package model

import "gorm.io/gorm"

// UncategorizedName is the fallback category that menu items are moved
// to when their own category is deleted.
const UncategorizedName = "Uncategorized"

type Category struct {
	gorm.Model
	Name string `json:"name"`
	Icon string `json:"icon"`
}
