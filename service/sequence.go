package service

import (
	"errors"

	"gorm.io/gorm"

	"restro/model"
)

// Human-facing order numbers start at 100.
const firstOrderNumber = 100

// nextOrderNumber returns one past the highest order number handed out
// so far. The number is only provisional: the unique index on
// order_number is what actually enforces no duplicates, and the insert
// in CreateOrder retries with a fresh number when two bookings race to
// the same value.
func nextOrderNumber(db *gorm.DB) (int, error) {
	var last model.Order
	err := db.Unscoped().Select("order_number").Order("order_number desc").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return firstOrderNumber, nil
	}
	if err != nil {
		return 0, err
	}
	return last.OrderNumber + 1, nil
}
