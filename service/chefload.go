package service

import (
	"time"

	"gorm.io/gorm"

	"restro/model"
)

// activeOrders returns every order still in flight with a chef attached.
func activeOrders(db *gorm.DB) ([]model.Order, error) {
	var orders []model.Order
	err := db.
		Where("status IN ? AND chef_id <> 0", []model.OrderStatus{model.StatusPending, model.StatusInProgress}).
		Find(&orders).Error
	return orders, err
}

// busyChefIDs derives the set of chefs referenced by any active order.
func busyChefIDs(orders []model.Order) map[uint]bool {
	busy := make(map[uint]bool, len(orders))
	for _, o := range orders {
		busy[o.ChefID] = true
	}
	return busy
}

// estimatedFreeAt projects, per busy chef, when their queue drains: the
// latest completion time over their active orders. Orders without a
// stored completion fall back to assignedAt + preparation time; orders
// with neither are skipped.
func estimatedFreeAt(orders []model.Order) map[uint]time.Time {
	freeAt := make(map[uint]time.Time)
	for _, o := range orders {
		completion := o.CompletedAt
		if completion == nil && o.AssignedAt != nil {
			t := o.AssignedAt.Add(time.Duration(o.TotalPreparationTime) * time.Minute)
			completion = &t
		}
		if completion == nil {
			continue
		}
		if existing, ok := freeAt[o.ChefID]; !ok || completion.After(existing) {
			freeAt[o.ChefID] = *completion
		}
	}
	return freeAt
}

// orderCountToday counts a chef's orders created today, used as the
// load tiebreaker among idle chefs.
func orderCountToday(db *gorm.DB, chefID uint, now time.Time) (int64, error) {
	start, end := dayRange(now)
	var count int64
	err := db.Model(&model.Order{}).
		Where("chef_id = ? AND created_at >= ? AND created_at < ?", chefID, start, end).
		Count(&count).Error
	return count, err
}
