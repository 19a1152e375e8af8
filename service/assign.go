package service

import (
	"time"

	"restro/model"
)

// assignment is the Assignment Policy's decision for a new order.
type assignment struct {
	ChefID     uint
	Status     model.OrderStatus
	AssignedAt time.Time
}

// assignChef picks a chef for a new order from a live scan of active
// orders. An idle chef with the fewest orders today starts the order
// immediately; if every chef is busy, the order is queued behind the
// chef whose queue drains soonest and starts the moment it does. The
// scan is best-effort load balancing: two concurrent bookings may pick
// the same chef, which is accepted. Table exclusivity is the hard
// guarantee, enforced separately by the roster.
func (b *Booking) assignChef(now time.Time) (*assignment, error) {
	var chefs []model.Chef
	if err := b.db.Order("id asc").Find(&chefs).Error; err != nil {
		return nil, err
	}
	if len(chefs) == 0 {
		return nil, unavailablef("no available chefs found")
	}

	active, err := activeOrders(b.db)
	if err != nil {
		return nil, err
	}
	busy := busyChefIDs(active)

	var idle []model.Chef
	for _, chef := range chefs {
		if !busy[chef.ID] {
			idle = append(idle, chef)
		}
	}

	if len(idle) > 0 {
		best := idle[0]
		bestCount, err := orderCountToday(b.db, best.ID, now)
		if err != nil {
			return nil, err
		}
		for _, chef := range idle[1:] {
			count, err := orderCountToday(b.db, chef.ID, now)
			if err != nil {
				return nil, err
			}
			if count < bestCount {
				best, bestCount = chef, count
			}
		}
		return &assignment{ChefID: best.ID, Status: model.StatusInProgress, AssignedAt: now}, nil
	}

	// Every chef is busy: queue behind the one finishing soonest.
	freeAt := estimatedFreeAt(active)
	var (
		soonestChef uint
		soonestAt   time.Time
	)
	for chefID, at := range freeAt {
		if soonestChef == 0 || at.Before(soonestAt) {
			soonestChef, soonestAt = chefID, at
		}
	}
	if soonestChef != 0 {
		return &assignment{ChefID: soonestChef, Status: model.StatusPending, AssignedAt: soonestAt}, nil
	}

	// Chefs exist but none has a resolvable completion time.
	return nil, unavailablef("no available chefs found")
}
