package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"restro/model"
)

const (
	defaultSlotCount  = 10
	defaultSlotName   = "Table"
	defaultChairCount = 5
)

// Roster manages the per-day set of table slots. The roster row for a
// day is looked up by its date each time rather than cached, so every
// caller sees the same document; the unique index on the date column is
// what prevents two rosters for one day under concurrent creation.
type Roster struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRoster(db *gorm.DB) *Roster {
	return &Roster{db: db, now: time.Now}
}

func dayRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// GetOrCreateToday returns today's roster, creating it with the default
// slots on first use. Safe under concurrent callers: a duplicate-key
// failure on create means another request won the race, in which case
// the winner's roster is re-queried and returned.
func (r *Roster) GetOrCreateToday() (*model.TableRoster, error) {
	start, end := dayRange(r.now())

	roster, err := r.findByDate(start, end)
	if err == nil {
		return roster, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := model.TableRoster{Date: start}
	for i := 1; i <= defaultSlotCount; i++ {
		fresh.Slots = append(fresh.Slots, model.TableSlot{
			TableName:   defaultSlotName,
			TableNo:     i,
			TotalChairs: defaultChairCount,
			IsAvailable: true,
		})
	}

	if err := r.db.Create(&fresh).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.findByDate(start, end)
		}
		return nil, err
	}
	return &fresh, nil
}

func (r *Roster) findByDate(start, end time.Time) (*model.TableRoster, error) {
	var roster model.TableRoster
	err := r.db.
		Preload("Slots", func(db *gorm.DB) *gorm.DB { return db.Order("table_no asc") }).
		Where("date >= ? AND date < ?", start, end).
		First(&roster).Error
	if err != nil {
		return nil, err
	}
	return &roster, nil
}

// AddSlot appends a new table to today's roster. The table number must
// not collide with an existing slot.
func (r *Roster) AddSlot(name string, number, chairs int) (*model.TableSlot, error) {
	if number <= 0 || chairs <= 0 {
		return nil, invalidf("table number and chair count are required")
	}
	if name == "" {
		name = defaultSlotName
	}

	roster, err := r.GetOrCreateToday()
	if err != nil {
		return nil, err
	}
	for _, s := range roster.Slots {
		if s.TableNo == number {
			return nil, conflictf("table number already in use")
		}
	}

	slot := model.TableSlot{
		RosterID:    roster.ID,
		TableName:   name,
		TableNo:     number,
		TotalChairs: chairs,
		IsAvailable: true,
	}
	if err := r.db.Create(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// UpdateSlot changes a slot's name, number, or chair count. Renumbering
// onto another slot's number is a conflict.
func (r *Roster) UpdateSlot(slotID uint, name string, number, chairs int) error {
	if number <= 0 || chairs <= 0 {
		return invalidf("table number and chair count are required")
	}
	if name == "" {
		name = defaultSlotName
	}

	var slot model.TableSlot
	if err := r.db.First(&slot, slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("table not found")
		}
		return err
	}

	if slot.TableNo != number {
		var count int64
		err := r.db.Model(&model.TableSlot{}).
			Where("roster_id = ? AND table_no = ? AND id <> ?", slot.RosterID, number, slot.ID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return conflictf("table number already in use")
		}
	}

	slot.TableName = name
	slot.TableNo = number
	slot.TotalChairs = chairs
	return r.db.Save(&slot).Error
}

// RemoveSlot deletes a slot, drops any orders that reference it, and
// renumbers the remaining slots back to a contiguous 1..N in their
// current order. Callers must not hold on to table numbers across a
// delete.
func (r *Roster) RemoveSlot(slotID uint) error {
	var slot model.TableSlot
	if err := r.db.First(&slot, slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("table not found")
		}
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var orderIDs []uint
		if err := tx.Model(&model.Order{}).Where("slot_id = ?", slot.ID).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&model.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", orderIDs).Delete(&model.Order{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&slot).Error; err != nil {
			return err
		}

		var remaining []model.TableSlot
		if err := tx.Where("roster_id = ?", slot.RosterID).Order("table_no asc").Find(&remaining).Error; err != nil {
			return err
		}
		for i := range remaining {
			if remaining[i].TableNo == i+1 {
				continue
			}
			err := tx.Model(&remaining[i]).Update("table_no", i+1).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ReserveFirstAvailable books the lowest-numbered free slot of the
// roster. The flip from available to booked is a single conditional
// update checked by rows affected, so two concurrent reservations can
// never both claim the same slot; a loser simply moves on to the next
// candidate.
func (r *Roster) ReserveFirstAvailable(rosterID uint) (*model.TableSlot, error) {
	var slots []model.TableSlot
	err := r.db.Where("roster_id = ?", rosterID).Order("table_no asc").Find(&slots).Error
	if err != nil {
		return nil, err
	}

	for i := range slots {
		if !slots[i].IsAvailable {
			continue
		}
		res := r.db.Model(&model.TableSlot{}).
			Where("id = ? AND is_available = ?", slots[i].ID, true).
			Update("is_available", false)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 1 {
			slots[i].IsAvailable = false
			return &slots[i], nil
		}
	}
	return nil, conflictf("no empty tables found")
}

// Release marks a slot available again. A slot that no longer exists is
// ignored; the roster may belong to a past day.
func (r *Roster) Release(slotID uint) error {
	return r.db.Model(&model.TableSlot{}).
		Where("id = ?", slotID).
		Update("is_available", true).Error
}
