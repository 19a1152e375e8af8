package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restro/model"
)

func TestGetOrCreateTodayDefaults(t *testing.T) {
	db := newTestDB(t)
	roster := newTestRoster(db, newTestClock())

	today, err := roster.GetOrCreateToday()
	require.NoError(t, err)
	require.Len(t, today.Slots, 10)

	for i, slot := range today.Slots {
		assert.Equal(t, i+1, slot.TableNo)
		assert.Equal(t, "Table", slot.TableName)
		assert.Equal(t, 5, slot.TotalChairs)
		assert.True(t, slot.IsAvailable)
	}

	again, err := roster.GetOrCreateToday()
	require.NoError(t, err)
	assert.Equal(t, today.ID, again.ID, "second call must reuse the day's roster")
}

func TestAddSlot(t *testing.T) {
	db := newTestDB(t)
	roster := newTestRoster(db, newTestClock())

	_, err := roster.GetOrCreateToday()
	require.NoError(t, err)

	slot, err := roster.AddSlot("Patio", 11, 4)
	require.NoError(t, err)
	assert.Equal(t, 11, slot.TableNo)
	assert.True(t, slot.IsAvailable)

	_, err = roster.AddSlot("", 5, 4)
	assert.Equal(t, KindConflict, KindOf(err), "duplicate table number must conflict")

	_, err = roster.AddSlot("", 0, 4)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestUpdateSlot(t *testing.T) {
	db := newTestDB(t)
	roster := newTestRoster(db, newTestClock())

	today, err := roster.GetOrCreateToday()
	require.NoError(t, err)
	target := today.Slots[0]

	require.NoError(t, roster.UpdateSlot(target.ID, "Window", 12, 6))

	var updated model.TableSlot
	require.NoError(t, db.First(&updated, target.ID).Error)
	assert.Equal(t, "Window", updated.TableName)
	assert.Equal(t, 12, updated.TableNo)
	assert.Equal(t, 6, updated.TotalChairs)

	err = roster.UpdateSlot(target.ID, "Window", 2, 6)
	assert.Equal(t, KindConflict, KindOf(err), "renumbering onto slot 2 must conflict")

	err = roster.UpdateSlot(99999, "Window", 3, 6)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestRemoveSlotRenumbers(t *testing.T) {
	db := newTestDB(t)
	roster := newTestRoster(db, newTestClock())

	today, err := roster.GetOrCreateToday()
	require.NoError(t, err)

	require.NoError(t, roster.RemoveSlot(today.Slots[2].ID)) // table 3
	require.NoError(t, roster.RemoveSlot(today.Slots[6].ID)) // table 7

	var remaining []model.TableSlot
	require.NoError(t, db.Where("roster_id = ?", today.ID).Order("table_no asc").Find(&remaining).Error)
	require.Len(t, remaining, 8)
	for i, slot := range remaining {
		assert.Equal(t, i+1, slot.TableNo, "numbers must be contiguous after delete")
	}

	err = roster.RemoveSlot(99999)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestRemoveSlotDropsItsOrders(t *testing.T) {
	db := newTestDB(t)
	clock := newTestClock()
	roster := newTestRoster(db, clock)

	today, err := roster.GetOrCreateToday()
	require.NoError(t, err)
	slot := today.Slots[0]

	chef := createChef(t, db, "Ana", false)
	order := model.Order{
		OrderNumber: 100,
		OrderType:   model.DineIn,
		Status:      model.StatusInProgress,
		ChefID:      chef.ID,
		RosterID:    today.ID,
		SlotID:      slot.ID,
		Items:       []model.OrderItem{{MenuItemID: 1, Quantity: 1}},
	}
	require.NoError(t, db.Create(&order).Error)

	require.NoError(t, roster.RemoveSlot(slot.ID))

	var orders int64
	require.NoError(t, db.Model(&model.Order{}).Where("slot_id = ?", slot.ID).Count(&orders).Error)
	assert.Zero(t, orders)
	var items int64
	require.NoError(t, db.Model(&model.OrderItem{}).Where("order_id = ?", order.ID).Count(&items).Error)
	assert.Zero(t, items)
}

func TestReserveFirstAvailable(t *testing.T) {
	db := newTestDB(t)
	roster := newTestRoster(db, newTestClock())

	today, err := roster.GetOrCreateToday()
	require.NoError(t, err)

	first, err := roster.ReserveFirstAvailable(today.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.TableNo, "lowest-numbered free slot goes first")
	assert.False(t, first.IsAvailable)

	second, err := roster.ReserveFirstAvailable(today.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.TableNo)
}

func TestReserveFirstAvailableConcurrent(t *testing.T) {
	db := newTestDB(t)
	roster := newTestRoster(db, newTestClock())

	today, err := roster.GetOrCreateToday()
	require.NoError(t, err)

	const n = 10
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		slots []uint
		errs  []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slot, err := roster.ReserveFirstAvailable(today.ID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			slots = append(slots, slot.ID)
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, slots, n)

	seen := make(map[uint]bool, n)
	for _, id := range slots {
		assert.False(t, seen[id], "slot %d reserved twice", id)
		seen[id] = true
	}

	var available int64
	require.NoError(t, db.Model(&model.TableSlot{}).
		Where("roster_id = ? AND is_available = ?", today.ID, true).
		Count(&available).Error)
	assert.Zero(t, available)

	_, err = roster.ReserveFirstAvailable(today.ID)
	assert.Equal(t, KindConflict, KindOf(err), "full roster must refuse further reservations")
}

func TestRelease(t *testing.T) {
	db := newTestDB(t)
	roster := newTestRoster(db, newTestClock())

	today, err := roster.GetOrCreateToday()
	require.NoError(t, err)

	slot, err := roster.ReserveFirstAvailable(today.ID)
	require.NoError(t, err)

	require.NoError(t, roster.Release(slot.ID))

	var released model.TableSlot
	require.NoError(t, db.First(&released, slot.ID).Error)
	assert.True(t, released.IsAvailable)

	// A slot from a past day's roster may be gone entirely.
	assert.NoError(t, roster.Release(99999))
}
