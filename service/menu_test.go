package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restro/model"
)

func createCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	category := model.Category{Name: name, Icon: name + ".svg"}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func TestMenuListing(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenu(db)

	_, err := svc.Listing()
	assert.Equal(t, KindNotFound, KindOf(err), "empty menu reads as not found")

	pizzas := createCategory(t, db, "Pizzas")
	item := createMenuItem(t, db, "Marinara", 90, 4.5, 15)
	require.NoError(t, db.Model(item).Update("category_id", pizzas.ID).Error)

	listing, err := svc.Listing()
	require.NoError(t, err)
	require.Len(t, listing.Category, 1)
	require.Len(t, listing.Menu, 1)
	assert.Equal(t, "Pizzas", listing.Category[0].Title)
	assert.Equal(t, "Marinara", listing.Menu[0].Title)
	assert.Equal(t, 90.0, listing.Menu[0].Price)
	assert.Equal(t, pizzas.ID, listing.Menu[0].CategoryID)
}

func TestDeleteMenuItemCascadesToOrders(t *testing.T) {
	db := newTestDB(t)
	b := newTestBooking(db, newTestClock())
	svc := NewMenu(db)

	createChef(t, db, "Ana", false)
	tea := createMenuItem(t, db, "Lemon Iced Tea", 60, 3, 3)
	pizza := createMenuItem(t, db, "Marinara", 90, 4.5, 15)

	doomed, err := b.CreateOrder(CreateOrderInput{
		ClientName:  "Maya",
		ClientPhone: "555-0101",
		OrderType:   model.DineIn,
		Items:       []OrderItemInput{{MenuItemID: tea.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	kept, err := b.CreateOrder(CreateOrderInput{
		ClientName:  "Theo",
		ClientPhone: "555-0202",
		OrderType:   model.DineIn,
		Items:       []OrderItemInput{{MenuItemID: pizza.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(tea.ID))

	var gone model.Order
	err = db.First(&gone, doomed.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var lines int64
	require.NoError(t, db.Model(&model.OrderItem{}).
		Where("order_id = ?", doomed.ID).
		Count(&lines).Error)
	assert.Zero(t, lines)

	var slot model.TableSlot
	require.NoError(t, db.First(&slot, doomed.SlotID).Error)
	assert.True(t, slot.IsAvailable, "table held by the removed order must be released")

	var survivor model.Order
	require.NoError(t, db.First(&survivor, kept.ID).Error)
	assert.Equal(t, kept.OrderNumber, survivor.OrderNumber)

	assert.Equal(t, KindNotFound, KindOf(svc.DeleteItem(tea.ID)))
}

func TestDeleteCategoryMovesItemsToFallback(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenu(db)

	drinks := createCategory(t, db, "Drinks")
	tea := createMenuItem(t, db, "Lemon Iced Tea", 60, 3, 3)
	require.NoError(t, db.Model(tea).Update("category_id", drinks.ID).Error)

	require.NoError(t, svc.DeleteCategory(drinks.ID))

	var fallback model.Category
	require.NoError(t, db.Where("name = ?", model.UncategorizedName).First(&fallback).Error)

	var moved model.MenuItem
	require.NoError(t, db.First(&moved, tea.ID).Error)
	assert.Equal(t, fallback.ID, moved.CategoryID)

	assert.Equal(t, KindConflict, KindOf(svc.DeleteCategory(fallback.ID)),
		"the fallback itself is permanent")
	assert.Equal(t, KindNotFound, KindOf(svc.DeleteCategory(drinks.ID)))
}
