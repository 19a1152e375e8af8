package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restro/model"
)

func TestOrderNumbersStartAtHundred(t *testing.T) {
	db := newTestDB(t)

	number, err := nextOrderNumber(db)
	require.NoError(t, err)
	assert.Equal(t, 100, number)
}

func TestOrderNumbersFollowHighest(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&model.Order{OrderNumber: 105, OrderType: model.DineIn, Status: model.StatusCompleted}).Error)

	number, err := nextOrderNumber(db)
	require.NoError(t, err)
	assert.Equal(t, 106, number)
}

func TestOrderNumbersSurviveDeletedOrders(t *testing.T) {
	db := newTestDB(t)

	order := model.Order{OrderNumber: 120, OrderType: model.DineIn, Status: model.StatusCompleted}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Delete(&order).Error)

	number, err := nextOrderNumber(db)
	require.NoError(t, err)
	assert.Equal(t, 121, number, "numbers must stay monotonic across deletes")
}
