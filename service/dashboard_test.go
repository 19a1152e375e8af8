package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restro/model"
)

func insertOrderAt(t *testing.T, db *gorm.DB, createdAt time.Time, orderType model.OrderType, status model.OrderStatus, grandTotal float64, number int) {
	t.Helper()
	order := model.Order{
		OrderNumber: number,
		OrderType:   orderType,
		Status:      status,
		GrandTotal:  grandTotal,
	}
	order.CreatedAt = createdAt
	require.NoError(t, db.Create(&order).Error)
}

func TestDashboardCollect(t *testing.T) {
	db := newTestDB(t)
	clock := newTestClock()
	d := NewDashboard(db)
	d.now = clock.Now
	d.roster.now = clock.Now

	createChef(t, db, "Ana", true)
	createChef(t, db, "Bo", false)
	require.NoError(t, db.Create(&model.Client{PersonName: "Maya", PersonNumber: "555-0101"}).Error)

	today := clock.Now()
	insertOrderAt(t, db, today.Add(-time.Hour), model.DineIn, model.StatusCompleted, 100, 100)
	insertOrderAt(t, db, today.Add(-2*time.Hour), model.TakeAway, model.StatusInProgress, 50, 101)
	insertOrderAt(t, db, today.AddDate(0, 0, -3), model.DineIn, model.StatusCompleted, 200, 102)
	insertOrderAt(t, db, today.AddDate(0, 0, -20), model.DineIn, model.StatusCompleted, 400, 103)

	out, err := d.Collect()
	require.NoError(t, err)

	assert.EqualValues(t, 2, out.TotalChef)
	assert.EqualValues(t, 4, out.TotalOrder)
	assert.EqualValues(t, 1, out.TotalClient)
	assert.Equal(t, 750.0, out.TotalRevenue)
	assert.Len(t, out.TableData, defaultSlotCount)
	assert.Len(t, out.ChefList, 2)

	assert.EqualValues(t, 1, out.OrderSummary.Daily.DineIn)
	assert.EqualValues(t, 1, out.OrderSummary.Daily.TakeAway)
	assert.EqualValues(t, 1, out.OrderSummary.Daily.Completed)
	assert.EqualValues(t, 2, out.OrderSummary.Weekly.DineIn)
	assert.EqualValues(t, 3, out.OrderSummary.Yearly.DineIn)

	require.Len(t, out.RevenueSummary.Daily, 7)
	assert.Equal(t, 150.0, out.RevenueSummary.Daily[today.Format("Mon")])
	assert.Equal(t, 200.0, out.RevenueSummary.Daily[today.AddDate(0, 0, -3).Format("Mon")])

	require.Len(t, out.RevenueSummary.Weekly, 4)
	assert.Equal(t, 350.0, out.RevenueSummary.Weekly["Week 1"])
	assert.Equal(t, 400.0, out.RevenueSummary.Weekly["Week 3"])
}
