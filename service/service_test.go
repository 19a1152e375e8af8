package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restro/database"
	"restro/model"
)

// testClock is a controllable time source shared by the services under
// test; advancing it simulates the passage of wall-clock time.
type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}
}

func newTestRoster(db *gorm.DB, clock *testClock) *Roster {
	r := NewRoster(db)
	r.now = clock.Now
	return r
}

func newTestBooking(db *gorm.DB, clock *testClock) *Booking {
	b := NewBooking(db)
	b.now = clock.Now
	b.roster.now = clock.Now
	return b
}

func createChef(t *testing.T, db *gorm.DB, name string, isAdmin bool) *model.Chef {
	t.Helper()
	chef := model.Chef{ChefName: name, IsAdmin: isAdmin}
	require.NoError(t, db.Create(&chef).Error)
	return &chef
}

func createMenuItem(t *testing.T, db *gorm.DB, name string, price, tax float64, prepMinutes int) *model.MenuItem {
	t.Helper()
	item := model.MenuItem{ItemName: name, ItemPrice: price, Tax: tax, PreparationTime: prepMinutes}
	require.NoError(t, db.Create(&item).Error)
	return &item
}
