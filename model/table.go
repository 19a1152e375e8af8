package model

import (
	"time"

	"gorm.io/gorm"
)

// TableRoster is the set of physical tables for a single calendar day.
// Date is truncated to midnight and unique, so there is at most one
// roster per day; a new day starts from a fresh roster.
type TableRoster struct {
	gorm.Model
	Date  time.Time   `json:"date" gorm:"uniqueIndex"`
	Slots []TableSlot `json:"slots" gorm:"foreignKey:RosterID"`
}

// TableSlot is one physical table within a day's roster. TableNo values
// are unique within the roster and kept contiguous 1..N; removing a
// slot renumbers the remainder, so table numbers are positional rather
// than stable identifiers.
type TableSlot struct {
	gorm.Model
	RosterID    uint   `json:"roster_id" gorm:"index"`
	TableName   string `json:"table_name"`
	TableNo     int    `json:"table_no"`
	TotalChairs int    `json:"total_chairs"`
	IsAvailable bool   `json:"is_available"`
}
