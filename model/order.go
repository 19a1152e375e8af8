package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderType string

const (
	DineIn   OrderType = "Dine-in"
	TakeAway OrderType = "Take-Away"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusInProgress OrderStatus = "In Progress"
	StatusReady      OrderStatus = "Ready"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"
)

// Order is a customer booking. It holds exactly one table slot and one
// chef for its active lifetime; the slot is released when the order
// reaches Completed. CompletedAt is the projected finish time
// (AssignedAt + TotalPreparationTime) and RemainingTime is refreshed
// opportunistically whenever orders are read.
type Order struct {
	gorm.Model
	ClientID             uint          `json:"client_id"`
	OrderNumber          int           `json:"order_number" gorm:"uniqueIndex"`
	Items                []OrderItem   `json:"items" gorm:"foreignKey:OrderID"`
	TotalPrice           float64       `json:"total_price"`
	DeliveryCharges      float64       `json:"delivery_charges"`
	GrandTotal           float64       `json:"grand_total"`
	Location             string        `json:"location"`
	Instructions         string        `json:"instructions"`
	OrderType            OrderType     `json:"order_type"`
	TotalPreparationTime int           `json:"total_preparation_time"` // minutes
	Status               OrderStatus   `json:"status" gorm:"index"`
	ChefID               uint          `json:"chef_id" gorm:"index"`
	RosterID             uint          `json:"roster_id"`
	SlotID               uint          `json:"slot_id" gorm:"index"`
	AssignedAt           *time.Time    `json:"assigned_at"`
	CompletedAt          *time.Time    `json:"completed_at"`
	RemainingTime        time.Duration `json:"remaining_time"`

	Client Client `json:"client" gorm:"foreignKey:ClientID"`
	Chef   Chef   `json:"chef" gorm:"foreignKey:ChefID"`
}

// OrderItem is one menu line within an order. The price and tax are
// copied from the menu item at booking time.
type OrderItem struct {
	gorm.Model
	OrderID      uint    `json:"order_id" gorm:"index"`
	MenuItemID   uint    `json:"menu_item_id" gorm:"index"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Tax          float64 `json:"tax"`
	Instructions string  `json:"instructions"`

	MenuItem MenuItem `json:"menu_item" gorm:"foreignKey:MenuItemID"`
}
