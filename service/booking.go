package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"restro/model"
)

const orderNumberAttempts = 5

// Booking is the order lifecycle engine. It owns order creation
// (consuming a table reservation and a chef assignment), the lazy
// time/status reconciliation, and manual completion. There is no
// background timer: derived time fields are refreshed whenever orders
// are read.
type Booking struct {
	db     *gorm.DB
	roster *Roster
	now    func() time.Time
}

func NewBooking(db *gorm.DB) *Booking {
	return &Booking{db: db, roster: NewRoster(db), now: time.Now}
}

type OrderItemInput struct {
	MenuItemID   uint   `json:"item_id"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions"`
}

type CreateOrderInput struct {
	ClientName      string          `json:"client_name"`
	ClientPhone     string          `json:"client_phone"`
	Items           []OrderItemInput `json:"items"`
	OrderType       model.OrderType `json:"order_type"`
	Location        string          `json:"location"`
	DeliveryCharges float64         `json:"delivery_charges"`
	Instructions    string          `json:"cooking_instructions"`
}

// CreateOrder books a table, assigns a chef, and persists the order.
// Prices, tax, and preparation times come from the menu, never from the
// caller. If the chef assignment fails after the table was reserved,
// the reservation is rolled back before the error is surfaced.
func (b *Booking) CreateOrder(in CreateOrderInput) (*model.Order, error) {
	if in.ClientName == "" || in.ClientPhone == "" || in.OrderType == "" {
		return nil, invalidf("please fill all the fields")
	}
	if in.OrderType != model.DineIn && in.OrderType != model.TakeAway {
		return nil, invalidf("invalid order type")
	}
	if in.OrderType == model.TakeAway && strings.TrimSpace(in.Location) == "" {
		return nil, invalidf("please enter a valid location")
	}
	if len(in.Items) == 0 {
		return nil, invalidf("please add at least one item")
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, invalidf("item quantity must be positive")
		}
	}

	client, err := b.findOrCreateClient(in.ClientName, in.ClientPhone)
	if err != nil {
		return nil, err
	}

	menuByID, err := b.menuByIDs(in.Items)
	if err != nil {
		return nil, err
	}

	totalPrep := 0
	subTotal := 0.0
	for _, item := range in.Items {
		menuItem := menuByID[item.MenuItemID]
		totalPrep += menuItem.PreparationTime * item.Quantity
		subTotal += menuItem.ItemPrice*float64(item.Quantity) + menuItem.Tax
	}

	grandTotal := subTotal
	if in.OrderType == model.TakeAway {
		grandTotal += in.DeliveryCharges
	}

	roster, err := b.roster.GetOrCreateToday()
	if err != nil {
		return nil, err
	}
	slot, err := b.roster.ReserveFirstAvailable(roster.ID)
	if err != nil {
		return nil, err
	}

	now := b.now()
	decision, err := b.assignChef(now)
	if err != nil {
		// Never leave a table booked for an order that was not placed.
		if relErr := b.roster.Release(slot.ID); relErr != nil {
			return nil, relErr
		}
		return nil, err
	}

	completedAt := decision.AssignedAt.Add(time.Duration(totalPrep) * time.Minute)
	remaining := completedAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	order := model.Order{
		ClientID:             client.ID,
		TotalPrice:           subTotal,
		DeliveryCharges:      in.DeliveryCharges,
		GrandTotal:           grandTotal,
		Location:             in.Location,
		Instructions:         in.Instructions,
		OrderType:            in.OrderType,
		TotalPreparationTime: totalPrep,
		Status:               decision.Status,
		ChefID:               decision.ChefID,
		RosterID:             roster.ID,
		SlotID:               slot.ID,
		AssignedAt:           &decision.AssignedAt,
		CompletedAt:          &completedAt,
		RemainingTime:        remaining,
	}
	for _, item := range in.Items {
		menuItem := menuByID[item.MenuItemID]
		order.Items = append(order.Items, model.OrderItem{
			MenuItemID:   item.MenuItemID,
			Price:        menuItem.ItemPrice,
			Quantity:     item.Quantity,
			Tax:          menuItem.Tax,
			Instructions: item.Instructions,
		})
	}

	if err := b.insertWithFreshNumber(&order); err != nil {
		if relErr := b.roster.Release(slot.ID); relErr != nil {
			return nil, relErr
		}
		return nil, err
	}
	return &order, nil
}

// insertWithFreshNumber allocates the next order number and inserts.
// Two concurrent bookings can read the same maximum, in which case the
// unique index rejects the loser and it retries with a new number.
func (b *Booking) insertWithFreshNumber(order *model.Order) error {
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number, err := nextOrderNumber(b.db)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		err = b.db.Create(order).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		order.ID = 0
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderID = 0
		}
	}
	return conflictf("could not allocate an order number, try again")
}

func (b *Booking) findOrCreateClient(name, phone string) (*model.Client, error) {
	var client model.Client
	err := b.db.Where("person_number = ?", phone).First(&client).Error
	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	client = model.Client{PersonName: name, PersonNumber: phone}
	if err := b.db.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (b *Booking) menuByIDs(items []OrderItemInput) (map[uint]model.MenuItem, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.MenuItemID)
	}

	var menuItems []model.MenuItem
	err := b.db.Select("id", "item_price", "tax", "preparation_time").Where("id IN ?", ids).Find(&menuItems).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]model.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}
	for _, item := range items {
		if _, ok := byID[item.MenuItemID]; !ok {
			return nil, notFoundf("menu item not found")
		}
	}
	return byID, nil
}

// Reconcile refreshes every active order's derived fields against the
// current time: remaining time is recomputed, a Pending order whose
// start moment has arrived is promoted to In Progress, and an order
// whose remaining time has run out is completed and its table released.
// Calling it again with no time elapsed changes nothing.
func (b *Booking) Reconcile() error {
	now := b.now()

	var orders []model.Order
	err := b.db.
		Where("status IN ? AND completed_at IS NOT NULL", []model.OrderStatus{model.StatusPending, model.StatusInProgress}).
		Find(&orders).Error
	if err != nil {
		return err
	}

	for i := range orders {
		order := &orders[i]
		changed := false

		remaining := order.CompletedAt.Sub(now)
		if remaining < 0 {
			remaining = 0
		}
		if remaining != order.RemainingTime {
			order.RemainingTime = remaining
			changed = true
		}

		// The chef's previous order has actually finished, so this one starts.
		if order.Status == model.StatusPending && order.AssignedAt != nil && !order.AssignedAt.After(now) {
			order.Status = model.StatusInProgress
			changed = true
		}

		if remaining <= 0 && order.Status != model.StatusCompleted {
			order.Status = model.StatusCompleted
			if err := b.roster.Release(order.SlotID); err != nil {
				return err
			}
			changed = true
		}

		if changed {
			if err := b.db.Save(order).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// CompleteOrder forces an order to Completed regardless of remaining
// time, releases its table, and reconciles so a Pending order queued on
// the freed chef can start. Completing an already-terminal order leaves
// its slot alone; the slot may meanwhile belong to someone else.
func (b *Booking) CompleteOrder(orderID uint) error {
	var order model.Order
	if err := b.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("order not found")
		}
		return err
	}

	wasActive := order.Status == model.StatusPending || order.Status == model.StatusInProgress
	order.Status = model.StatusCompleted
	order.RemainingTime = 0
	if err := b.db.Save(&order).Error; err != nil {
		return err
	}
	if wasActive {
		if err := b.roster.Release(order.SlotID); err != nil {
			return err
		}
	}
	return b.Reconcile()
}

type OrderLineView struct {
	ItemName     string `json:"item_name"`
	Quantity     int    `json:"item_quantity"`
	Instructions string `json:"item_instructions"`
}

type OrderView struct {
	OrderID          uint              `json:"order_id"`
	OrderNumber      int               `json:"order_number"`
	ClientName       string            `json:"client_name"`
	ClientPhone      string            `json:"client_phone"`
	TableName        string            `json:"table_name"`
	TableNo          int               `json:"table_no"`
	AssignedTime     string            `json:"assigned_time"`
	RemainingMinutes int               `json:"remaining_minutes"`
	OrderType        model.OrderType   `json:"order_type"`
	Status           model.OrderStatus `json:"status"`
	Items            []OrderLineView   `json:"items"`
}

// ListOrders reconciles active orders first, then returns every order
// newest first with its client, table, and line details resolved.
func (b *Booking) ListOrders() ([]OrderView, error) {
	if err := b.Reconcile(); err != nil {
		return nil, err
	}

	var orders []model.Order
	err := b.db.
		Preload("Client").
		Preload("Items.MenuItem").
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	slotIDs := make([]uint, 0, len(orders))
	for _, o := range orders {
		slotIDs = append(slotIDs, o.SlotID)
	}
	slotByID := make(map[uint]model.TableSlot)
	if len(slotIDs) > 0 {
		var slots []model.TableSlot
		if err := b.db.Where("id IN ?", slotIDs).Find(&slots).Error; err != nil {
			return nil, err
		}
		for _, s := range slots {
			slotByID[s.ID] = s
		}
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		view := OrderView{
			OrderID:          o.ID,
			OrderNumber:      o.OrderNumber,
			ClientName:       o.Client.PersonName,
			ClientPhone:      o.Client.PersonNumber,
			RemainingMinutes: int(o.RemainingTime / time.Minute),
			OrderType:        o.OrderType,
			Status:           o.Status,
		}
		if slot, ok := slotByID[o.SlotID]; ok {
			view.TableName = slot.TableName
			view.TableNo = slot.TableNo
		}
		if o.AssignedAt != nil {
			view.AssignedTime = o.AssignedAt.Format("03:04 PM")
		}
		for _, line := range o.Items {
			view.Items = append(view.Items, OrderLineView{
				ItemName:     line.MenuItem.ItemName,
				Quantity:     line.Quantity,
				Instructions: line.Instructions,
			})
		}
		views = append(views, view)
	}
	return views, nil
}
