package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"restro/model"
)

// Dashboard aggregates read-side rollups for the admin screens. Pure
// derivation over stored orders; nothing here mutates state.
type Dashboard struct {
	db     *gorm.DB
	roster *Roster
	now    func() time.Time
}

func NewDashboard(db *gorm.DB) *Dashboard {
	return &Dashboard{db: db, roster: NewRoster(db), now: time.Now}
}

type OrderSummary struct {
	TakeAway  int64 `json:"Take-Away"`
	DineIn    int64 `json:"Dine-in"`
	Completed int64 `json:"Completed"`
}

type TableView struct {
	SlotID      uint   `json:"table_data_id"`
	TableName   string `json:"table_name"`
	TableNo     int    `json:"table_no"`
	TotalChairs int    `json:"total_chairs"`
	IsAvailable bool   `json:"is_available"`
}

type Analytics struct {
	TotalChef    int64       `json:"total_chef"`
	TotalOrder   int64       `json:"total_order"`
	TotalClient  int64       `json:"total_client"`
	TotalRevenue float64     `json:"total_revenue"`
	TableData    []TableView `json:"table_data"`
	ChefList     []ChefView  `json:"chef_list"`

	OrderSummary struct {
		Daily   OrderSummary `json:"daily"`
		Weekly  OrderSummary `json:"weekly"`
		Monthly OrderSummary `json:"monthly"`
		Yearly  OrderSummary `json:"yearly"`
	} `json:"order_summary"`

	RevenueSummary struct {
		Daily  map[string]float64 `json:"daily"`  // last 7 days, keyed by weekday
		Weekly map[string]float64 `json:"weekly"` // last 4 weeks
	} `json:"revenue_summary"`
}

// Collect builds the full dashboard snapshot, creating today's roster
// if it does not exist yet so the table panel is never empty.
func (d *Dashboard) Collect() (*Analytics, error) {
	now := d.now()
	startOfDay, endOfDay := dayRange(now)
	startOfWeek := startOfDay.AddDate(0, 0, -6)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	startOfLast4Weeks := startOfDay.AddDate(0, 0, -27)

	out := &Analytics{}

	if err := d.db.Model(&model.Chef{}).Count(&out.TotalChef).Error; err != nil {
		return nil, err
	}
	if err := d.db.Model(&model.Order{}).Count(&out.TotalOrder).Error; err != nil {
		return nil, err
	}
	if err := d.db.Model(&model.Client{}).Count(&out.TotalClient).Error; err != nil {
		return nil, err
	}

	var revenue struct{ Total float64 }
	err := d.db.Model(&model.Order{}).
		Select("COALESCE(SUM(grand_total), 0) AS total").
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	out.TotalRevenue = revenue.Total

	chefList, err := NewChefs(d.db).List()
	if err != nil {
		return nil, err
	}
	out.ChefList = chefList

	roster, err := d.roster.GetOrCreateToday()
	if err != nil {
		return nil, err
	}
	for _, slot := range roster.Slots {
		out.TableData = append(out.TableData, TableView{
			SlotID:      slot.ID,
			TableName:   slot.TableName,
			TableNo:     slot.TableNo,
			TotalChairs: slot.TotalChairs,
			IsAvailable: slot.IsAvailable,
		})
	}

	if out.OrderSummary.Daily, err = d.summarize(startOfDay, endOfDay); err != nil {
		return nil, err
	}
	if out.OrderSummary.Weekly, err = d.summarize(startOfWeek, endOfDay); err != nil {
		return nil, err
	}
	if out.OrderSummary.Monthly, err = d.summarize(startOfMonth, endOfDay); err != nil {
		return nil, err
	}
	if out.OrderSummary.Yearly, err = d.summarize(startOfYear, endOfDay); err != nil {
		return nil, err
	}

	out.RevenueSummary.Daily = make(map[string]float64, 7)
	for i := 6; i >= 0; i-- {
		day := startOfDay.AddDate(0, 0, -i)
		out.RevenueSummary.Daily[day.Format("Mon")] = 0
	}
	var weekOrders []model.Order
	err = d.db.Where("created_at >= ? AND created_at < ?", startOfWeek, endOfDay).Find(&weekOrders).Error
	if err != nil {
		return nil, err
	}
	for _, o := range weekOrders {
		out.RevenueSummary.Daily[o.CreatedAt.Format("Mon")] += o.GrandTotal
	}

	out.RevenueSummary.Weekly = make(map[string]float64, 4)
	for i := 1; i <= 4; i++ {
		out.RevenueSummary.Weekly[fmt.Sprintf("Week %d", i)] = 0
	}
	var monthOrders []model.Order
	err = d.db.Where("created_at >= ? AND created_at < ?", startOfLast4Weeks, endOfDay).Find(&monthOrders).Error
	if err != nil {
		return nil, err
	}
	for _, o := range monthOrders {
		week := int(now.Sub(o.CreatedAt).Hours()/24)/7 + 1 // week 1 is most recent
		if week >= 1 && week <= 4 {
			out.RevenueSummary.Weekly[fmt.Sprintf("Week %d", week)] += o.GrandTotal
		}
	}

	return out, nil
}

func (d *Dashboard) summarize(start, end time.Time) (OrderSummary, error) {
	var orders []model.Order
	err := d.db.Select("order_type", "status").
		Where("created_at >= ? AND created_at < ?", start, end).
		Find(&orders).Error
	if err != nil {
		return OrderSummary{}, err
	}

	var sum OrderSummary
	for _, o := range orders {
		switch o.OrderType {
		case model.TakeAway:
			sum.TakeAway++
		case model.DineIn:
			sum.DineIn++
		}
		if o.Status == model.StatusCompleted {
			sum.Completed++
		}
	}
	return sum, nil
}
