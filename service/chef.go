package service

import (
	"errors"

	"gorm.io/gorm"

	"restro/model"
)

// Chefs manages the chef roster: listing with per-chef order totals,
// creation, and the admin-protected delete with order reassignment.
type Chefs struct {
	db *gorm.DB
}

func NewChefs(db *gorm.DB) *Chefs {
	return &Chefs{db: db}
}

type ChefView struct {
	ChefID      uint   `json:"chef_id"`
	ChefName    string `json:"chef_name"`
	IsAdmin     bool   `json:"is_admin"`
	TotalOrders int64  `json:"total_orders"`
}

func (s *Chefs) List() ([]ChefView, error) {
	var chefs []model.Chef
	if err := s.db.Order("id asc").Find(&chefs).Error; err != nil {
		return nil, err
	}

	type countRow struct {
		ChefID uint
		Total  int64
	}
	var counts []countRow
	err := s.db.Model(&model.Order{}).
		Select("chef_id, COUNT(*) AS total").
		Group("chef_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	totalByChef := make(map[uint]int64, len(counts))
	for _, row := range counts {
		totalByChef[row.ChefID] = row.Total
	}

	views := make([]ChefView, 0, len(chefs))
	for _, chef := range chefs {
		views = append(views, ChefView{
			ChefID:      chef.ID,
			ChefName:    chef.ChefName,
			IsAdmin:     chef.IsAdmin,
			TotalOrders: totalByChef[chef.ID],
		})
	}
	return views, nil
}

func (s *Chefs) Create(name string) (*model.Chef, error) {
	if name == "" {
		return nil, invalidf("chef name is required")
	}

	chef := model.Chef{ChefName: name, IsAdmin: false}
	if err := s.db.Create(&chef).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflictf("chef already exists with this name")
		}
		return nil, err
	}
	return &chef, nil
}

// Delete removes a chef. Admin chefs cannot be deleted, and a departing
// chef's orders are handed to an admin so no order is left pointing at
// a missing chef. Reassignment and delete happen in one transaction.
func (s *Chefs) Delete(chefID uint) error {
	var chef model.Chef
	if err := s.db.First(&chef, chefID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("chef not found")
		}
		return err
	}
	if chef.IsAdmin {
		return conflictf("admin chefs cannot be deleted")
	}

	var admin model.Chef
	err := s.db.Where("is_admin = ? AND id <> ?", true, chef.ID).Order("id asc").First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return unavailablef("no admin chef found for reassignment")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Order{}).
			Where("chef_id = ?", chef.ID).
			Update("chef_id", admin.ID).Error
		if err != nil {
			return err
		}
		return tx.Delete(&chef).Error
	})
}
