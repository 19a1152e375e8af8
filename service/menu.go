package service

import (
	"errors"

	"gorm.io/gorm"

	"restro/model"
)

// Menu serves the public menu listing and owns the delete cascades that
// keep orders and categories consistent when menu data is removed.
type Menu struct {
	db *gorm.DB
}

func NewMenu(db *gorm.DB) *Menu {
	return &Menu{db: db}
}

type CategoryView struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type MenuItemView struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Price           float64 `json:"price"`
	Image           string  `json:"image"`
	Description     string  `json:"description"`
	PreparationTime int     `json:"preparation_time"`
	Tax             float64 `json:"tax"`
	CategoryID      uint    `json:"category_id"`
}

type MenuListing struct {
	Category []CategoryView `json:"category"`
	Menu     []MenuItemView `json:"menu"`
}

func (s *Menu) Listing() (*MenuListing, error) {
	var categories []model.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	var items []model.MenuItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	if len(categories) == 0 || len(items) == 0 {
		return nil, notFoundf("no categories or menu items found")
	}

	listing := &MenuListing{}
	for _, c := range categories {
		listing.Category = append(listing.Category, CategoryView{ID: c.ID, Title: c.Name, Icon: c.Icon})
	}
	for _, m := range items {
		listing.Menu = append(listing.Menu, MenuItemView{
			ID:              m.ID,
			Title:           m.ItemName,
			Price:           m.ItemPrice,
			Image:           m.ItemImage,
			Description:     m.Description,
			PreparationTime: m.PreparationTime,
			Tax:             m.Tax,
			CategoryID:      m.CategoryID,
		})
	}
	return listing, nil
}

// DeleteItem removes a menu item together with every order that
// references it; dropping the whole parent order is the documented side
// effect of losing one of its lines. Tables held by the removed active
// orders are released first so no slot stays booked for an order that
// no longer exists.
func (s *Menu) DeleteItem(itemID uint) error {
	var item model.MenuItem
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("menu item not found")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var orderIDs []uint
		err := tx.Model(&model.OrderItem{}).
			Where("menu_item_id = ?", item.ID).
			Distinct().
			Pluck("order_id", &orderIDs).Error
		if err != nil {
			return err
		}

		if len(orderIDs) > 0 {
			var doomed []model.Order
			if err := tx.Where("id IN ?", orderIDs).Find(&doomed).Error; err != nil {
				return err
			}
			for _, o := range doomed {
				if o.Status != model.StatusPending && o.Status != model.StatusInProgress {
					continue
				}
				err := tx.Model(&model.TableSlot{}).
					Where("id = ?", o.SlotID).
					Update("is_available", true).Error
				if err != nil {
					return err
				}
			}
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&model.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", orderIDs).Delete(&model.Order{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&item).Error
	})
}

// DeleteCategory removes a category after moving its menu items to the
// "Uncategorized" fallback, creating that fallback on first use.
func (s *Menu) DeleteCategory(categoryID uint) error {
	var category model.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("category not found")
		}
		return err
	}
	if category.Name == model.UncategorizedName {
		return conflictf("the fallback category cannot be deleted")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var fallback model.Category
		err := tx.Where("name = ?", model.UncategorizedName).First(&fallback).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fallback = model.Category{Name: model.UncategorizedName, Icon: "uncategorized.svg"}
			err = tx.Create(&fallback).Error
		}
		if err != nil {
			return err
		}

		err = tx.Model(&model.MenuItem{}).
			Where("category_id = ?", category.ID).
			Update("category_id", fallback.ID).Error
		if err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}
