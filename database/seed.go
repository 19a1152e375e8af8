package database

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restro/model"
)

// Seed loads the venue's standard data on an empty database: the chef
// crew (one admin), the menu categories, the menu itself, and a default
// manager account. Populated tables are left untouched.
func Seed(db *gorm.DB) error {
	if err := seedChefs(db); err != nil {
		return err
	}
	if err := seedMenu(db); err != nil {
		return err
	}
	return seedManager(db)
}

func seedChefs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Chef{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	chefs := []model.Chef{
		{ChefName: "Manesh", IsAdmin: true},
		{ChefName: "Pritam"},
		{ChefName: "Yash"},
		{ChefName: "Tenzen"},
	}
	return db.Create(&chefs).Error
}

func seedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []model.Category{
		{Name: "Burger", Icon: "burger.svg"},
		{Name: "Pizza", Icon: "pizza.svg"},
		{Name: "Drink", Icon: "drink.svg"},
		{Name: "French Fries", Icon: "french-fries.svg"},
		{Name: "Veggies", Icon: "veggies.svg"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	categoryID := make(map[string]uint, len(categories))
	for _, c := range categories {
		categoryID[c.Name] = c.ID
	}

	items := []model.MenuItem{
		{ItemName: "Capricciosa", ItemPrice: 200, ItemImage: "Capricciosa.svg", Description: "Italian pizza with mushrooms, olives, artichokes, and ham.", PreparationTime: 20, Tax: 10, CategoryID: categoryID["Pizza"]},
		{ItemName: "Sicilian", ItemPrice: 150, ItemImage: "Sicilian.svg", Description: "Square, thick-crust pizza with tomato sauce and herbs.", PreparationTime: 22, Tax: 7.5, CategoryID: categoryID["Pizza"]},
		{ItemName: "Marinara", ItemPrice: 90, ItemImage: "Marinara.svg", Description: "Simple pizza with tomato, garlic, oregano, and olive oil.", PreparationTime: 15, Tax: 4.5, CategoryID: categoryID["Pizza"]},
		{ItemName: "Pepperoni", ItemPrice: 300, ItemImage: "Pepperoni.svg", Description: "Loaded pepperoni pizza with mozzarella and tomato sauce.", PreparationTime: 18, Tax: 15, CategoryID: categoryID["Pizza"]},
		{ItemName: "Classic Burger", ItemPrice: 120, ItemImage: "ClassicBurger.svg", Description: "Juicy grilled patty with lettuce, tomato, and mayo in a sesame bun.", PreparationTime: 12, Tax: 6, CategoryID: categoryID["Burger"]},
		{ItemName: "Lemon Iced Tea", ItemPrice: 60, ItemImage: "LemonIcedTea.svg", Description: "Refreshing iced tea with a splash of lemon, served chilled.", PreparationTime: 3, Tax: 3, CategoryID: categoryID["Drink"]},
		{ItemName: "Cheesy Fries", ItemPrice: 90, ItemImage: "CheesyFries.svg", Description: "Crispy golden fries loaded with melted cheese and seasoning.", PreparationTime: 7, Tax: 4.5, CategoryID: categoryID["French Fries"]},
	}
	return db.Create(&items).Error
}

func seedManager(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		log.Println("ADMIN_PASSWORD not set, seeding default manager credentials")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	manager := model.User{
		FirstName: "Restro",
		LastName:  "Manager",
		Email:     "manager@restro.local",
		Role:      model.Manager,
		Password:  string(hashed),
	}
	return db.Create(&manager).Error
}
