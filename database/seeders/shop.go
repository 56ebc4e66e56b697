package seeders

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/auth"
)

func init() {
	Register("users", SeedUsers)
	Register("products", SeedProducts)
	Register("collections", SeedCollections)
}

// SeedUsers inserts a staff account and a plain customer for local testing.
func SeedUsers(db *gorm.DB) error {
	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "Admin", Email: "admin@example.com", Password: hash, IsStaff: true},
		{Name: "Customer", Email: "customer@example.com", Password: hash},
	}
	for i := range users {
		var existing models.User
		err := db.Where("email = ?", users[i].Email).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&users[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedProducts inserts a small starter catalog.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Espresso Beans 1kg", Description: "Dark roast arabica", Price: decimal.NewFromFloat(18.50), Slug: "espresso-beans-1kg"},
		{Name: "Pour-over Kettle", Description: "Gooseneck, 1L", Price: decimal.NewFromFloat(42.00), Slug: "pour-over-kettle"},
		{Name: "Ceramic Mug", Description: "350ml, matte white", Price: decimal.NewFromFloat(11.99), Slug: "ceramic-mug"},
		{Name: "Hand Grinder", Description: "Steel burr", Price: decimal.NewFromFloat(65.00), Slug: "hand-grinder"},
	}
	return db.Create(&products).Error
}

// SeedCollections groups the starter catalog into one collection.
func SeedCollections(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Collection{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var products []models.Product
	if err := db.Limit(3).Order("id").Find(&products).Error; err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}

	collection := models.Collection{Name: "Brew Essentials", Slug: "brew-essentials", Text: "Everything you need for a first setup."}
	if err := db.Create(&collection).Error; err != nil {
		return err
	}

	members := make([]models.CollectionProduct, 0, len(products))
	for _, p := range products {
		members = append(members, models.CollectionProduct{CollectionID: collection.ID, ProductID: p.ID})
	}
	return db.Create(&members).Error
}
