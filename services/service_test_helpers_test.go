package services

import (
	"fmt"
	"sync/atomic"

	"github.com/javacachava/Pizza-Brava-sub000/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq uint64

// setupTestCatalog builds an in-memory sqlite catalog seeded with the
// fixtures the engine tests share:
//
//	1 Coke        $2.00  (drinks)
//	2 Sprite      $2.50  (drinks)
//	3 Water       $1.50  (drinks)
//	4 Fries       $3.00  (sides)
//	5 BYO Pizza   $8.00  custom builder (cheese default $0, bacon $1.50, olives $0.75)
//	6 Soda        $2.50  variant (Size: Small +0 / Large +1.00; Style: Regular +0 / Diet -0.50)
//	7 Garlic Bread $4.00 standard
//
//	combo 1 "Family Pack" $10.00
//	  slot 1 Drink required 1..1 allowed [1 2] default 1
//	  slot 2 Side  required 1..1 allowed [4]   default 4
func setupTestCatalog() (*gorm.DB, *GormCatalog) {
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", atomic.AddUint64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.VariantGroup{},
		&models.VariantOption{},
		&models.Ingredient{},
		&models.Combo{},
		&models.ComboSlot{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		panic(err)
	}

	drinks := models.Category{Name: "Drinks"}
	sides := models.Category{Name: "Sides"}
	mains := models.Category{Name: "Mains"}
	db.Create(&drinks)
	db.Create(&sides)
	db.Create(&mains)

	seedProduct(db, models.Product{CategoryID: drinks.ID, Name: "Coke", Price: 2.00, Available: true})
	seedProduct(db, models.Product{CategoryID: drinks.ID, Name: "Sprite", Price: 2.50, Available: true})
	seedProduct(db, models.Product{CategoryID: drinks.ID, Name: "Water", Price: 1.50, Available: true})
	seedProduct(db, models.Product{CategoryID: sides.ID, Name: "Fries", Price: 3.00, Available: true})

	pizza := seedProduct(db, models.Product{
		CategoryID:      mains.ID,
		Name:            "Build Your Own Pizza",
		Price:           8.00,
		Available:       true,
		UsesIngredients: true,
	})
	db.Create(&models.Ingredient{ProductID: pizza.ID, Name: "Cheese", Price: 0, IsDefault: true})
	db.Create(&models.Ingredient{ProductID: pizza.ID, Name: "Bacon", Price: 1.50})
	db.Create(&models.Ingredient{ProductID: pizza.ID, Name: "Olives", Price: 0.75})

	soda := seedProduct(db, models.Product{
		CategoryID:  drinks.ID,
		Name:        "Soda",
		Price:       2.50,
		Available:   true,
		UsesFlavors: true,
	})
	size := models.VariantGroup{ProductID: soda.ID, Name: "Size"}
	db.Create(&size)
	db.Create(&models.VariantOption{GroupID: size.ID, Name: "Small", PriceModifier: 0})
	db.Create(&models.VariantOption{GroupID: size.ID, Name: "Large", PriceModifier: 1.00})
	style := models.VariantGroup{ProductID: soda.ID, Name: "Style"}
	db.Create(&style)
	db.Create(&models.VariantOption{GroupID: style.ID, Name: "Regular", PriceModifier: 0})
	db.Create(&models.VariantOption{GroupID: style.ID, Name: "Diet", PriceModifier: -0.50})

	seedProduct(db, models.Product{CategoryID: sides.ID, Name: "Garlic Bread", Price: 4.00, Available: true})

	combo := models.Combo{Name: "Family Pack", Price: 10.00, Available: true}
	db.Create(&combo)
	drinkSlot := models.ComboSlot{
		ComboID:           combo.ID,
		Title:             "Drink",
		Required:          true,
		MinCount:          1,
		MaxCount:          1,
		AllowSwap:         true,
		DefaultProductID:  1,
		AllowedProductIDs: []uint{1, 2},
	}
	db.Create(&drinkSlot)
	sideSlot := models.ComboSlot{
		ComboID:           combo.ID,
		Title:             "Side",
		Required:          true,
		MinCount:          1,
		MaxCount:          1,
		AllowSwap:         false,
		DefaultProductID:  4,
		AllowedProductIDs: []uint{4},
	}
	db.Create(&sideSlot)

	return db, NewGormCatalog(db)
}

func seedProduct(db *gorm.DB, p models.Product) models.Product {
	db.Create(&p)
	return p
}

func findProductID(catalog Catalog, name string) uint {
	products, err := catalog.AllProducts()
	if err != nil {
		panic(err)
	}
	for _, p := range products {
		if p.Name == name {
			return p.ID
		}
	}
	panic("missing fixture product " + name)
}

func variantIDs(catalog Catalog, productName, groupName, optionName string) (uint, uint) {
	products, err := catalog.AllProducts()
	if err != nil {
		panic(err)
	}
	for _, p := range products {
		if p.Name != productName {
			continue
		}
		for _, g := range p.VariantGroups {
			if g.Name != groupName {
				continue
			}
			for _, o := range g.Options {
				if o.Name == optionName {
					return g.ID, o.ID
				}
			}
		}
	}
	panic("missing fixture variant " + groupName + "/" + optionName)
}

func ingredientID(catalog Catalog, productName, ingredientName string) uint {
	products, err := catalog.AllProducts()
	if err != nil {
		panic(err)
	}
	for _, p := range products {
		if p.Name != productName {
			continue
		}
		for _, ing := range p.Ingredients {
			if ing.Name == ingredientName {
				return ing.ID
			}
		}
	}
	panic("missing fixture ingredient " + ingredientName)
}
