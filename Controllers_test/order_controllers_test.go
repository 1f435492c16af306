package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/javacachava/Pizza-Brava-sub000/controllers"
	"github.com/javacachava/Pizza-Brava-sub000/models"
)

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	orderCtrl := controllers.NewOrderController(db)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.POST("/orders/price", orderCtrl.PriceCart)
	router.GET("/orders", orderCtrl.GetAllOrders)
	router.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	router.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	return router
}

func seedOrderCatalog(db *gorm.DB) {
	db.Create(&models.Category{Name: "Drinks"})
	db.Create(&models.Category{Name: "Sides"})
	db.Create(&models.Product{CategoryID: 1, Name: "Coke", Price: 2.0, Available: true})
	db.Create(&models.Product{CategoryID: 1, Name: "Sprite", Price: 2.5, Available: true})
	db.Create(&models.Product{CategoryID: 2, Name: "Fries", Price: 3.0, Available: true})
	db.Create(&models.Product{CategoryID: 2, Name: "Garlic Bread", Price: 4.0, Available: true})

	combo := models.Combo{Name: "Family Pack", Price: 10.0, Available: true}
	db.Create(&combo)
	db.Create(&models.ComboSlot{
		ComboID: combo.ID, Title: "Drink", Required: true,
		MinCount: 1, MaxCount: 1, AllowSwap: true,
		DefaultProductID: 1, AllowedProductIDs: []uint{1, 2},
	})
	db.Create(&models.ComboSlot{
		ComboID: combo.ID, Title: "Side", Required: true,
		MinCount: 1, MaxCount: 1,
		DefaultProductID: 3, AllowedProductIDs: []uint{3},
	})
}

func TestCreateOrderRepricesServerSide(t *testing.T) {
	db := setupTestDB()
	seedOrderCatalog(db)
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"table_number": 4,
		"items": []map[string]interface{}{
			{
				"combo_id": 1,
				"quantity": 1,
				"slots": []map[string]interface{}{
					{"slot_id": 1, "product_id": 2, "quantity": 1},
					{"slot_id": 2, "product_id": 3, "quantity": 1},
				},
			},
			{"product_id": 4, "quantity": 2},
			{"product_id": 4, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	// 10.50 combo + 3x 4.00 garlic bread, with the two bread lines merged
	assert.Equal(t, 22.5, data["total_amount"])
	items, ok := data["items"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, items, 2)

	w = doJSON(t, router, "GET", "/orders/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/orders?status=received", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Family Pack")
}

func TestCreateOrderFailsComboValidation(t *testing.T) {
	db := setupTestDB()
	seedOrderCatalog(db)
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"combo_id": 1,
				"quantity": 1,
				"slots": []map[string]interface{}{
					{"slot_id": 2, "product_id": 3, "quantity": 1},
				},
			},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Drink")

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestPriceCartDoesNotPersist(t *testing.T) {
	db := setupTestDB()
	seedOrderCatalog(db)
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/orders/price", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": 4, "quantity": 3},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, 12.0, data["total"])

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB()
	seedOrderCatalog(db)
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": 4, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "PATCH", "/orders/1/status", map[string]interface{}{
		"status": "preparing",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	assert.NoError(t, db.First(&order, 1).Error)
	assert.Equal(t, "preparing", order.Status)

	w = doJSON(t, router, "PATCH", "/orders/1/status", map[string]interface{}{
		"status": "microwaving",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
