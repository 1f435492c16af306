package router

import (
	"github.com/gin-gonic/gin"
	"github.com/javacachava/Pizza-Brava-sub000/controllers"
	"github.com/javacachava/Pizza-Brava-sub000/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	productCtrl := controllers.NewProductController(db)
	comboCtrl := controllers.NewComboController(db)
	orderCtrl := controllers.NewOrderController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Kitchen display websocket
	r.GET("/kds/ws", controllers.KDSHandler)

	// Catalog reads are open so the order screen can browse
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/products", productCtrl.GetAllProducts)
	r.GET("/products/by-category", productCtrl.GetProductsByCategory)
	r.GET("/products/:product_id", productCtrl.GetProductByID)
	r.GET("/combos", comboCtrl.GetAllCombos)
	r.GET("/combos/:combo_id", comboCtrl.GetComboByID)
	r.POST("/combos/:combo_id/validate", comboCtrl.ValidateCombo)

	// ----------------------------------------------------------------
	//                      CASHIER ROUTES
	// ----------------------------------------------------------------
	cashier := r.Group("/")
	cashier.Use(middlewares.AuthMiddleware(), middlewares.RequireRole("cashier"))
	{
		cashier.POST("/orders", orderCtrl.CreateOrder)
		cashier.POST("/orders/price", orderCtrl.PriceCart)
		cashier.GET("/orders", orderCtrl.GetAllOrders)
		cashier.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	}

	// ----------------------------------------------------------------
	//                      KITCHEN ROUTES
	// ----------------------------------------------------------------
	kitchen := r.Group("/")
	kitchen.Use(middlewares.AuthMiddleware(), middlewares.RequireRole("kitchen"))
	{
		kitchen.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	}

	// ----------------------------------------------------------------
	//                      ADMIN (BACK-OFFICE) ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole("admin"))
	{
		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:category_id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:product_id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:product_id", productCtrl.DeleteProduct)

		admin.POST("/combos", comboCtrl.CreateCombo)
		admin.PATCH("/combos/:combo_id", comboCtrl.UpdateCombo)
		admin.DELETE("/combos/:combo_id", comboCtrl.DeleteCombo)
	}

	return r
}
