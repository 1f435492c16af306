package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/javacachava/Pizza-Brava-sub000/models"
	"github.com/javacachava/Pizza-Brava-sub000/services"
	"github.com/javacachava/Pizza-Brava-sub000/utils"
	"gorm.io/gorm"
)

type ProductController struct {
	DB      *gorm.DB
	Catalog services.Catalog
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db, Catalog: services.NewGormCatalog(db)}
}

type variantGroupInput struct {
	Name    string `json:"name" binding:"required"`
	Options []struct {
		Name          string  `json:"name" binding:"required"`
		PriceModifier float64 `json:"price_modifier"`
	} `json:"options" binding:"required"`
}

type ingredientInput struct {
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	IsDefault bool    `json:"is_default"`
}

type productInput struct {
	CategoryID      uint                `json:"category_id" binding:"required"`
	Name            string              `json:"name" binding:"required"`
	Price           float64             `json:"price"`
	Description     string              `json:"description"`
	Available       *bool               `json:"available"`
	ImageUrl        *string             `json:"image_url"`
	UsesIngredients bool                `json:"uses_ingredients"`
	UsesFlavors     bool                `json:"uses_flavors"`
	ComboEligible   bool                `json:"combo_eligible"`
	ComboID         *uint               `json:"combo_id"`
	VariantGroups   []variantGroupInput `json:"variant_groups"`
	Ingredients     []ingredientInput   `json:"ingredients"`
}

// GetAllProducts
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	products, err := pc.Catalog.AllProducts()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// GetProductByID
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	product, err := pc.Catalog.ProductByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

// GetProductsByCategory -> GET /products/by-category?category=<id>
func (pc *ProductController) GetProductsByCategory(c *gin.Context) {
	categoryIDStr := c.Query("category")
	if categoryIDStr == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query parameter 'category' is required"))
		return
	}
	categoryID, err := strconv.Atoi(categoryIDStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category ID"))
		return
	}

	var products []models.Product
	if err := pc.DB.Preload("Category").
		Preload("VariantGroups.Options").
		Preload("Ingredients").
		Where("category_id = ?", categoryID).
		Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of products for category", products)
}

// CreateProduct with nested variant groups / ingredients
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	product := models.Product{
		CategoryID:      input.CategoryID,
		Name:            input.Name,
		Price:           input.Price,
		Description:     input.Description,
		Available:       available,
		ImageUrl:        input.ImageUrl,
		UsesIngredients: input.UsesIngredients,
		UsesFlavors:     input.UsesFlavors,
		ComboEligible:   input.ComboEligible,
		ComboID:         input.ComboID,
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		return createProductChildren(tx, &product, input)
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

// UpdateProduct replaces the product and its nested configuration
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product.CategoryID = input.CategoryID
	product.Name = input.Name
	product.Price = input.Price
	product.Description = input.Description
	if input.Available != nil {
		product.Available = *input.Available
	}
	product.ImageUrl = input.ImageUrl
	product.UsesIngredients = input.UsesIngredients
	product.UsesFlavors = input.UsesFlavors
	product.ComboEligible = input.ComboEligible
	product.ComboID = input.ComboID

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		// nested config is replaced wholesale
		var groupIDs []uint
		if err := tx.Model(&models.VariantGroup{}).Where("product_id = ?", product.ID).Pluck("id", &groupIDs).Error; err != nil {
			return err
		}
		if len(groupIDs) > 0 {
			if err := tx.Where("group_id IN ?", groupIDs).Delete(&models.VariantOption{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.VariantGroup{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		product.VariantGroups = nil
		product.Ingredients = nil
		return createProductChildren(tx, &product, input)
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

// DeleteProduct
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	if err := pc.DB.Delete(&models.Product{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"product_id": id})
}

func createProductChildren(tx *gorm.DB, product *models.Product, input productInput) error {
	for _, g := range input.VariantGroups {
		group := models.VariantGroup{ProductID: product.ID, Name: g.Name}
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		for _, o := range g.Options {
			option := models.VariantOption{
				GroupID:       group.ID,
				Name:          o.Name,
				PriceModifier: o.PriceModifier,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
			group.Options = append(group.Options, option)
		}
		product.VariantGroups = append(product.VariantGroups, group)
	}

	for _, i := range input.Ingredients {
		ingredient := models.Ingredient{
			ProductID: product.ID,
			Name:      i.Name,
			Price:     i.Price,
			IsDefault: i.IsDefault,
		}
		if err := tx.Create(&ingredient).Error; err != nil {
			return err
		}
		product.Ingredients = append(product.Ingredients, ingredient)
	}

	return nil
}
