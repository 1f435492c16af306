package models

import "time"

// Behavior classification of a product. Derived from the capability
// flags below, never stored, so the two cannot drift apart.
const (
	BehaviorComboPack     = "combo_pack"
	BehaviorCustomBuilder = "custom_builder"
	BehaviorVariant       = "variant"
	BehaviorStandard      = "standard"
)

type Product struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	CategoryID  uint     `gorm:"not null" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name        string   `gorm:"type:varchar(255);not null" json:"name"`
	Price       float64  `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string   `gorm:"type:text" json:"description"`
	Available   bool     `gorm:"not null;default:true" json:"available"`
	ImageUrl    *string  `gorm:"type:varchar(255)" json:"image_url,omitempty"`

	// Capability flags
	UsesIngredients bool `gorm:"not null;default:false" json:"uses_ingredients"`
	UsesFlavors     bool `gorm:"not null;default:false" json:"uses_flavors"`
	ComboEligible   bool `gorm:"not null;default:false" json:"combo_eligible"`

	// Combo definition backing a combo-eligible product
	ComboID *uint `gorm:"index" json:"combo_id,omitempty"`

	VariantGroups []VariantGroup `gorm:"foreignKey:ProductID" json:"variant_groups,omitempty"`
	Ingredients   []Ingredient   `gorm:"foreignKey:ProductID" json:"ingredients,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// Behavior -> which selection/pricing rules apply. Priority order:
// combo pack, custom builder, variant, standard.
func (p *Product) Behavior() string {
	switch {
	case p.ComboEligible:
		return BehaviorComboPack
	case p.UsesIngredients:
		return BehaviorCustomBuilder
	case p.UsesFlavors:
		return BehaviorVariant
	default:
		return BehaviorStandard
	}
}
