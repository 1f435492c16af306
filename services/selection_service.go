package services

import (
	"github.com/javacachava/Pizza-Brava-sub000/models"
)

// ComboOption is a catalog product hydrated into a combo slot.
type ComboOption struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageUrl  *string `json:"image_url,omitempty"`
}

// SelectionSession holds the in-progress choices on one product or
// combo being configured and reprices on every mutation. Each session
// is owned by a single order-taking flow; discarding it has no side
// effects.
type SelectionSession struct {
	behavior  string
	basePrice float64
	name      string
	productID uint
	comboID   uint

	product *models.Product
	combo   *models.Combo

	// combo pack: slot id -> hydrated options / default / choice
	slotOptions map[uint][]ComboOption
	slotDefault map[uint]ComboOption
	slotChoice  map[uint]ComboOption

	// custom builder: active ingredient ids (defaults start active)
	activeIngredients map[uint]bool

	// variant: group id -> chosen option
	variantChoice map[uint]models.VariantOption
}

// NewProductSession opens a configuration session for a catalog
// product. Combo-eligible products resolve their backing combo
// definition so slot defaults can be priced.
func NewProductSession(catalog Catalog, productID uint) (*SelectionSession, error) {
	product, err := catalog.ProductByID(productID)
	if err != nil {
		return nil, err
	}

	s := &SelectionSession{
		behavior:  product.Behavior(),
		basePrice: product.Price,
		name:      product.Name,
		productID: product.ID,
		product:   product,
	}

	switch s.behavior {
	case models.BehaviorComboPack:
		if product.ComboID == nil {
			return nil, ErrUnknownCombo
		}
		combo, err := catalog.ComboByID(*product.ComboID)
		if err != nil {
			return nil, err
		}
		if err := s.initComboState(catalog, combo); err != nil {
			return nil, err
		}
	case models.BehaviorCustomBuilder:
		s.activeIngredients = make(map[uint]bool)
		for _, ing := range product.Ingredients {
			if ing.IsDefault {
				s.activeIngredients[ing.ID] = true
			}
		}
	case models.BehaviorVariant:
		s.variantChoice = make(map[uint]models.VariantOption)
		for _, group := range product.VariantGroups {
			if len(group.Options) > 0 {
				s.variantChoice[group.ID] = group.Options[0]
			}
		}
	}

	return s, nil
}

// NewComboSession opens a configuration session directly on a combo
// definition, priced from the combo's own base price.
func NewComboSession(catalog Catalog, comboID uint) (*SelectionSession, error) {
	combo, err := catalog.ComboByID(comboID)
	if err != nil {
		return nil, err
	}

	s := &SelectionSession{
		behavior:  models.BehaviorComboPack,
		basePrice: combo.Price,
		name:      combo.Name,
	}
	if err := s.initComboState(catalog, combo); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SelectionSession) initComboState(catalog Catalog, combo *models.Combo) error {
	s.combo = combo
	s.comboID = combo.ID
	s.slotOptions = make(map[uint][]ComboOption)
	s.slotDefault = make(map[uint]ComboOption)
	s.slotChoice = make(map[uint]ComboOption)

	for _, slot := range combo.Slots {
		def, err := catalog.ProductByID(slot.DefaultProductID)
		if err != nil {
			return err
		}
		defaultOption := toComboOption(def)
		s.slotDefault[slot.ID] = defaultOption
		s.slotChoice[slot.ID] = defaultOption

		options := []ComboOption{}
		for _, pid := range slot.AllowedProductIDs {
			if pid == slot.DefaultProductID {
				options = append(options, defaultOption)
				continue
			}
			p, err := catalog.ProductByID(pid)
			if err != nil {
				// stale whitelist entry, slot still works
				continue
			}
			options = append(options, toComboOption(p))
		}
		s.slotOptions[slot.ID] = options
	}
	return nil
}

func toComboOption(p *models.Product) ComboOption {
	return ComboOption{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageUrl:  p.ImageUrl,
	}
}

func (s *SelectionSession) Behavior() string { return s.behavior }

// SlotOptions returns the hydrated options for one slot so the order
// screen can render the picker.
func (s *SelectionSession) SlotOptions(slotID uint) []ComboOption {
	return s.slotOptions[slotID]
}

// SelectComboOption replaces the chosen option for a slot. Swap
// permission is the caller's concern; the session only rejects
// options that are not part of the slot at all.
func (s *SelectionSession) SelectComboOption(slotID, productID uint) error {
	if s.behavior != models.BehaviorComboPack {
		return ErrInvalidSelection
	}
	options, ok := s.slotOptions[slotID]
	if !ok {
		return ErrInvalidSelection
	}
	if def, ok := s.slotDefault[slotID]; ok && def.ProductID == productID {
		s.slotChoice[slotID] = def
		return nil
	}
	for _, opt := range options {
		if opt.ProductID == productID {
			s.slotChoice[slotID] = opt
			return nil
		}
	}
	return ErrInvalidSelection
}

// ToggleIngredient flips one ingredient in or out of the build.
// Defaults may be removed; removal never discounts.
func (s *SelectionSession) ToggleIngredient(ingredientID uint) error {
	if s.behavior != models.BehaviorCustomBuilder {
		return ErrInvalidSelection
	}
	if s.findIngredient(ingredientID) == nil {
		return ErrInvalidSelection
	}
	if s.activeIngredients[ingredientID] {
		delete(s.activeIngredients, ingredientID)
	} else {
		s.activeIngredients[ingredientID] = true
	}
	return nil
}

func (s *SelectionSession) findIngredient(id uint) *models.Ingredient {
	for i := range s.product.Ingredients {
		if s.product.Ingredients[i].ID == id {
			return &s.product.Ingredients[i]
		}
	}
	return nil
}

// SelectVariant replaces the chosen option for a variant group.
func (s *SelectionSession) SelectVariant(groupID, optionID uint) error {
	if s.behavior != models.BehaviorVariant {
		return ErrInvalidSelection
	}
	for _, group := range s.product.VariantGroups {
		if group.ID != groupID {
			continue
		}
		for _, opt := range group.Options {
			if opt.ID == optionID {
				s.variantChoice[groupID] = opt
				return nil
			}
		}
		return ErrInvalidSelection
	}
	return ErrInvalidSelection
}

// TotalPrice computes the current price of the configuration.
//
// Combo slots and extra ingredients only ever raise the price: a slot
// charges max(0, chosen-default) and removing a default ingredient is
// free. Variant modifiers apply signed and may lower the price. The
// asymmetry is intentional.
func (s *SelectionSession) TotalPrice() float64 {
	total := s.basePrice

	switch s.behavior {
	case models.BehaviorComboPack:
		for slotID, choice := range s.slotChoice {
			if delta := choice.Price - s.slotDefault[slotID].Price; delta > 0 {
				total += delta
			}
		}
	case models.BehaviorCustomBuilder:
		for _, ing := range s.product.Ingredients {
			if !ing.IsDefault && s.activeIngredients[ing.ID] {
				total += ing.Price
			}
		}
	case models.BehaviorVariant:
		for _, group := range s.product.VariantGroups {
			if opt, ok := s.variantChoice[group.ID]; ok {
				total += opt.PriceModifier
			}
		}
	}

	return total
}

// BuildLineItem materializes the session into a cart line with
// quantity 1. Option prices are recorded as the delta each one
// contributed, not the option's raw price.
func (s *SelectionSession) BuildLineItem() CartItem {
	item := CartItem{
		Name:      s.name,
		Quantity:  1,
		UnitPrice: s.TotalPrice(),
		ProductID: s.productID,
	}
	item.TotalPrice = item.UnitPrice

	switch s.behavior {
	case models.BehaviorComboPack:
		item.IsCombo = true
		item.ComboID = s.comboID
		for _, slot := range s.combo.Slots {
			choice, ok := s.slotChoice[slot.ID]
			if !ok {
				continue
			}
			delta := choice.Price - s.slotDefault[slot.ID].Price
			if delta < 0 {
				delta = 0
			}
			item.Options = append(item.Options, LineOption{
				ID:    choice.ProductID,
				Name:  choice.Name,
				Price: delta,
			})
			item.Slots = append(item.Slots, models.SlotSnapshot{
				SlotID:      slot.ID,
				ProductID:   choice.ProductID,
				ProductName: choice.Name,
				Quantity:    1,
				UnitPrice:   choice.Price,
			})
		}
	case models.BehaviorCustomBuilder:
		for _, ing := range s.product.Ingredients {
			if !ing.IsDefault && s.activeIngredients[ing.ID] {
				item.Options = append(item.Options, LineOption{
					ID:    ing.ID,
					Name:  ing.Name,
					Price: ing.Price,
				})
			}
		}
	case models.BehaviorVariant:
		for _, group := range s.product.VariantGroups {
			if opt, ok := s.variantChoice[group.ID]; ok {
				item.Options = append(item.Options, LineOption{
					ID:    opt.ID,
					Name:  opt.Name,
					Price: opt.PriceModifier,
				})
			}
		}
	}

	return item
}
