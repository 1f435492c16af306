package services

import (
	"time"

	"github.com/javacachava/Pizza-Brava-sub000/models"
	"gorm.io/gorm"
)

// Order statuses
const (
	OrderStatusReceived  = "received"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// VariantChoice picks one option in one variant group.
type VariantChoice struct {
	GroupID  uint `json:"group_id"`
	OptionID uint `json:"option_id"`
}

// OrderLine is one requested line in an order submission. Prices are
// never taken from the client; every line is rebuilt and repriced
// through a selection session.
type OrderLine struct {
	ProductID   uint            `json:"product_id"`
	ComboID     uint            `json:"combo_id"`
	Quantity    int             `json:"quantity"`
	Notes       string          `json:"notes"`
	Variants    []VariantChoice `json:"variants,omitempty"`
	Ingredients []uint          `json:"ingredients,omitempty"`
	Slots       []SlotSelection `json:"slots,omitempty"`
}

// OrderService turns submitted lines into a consolidated cart and
// persists accepted carts as orders.
type OrderService struct {
	db        *gorm.DB
	catalog   Catalog
	validator *ComboValidator
}

func NewOrderService(db *gorm.DB, catalog Catalog) *OrderService {
	return &OrderService{
		db:        db,
		catalog:   catalog,
		validator: NewComboValidator(catalog),
	}
}

// BuildCart reprices every requested line through the selection
// engine and consolidates the results. Combos are validated before
// they may enter the cart.
func (s *OrderService) BuildCart(lines []OrderLine) (*Cart, error) {
	cart := NewCart()

	for _, line := range lines {
		session, comboID, err := s.openSession(line)
		if err != nil {
			return nil, err
		}

		if comboID != 0 {
			result := s.validator.Validate(comboID, line.Slots)
			if !result.Valid {
				return nil, &ComboValidationError{ComboID: comboID, Messages: result.Errors}
			}
			for _, sel := range line.Slots {
				if err := session.SelectComboOption(sel.SlotID, sel.ProductID); err != nil {
					return nil, err
				}
			}
		}

		if err := applyProductSelections(session, line); err != nil {
			return nil, err
		}

		item := session.BuildLineItem()
		item.Quantity = line.Quantity
		item.Notes = line.Notes
		cart.AddItem(item)
	}

	return cart, nil
}

func (s *OrderService) openSession(line OrderLine) (*SelectionSession, uint, error) {
	if line.ComboID != 0 {
		session, err := NewComboSession(s.catalog, line.ComboID)
		if err != nil {
			return nil, 0, err
		}
		return session, line.ComboID, nil
	}

	session, err := NewProductSession(s.catalog, line.ProductID)
	if err != nil {
		return nil, 0, err
	}
	if session.Behavior() == models.BehaviorComboPack {
		return session, session.comboID, nil
	}
	return session, 0, nil
}

func applyProductSelections(session *SelectionSession, line OrderLine) error {
	switch session.Behavior() {
	case models.BehaviorVariant:
		for _, choice := range line.Variants {
			if err := session.SelectVariant(choice.GroupID, choice.OptionID); err != nil {
				return err
			}
		}
	case models.BehaviorCustomBuilder:
		// the request carries the desired active set; toggle the
		// session until it matches
		desired := make(map[uint]bool, len(line.Ingredients))
		for _, id := range line.Ingredients {
			desired[id] = true
		}
		for _, ing := range session.product.Ingredients {
			if desired[ing.ID] != session.activeIngredients[ing.ID] {
				if err := session.ToggleIngredient(ing.ID); err != nil {
					return err
				}
			}
		}
		// ids that matched nothing on the product are contract
		// violations, not silently dropped
		for id := range desired {
			if session.findIngredient(id) == nil {
				return ErrInvalidSelection
			}
		}
	}
	return nil
}

// Submit re-validates every combo line (the catalog may have changed
// since the cart was built) and persists the cart as an order in one
// transaction.
func (s *OrderService) Submit(cashierID uint, tableNumber int, cart *Cart) (*models.Order, error) {
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	for _, item := range cart.Items {
		if !item.IsCombo {
			continue
		}
		selections := make([]SlotSelection, 0, len(item.Slots))
		for _, slot := range item.Slots {
			selections = append(selections, SlotSelection{
				SlotID:    slot.SlotID,
				ProductID: slot.ProductID,
				Quantity:  slot.Quantity,
			})
		}
		result := s.validator.Validate(item.ComboID, selections)
		if !result.Valid {
			return nil, &ComboValidationError{ComboID: item.ComboID, Messages: result.Errors}
		}
	}

	order := models.Order{
		CashierID:   cashierID,
		TableNumber: tableNumber,
		Status:      OrderStatusReceived,
		TotalAmount: cart.Total(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range cart.Items {
			orderItem := models.OrderItem{
				OrderID:    order.ID,
				Name:       item.Name,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				TotalPrice: item.TotalPrice,
				Notes:      item.Notes,
				IsCombo:    item.IsCombo,
			}
			if item.ProductID != 0 {
				pid := item.ProductID
				orderItem.ProductID = &pid
			}
			if item.ComboID != 0 {
				cid := item.ComboID
				orderItem.ComboID = &cid
			}
			options := make([]models.OptionSnapshot, 0, len(item.Options))
			for _, opt := range item.Options {
				options = append(options, models.OptionSnapshot{Name: opt.Name, Price: opt.Price})
			}
			if err := orderItem.SetOptions(options); err != nil {
				return err
			}
			if err := orderItem.SetSlots(item.Slots); err != nil {
				return err
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, orderItem)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}
