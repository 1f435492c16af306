package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/javacachava/Pizza-Brava-sub000/models"
)

// LineOption is one selected option on a cart line, priced as the
// delta it added to the base price.
type LineOption struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CartItem is one priced line in the cart.
type CartItem struct {
	ProductID  uint                  `json:"product_id,omitempty"`
	ComboID    uint                  `json:"combo_id,omitempty"`
	Name       string                `json:"name"`
	Quantity   int                   `json:"quantity"`
	UnitPrice  float64               `json:"unit_price"`
	TotalPrice float64               `json:"total_price"`
	Notes      string                `json:"notes,omitempty"`
	IsCombo    bool                  `json:"is_combo"`
	Options    []LineOption          `json:"options,omitempty"`
	Slots      []models.SlotSnapshot `json:"slots,omitempty"`
}

// Cart is an insertion-ordered list of lines. AddItem keeps the
// invariant that no two lines are structurally equal.
type Cart struct {
	Items []CartItem `json:"items"`
}

func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// AddItem merges the new line into the first structurally equal
// existing line, or appends it. On a merge the existing line keeps
// its unit price; only quantity and total move.
func (c *Cart) AddItem(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	item.TotalPrice = item.UnitPrice * float64(item.Quantity)

	for i := range c.Items {
		if sameLine(c.Items[i], item) {
			c.Items[i].Quantity += item.Quantity
			c.Items[i].TotalPrice = c.Items[i].UnitPrice * float64(c.Items[i].Quantity)
			return
		}
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity adjusts the line at index by delta. Dropping below 1
// is rejected and the cart is left unchanged; deleting a line goes
// through RemoveItem, never through quantity.
func (c *Cart) UpdateQuantity(index, delta int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}
	next := c.Items[index].Quantity + delta
	if next < 1 {
		return false
	}
	c.Items[index].Quantity = next
	c.Items[index].TotalPrice = c.Items[index].UnitPrice * float64(next)
	return true
}

// RemoveItem removes the line at index, preserving the order of the
// remaining lines.
func (c *Cart) RemoveItem(index int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return true
}

// Total sums line totals in insertion order so the grand total is
// reproducible against a printed ticket.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.TotalPrice
	}
	return total
}

// sameLine is the structural-equality predicate behind AddItem:
// same product or combo identity, same notes, same option set
// (order-independent) and, for combos, same slot contents.
func sameLine(a, b CartItem) bool {
	if a.IsCombo != b.IsCombo {
		return false
	}
	if a.IsCombo {
		if a.ComboID != b.ComboID {
			return false
		}
	} else if a.ProductID != b.ProductID {
		return false
	}
	if a.Notes != b.Notes {
		return false
	}
	if optionsKey(a.Options) != optionsKey(b.Options) {
		return false
	}
	if a.IsCombo && slotsKey(a.Slots) != slotsKey(b.Slots) {
		return false
	}
	return true
}

func optionsKey(opts []LineOption) string {
	sorted := make([]LineOption, len(opts))
	copy(sorted, opts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	parts := make([]string, 0, len(sorted))
	for _, opt := range sorted {
		parts = append(parts, fmt.Sprintf("%d:%s:%.2f", opt.ID, opt.Name, opt.Price))
	}
	return strings.Join(parts, "|")
}

func slotsKey(slots []models.SlotSnapshot) string {
	sorted := make([]models.SlotSnapshot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].SlotID != sorted[j].SlotID {
			return sorted[i].SlotID < sorted[j].SlotID
		}
		return sorted[i].ProductID < sorted[j].ProductID
	})

	parts := make([]string, 0, len(sorted))
	for _, slot := range sorted {
		parts = append(parts, fmt.Sprintf("%d:%d:%d", slot.SlotID, slot.ProductID, slot.Quantity))
	}
	return strings.Join(parts, "|")
}
