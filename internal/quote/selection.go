package quote

import (
	"github.com/google/uuid"

	"github.com/tiecvui/api/internal/catalog"
)

// Selection is the mutable heart of a quote session: the chosen food items
// (insertion-ordered, unique), per-service-item quantities, and the staff
// headcount applied uniformly to every staff item.
//
// The food id list and the materialized record list always have the same
// membership; quantities and the headcount never go below zero.
type Selection struct {
	foodIDs    []uuid.UUID
	foodItems  []catalog.Item
	serviceQty map[uuid.UUID]int
	staffCount int
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{
		serviceQty: make(map[uuid.UUID]int),
	}
}

// HasFood reports whether the item is currently selected.
func (s *Selection) HasFood(id uuid.UUID) bool {
	for _, fid := range s.foodIDs {
		if fid == id {
			return true
		}
	}
	return false
}

// ToggleFood selects the item if absent, deselects it if present.
// Exactly one toggle per call.
func (s *Selection) ToggleFood(item catalog.Item) {
	for i, fid := range s.foodIDs {
		if fid == item.ID {
			s.foodIDs = append(s.foodIDs[:i], s.foodIDs[i+1:]...)
			s.foodItems = append(s.foodItems[:i], s.foodItems[i+1:]...)
			return
		}
	}
	s.foodIDs = append(s.foodIDs, item.ID)
	s.foodItems = append(s.foodItems, item)
}

// AddFood selects the item if not already selected. Returns true if it was
// added. Used by the bulk import path, which must never toggle off.
func (s *Selection) AddFood(item catalog.Item) bool {
	if s.HasFood(item.ID) {
		return false
	}
	s.foodIDs = append(s.foodIDs, item.ID)
	s.foodItems = append(s.foodItems, item)
	return true
}

// FoodIDs returns the selected ids in insertion order.
func (s *Selection) FoodIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(s.foodIDs))
	copy(out, s.foodIDs)
	return out
}

// FoodItems returns the selected item records in insertion order.
func (s *Selection) FoodItems() []catalog.Item {
	out := make([]catalog.Item, len(s.foodItems))
	copy(out, s.foodItems)
	return out
}

// SetServiceQuantity stores max(0, qty) for the service item. Zero means
// "not selected".
func (s *Selection) SetServiceQuantity(serviceID uuid.UUID, qty int) {
	if qty < 0 {
		qty = 0
	}
	s.serviceQty[serviceID] = qty
}

// ServiceQuantity returns the stored quantity; absent means zero.
func (s *Selection) ServiceQuantity(serviceID uuid.UUID) int {
	return s.serviceQty[serviceID]
}

// SetStaffCount stores max(0, n).
func (s *Selection) SetStaffCount(n int) {
	if n < 0 {
		n = 0
	}
	s.staffCount = n
}

// StaffCount returns the staff headcount.
func (s *Selection) StaffCount() int {
	return s.staffCount
}
