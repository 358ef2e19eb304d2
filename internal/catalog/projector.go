package catalog

import (
	"github.com/google/uuid"

	"github.com/tiecvui/api/internal/enum"
)

// Projection splits the flat catalog into the disjoint collections the quote
// engine works with. A category missing from the metadata list contributes
// nothing to either side.
type Projection struct {
	FoodItems      []Item
	FurnitureItems []ServiceItem
	StaffItems     []ServiceItem

	foodByID    map[uuid.UUID]Item
	serviceByID map[uuid.UUID]ServiceItem
}

// Project recomputes the projection from the raw catalog and category
// metadata. Food and service membership is mutually exclusive: a category
// has exactly one type.
func Project(items []Item, categories []CategoryMeta) *Projection {
	foodCategories := make(map[uuid.UUID]bool)
	serviceCodeByCategory := make(map[uuid.UUID]string)
	for _, c := range categories {
		if c.ItemType == enum.CategoryTypeService {
			serviceCodeByCategory[c.ID] = c.Code
		} else {
			foodCategories[c.ID] = true
		}
	}

	p := &Projection{
		foodByID:    make(map[uuid.UUID]Item),
		serviceByID: make(map[uuid.UUID]ServiceItem),
	}

	for _, it := range items {
		if foodCategories[it.CategoryID] {
			p.FoodItems = append(p.FoodItems, it)
			p.foodByID[it.ID] = it
			continue
		}

		code, ok := serviceCodeByCategory[it.CategoryID]
		if !ok {
			// Unknown category: excluded from both collections.
			continue
		}

		switch code {
		case enum.ServiceCodeFurniture:
			svc := projectService(it, code, enum.UnitSet)
			p.FurnitureItems = append(p.FurnitureItems, svc)
			p.serviceByID[it.ID] = svc
		case enum.ServiceCodeStaff:
			svc := projectService(it, code, enum.UnitPerson)
			p.StaffItems = append(p.StaffItems, svc)
			p.serviceByID[it.ID] = svc
		}
	}

	return p
}

func projectService(it Item, code, defaultUnit string) ServiceItem {
	unit := it.Unit
	if unit == "" {
		unit = defaultUnit
	}
	return ServiceItem{
		ID:           it.ID,
		Name:         it.Name,
		PricePerUnit: it.SellingPrice,
		Unit:         unit,
		Code:         code,
	}
}

// FoodByID looks up a selectable food item.
func (p *Projection) FoodByID(id uuid.UUID) (Item, bool) {
	it, ok := p.foodByID[id]
	return it, ok
}

// ServiceByID looks up a furniture or staff item.
func (p *Projection) ServiceByID(id uuid.UUID) (ServiceItem, bool) {
	svc, ok := p.serviceByID[id]
	return svc, ok
}
