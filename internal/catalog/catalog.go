package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is an orderable unit from the catalog: a dish, a rentable furniture
// piece, or a staff role. Immutable once loaded; the engine never writes it.
type Item struct {
	ID           uuid.UUID
	Name         string
	CategoryID   uuid.UUID
	SellingPrice decimal.Decimal
	CostPrice    decimal.Decimal
	Unit         string
	Keywords     string // CSV, used by the matcher
}

// CategoryMeta classifies a category as sellable food or a service,
// and for services carries the furniture-vs-staff code.
type CategoryMeta struct {
	ID       uuid.UUID
	ItemType string // enum.CategoryTypeFood or enum.CategoryTypeService
	Code     string // enum.ServiceCodeFurniture or enum.ServiceCodeStaff; empty for food
}

// ServiceItem is a catalog item projected into a rentable/bookable shape.
type ServiceItem struct {
	ID           uuid.UUID
	Name         string
	PricePerUnit decimal.Decimal
	Unit         string
	Code         string // enum.ServiceCodeFurniture or enum.ServiceCodeStaff
}
