package quote

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiecvui/api/internal/catalog"
	"github.com/tiecvui/api/internal/enum"
)

// --- Shared fixtures ---

func foodItem(name string, selling, cost int64) catalog.Item {
	return catalog.Item{
		ID:           uuid.New(),
		Name:         name,
		CategoryID:   uuid.New(),
		SellingPrice: decimal.NewFromInt(selling),
		CostPrice:    decimal.NewFromInt(cost),
	}
}

func furnitureItem(name string, price int64) catalog.ServiceItem {
	return catalog.ServiceItem{
		ID:           uuid.New(),
		Name:         name,
		PricePerUnit: decimal.NewFromInt(price),
		Unit:         enum.UnitSet,
		Code:         enum.ServiceCodeFurniture,
	}
}

func staffItem(name string, price int64) catalog.ServiceItem {
	return catalog.ServiceItem{
		ID:           uuid.New(),
		Name:         name,
		PricePerUnit: decimal.NewFromInt(price),
		Unit:         enum.UnitPerson,
		Code:         enum.ServiceCodeStaff,
	}
}

func pct(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
