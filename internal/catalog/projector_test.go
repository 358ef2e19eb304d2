package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiecvui/api/internal/enum"
)

func TestProjectSplitsFoodAndServices(t *testing.T) {
	foodCat := uuid.New()
	furnitureCat := uuid.New()
	staffCat := uuid.New()

	categories := []CategoryMeta{
		{ID: foodCat, ItemType: enum.CategoryTypeFood},
		{ID: furnitureCat, ItemType: enum.CategoryTypeService, Code: enum.ServiceCodeFurniture},
		{ID: staffCat, ItemType: enum.CategoryTypeService, Code: enum.ServiceCodeStaff},
	}

	dish := Item{ID: uuid.New(), Name: "Gà nướng mật ong", CategoryID: foodCat, SellingPrice: decimal.NewFromInt(200000)}
	table := Item{ID: uuid.New(), Name: "Bộ bàn ghế tiệc", CategoryID: furnitureCat, SellingPrice: decimal.NewFromInt(500000), Unit: "bộ"}
	waiter := Item{ID: uuid.New(), Name: "Nhân viên phục vụ", CategoryID: staffCat, SellingPrice: decimal.NewFromInt(100000)}

	p := Project([]Item{dish, table, waiter}, categories)

	if len(p.FoodItems) != 1 || p.FoodItems[0].ID != dish.ID {
		t.Errorf("FoodItems = %v", p.FoodItems)
	}
	if len(p.FurnitureItems) != 1 || p.FurnitureItems[0].ID != table.ID {
		t.Errorf("FurnitureItems = %v", p.FurnitureItems)
	}
	if len(p.StaffItems) != 1 || p.StaffItems[0].ID != waiter.ID {
		t.Errorf("StaffItems = %v", p.StaffItems)
	}

	if p.FurnitureItems[0].Unit != "bộ" {
		t.Errorf("furniture unit = %q, want item's own unit kept", p.FurnitureItems[0].Unit)
	}
	if !p.FurnitureItems[0].PricePerUnit.Equal(table.SellingPrice) {
		t.Error("service price not taken from selling price")
	}
}

func TestProjectUnitDefaults(t *testing.T) {
	furnitureCat := uuid.New()
	staffCat := uuid.New()
	categories := []CategoryMeta{
		{ID: furnitureCat, ItemType: enum.CategoryTypeService, Code: enum.ServiceCodeFurniture},
		{ID: staffCat, ItemType: enum.CategoryTypeService, Code: enum.ServiceCodeStaff},
	}

	items := []Item{
		{ID: uuid.New(), Name: "Cổng hoa", CategoryID: furnitureCat, SellingPrice: decimal.NewFromInt(800000)},
		{ID: uuid.New(), Name: "Đầu bếp", CategoryID: staffCat, SellingPrice: decimal.NewFromInt(300000)},
	}

	p := Project(items, categories)

	if got := p.FurnitureItems[0].Unit; got != enum.UnitSet {
		t.Errorf("furniture default unit = %q, want %q", got, enum.UnitSet)
	}
	if got := p.StaffItems[0].Unit; got != enum.UnitPerson {
		t.Errorf("staff default unit = %q, want %q", got, enum.UnitPerson)
	}
}

func TestProjectUnknownCategoryExcluded(t *testing.T) {
	stray := Item{ID: uuid.New(), Name: "Món mồ côi", CategoryID: uuid.New(), SellingPrice: decimal.NewFromInt(100000)}

	p := Project([]Item{stray}, nil)

	if len(p.FoodItems) != 0 || len(p.FurnitureItems) != 0 || len(p.StaffItems) != 0 {
		t.Errorf("stray item projected somewhere: %+v", p)
	}
	if _, ok := p.FoodByID(stray.ID); ok {
		t.Error("stray item reachable by ID")
	}
}

func TestProjectUnknownServiceCodeExcluded(t *testing.T) {
	oddCat := uuid.New()
	categories := []CategoryMeta{
		{ID: oddCat, ItemType: enum.CategoryTypeService, Code: "KARAOKE"},
	}
	item := Item{ID: uuid.New(), Name: "Dàn karaoke", CategoryID: oddCat, SellingPrice: decimal.NewFromInt(2000000)}

	p := Project([]Item{item}, categories)

	if len(p.FurnitureItems) != 0 || len(p.StaffItems) != 0 {
		t.Error("unrecognized service code still projected")
	}
}

func TestProjectionLookups(t *testing.T) {
	foodCat := uuid.New()
	staffCat := uuid.New()
	categories := []CategoryMeta{
		{ID: foodCat, ItemType: enum.CategoryTypeFood},
		{ID: staffCat, ItemType: enum.CategoryTypeService, Code: enum.ServiceCodeStaff},
	}
	dish := Item{ID: uuid.New(), Name: "Tôm hấp bia", CategoryID: foodCat, SellingPrice: decimal.NewFromInt(250000)}
	waiter := Item{ID: uuid.New(), Name: "Nhân viên phục vụ", CategoryID: staffCat, SellingPrice: decimal.NewFromInt(100000)}

	p := Project([]Item{dish, waiter}, categories)

	if got, ok := p.FoodByID(dish.ID); !ok || got.Name != dish.Name {
		t.Error("FoodByID missed a projected dish")
	}
	if _, ok := p.FoodByID(waiter.ID); ok {
		t.Error("FoodByID returned a service item")
	}
	if got, ok := p.ServiceByID(waiter.ID); !ok || got.Code != enum.ServiceCodeStaff {
		t.Error("ServiceByID missed a projected staff item")
	}
	if _, ok := p.ServiceByID(dish.ID); ok {
		t.Error("ServiceByID returned a food item")
	}
}
