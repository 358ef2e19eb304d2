package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tiecvui/api/internal/database"
	"github.com/tiecvui/api/internal/enum"
)

type mockCatalogStore struct {
	listItemsFn      func(ctx context.Context) ([]database.CatalogItem, error)
	listCategoriesFn func(ctx context.Context) ([]database.Category, error)
	listPresetsFn    func(ctx context.Context) ([]database.NotePreset, error)
}

func (m *mockCatalogStore) ListCatalogItems(ctx context.Context) ([]database.CatalogItem, error) {
	return m.listItemsFn(ctx)
}
func (m *mockCatalogStore) ListCategories(ctx context.Context) ([]database.Category, error) {
	return m.listCategoriesFn(ctx)
}
func (m *mockCatalogStore) ListNotePresets(ctx context.Context) ([]database.NotePreset, error) {
	return m.listPresetsFn(ctx)
}

func makeNumeric(t *testing.T, val string) pgtype.Numeric {
	t.Helper()
	var n pgtype.Numeric
	if err := n.Scan(val); err != nil {
		t.Fatalf("scan numeric %q: %v", val, err)
	}
	return n
}

func TestRepositoryLoad(t *testing.T) {
	foodCat := uuid.New()
	dishID := uuid.New()

	store := &mockCatalogStore{
		listItemsFn: func(ctx context.Context) ([]database.CatalogItem, error) {
			return []database.CatalogItem{
				{
					ID:           dishID,
					CategoryID:   foodCat,
					Name:         "Gà nướng mật ong",
					SellingPrice: makeNumeric(t, "200000.00"),
					CostPrice:    makeNumeric(t, "120000.00"),
					Keywords:     pgtype.Text{String: "ga,nuong", Valid: true},
				},
			}, nil
		},
		listCategoriesFn: func(ctx context.Context) ([]database.Category, error) {
			return []database.Category{
				{ID: foodCat, Name: "Món chính", ItemType: enum.CategoryTypeFood},
			}, nil
		},
		listPresetsFn: func(ctx context.Context) ([]database.NotePreset, error) {
			return []database.NotePreset{
				{ID: uuid.New(), Content: "Đặt cọc 30% khi xác nhận báo giá", SortOrder: 1},
				{ID: uuid.New(), Content: "Giá đã bao gồm phục vụ", SortOrder: 2},
			}, nil
		},
	}

	proj, presets, err := NewRepository(store).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(proj.FoodItems) != 1 {
		t.Fatalf("got %d food items, want 1", len(proj.FoodItems))
	}
	dish := proj.FoodItems[0]
	if dish.ID != dishID || dish.Keywords != "ga,nuong" {
		t.Errorf("dish = %+v", dish)
	}
	if !dish.SellingPrice.Equal(decimal.NewFromInt(200000)) {
		t.Errorf("SellingPrice = %s, want 200000", dish.SellingPrice)
	}
	if !dish.CostPrice.Equal(decimal.NewFromInt(120000)) {
		t.Errorf("CostPrice = %s, want 120000", dish.CostPrice)
	}

	want := []string{"Đặt cọc 30% khi xác nhận báo giá", "Giá đã bao gồm phục vụ"}
	if !reflect.DeepEqual(presets, want) {
		t.Errorf("presets = %v", presets)
	}
}

func TestRepositoryLoadStoreError(t *testing.T) {
	wantErr := errors.New("connection refused")
	store := &mockCatalogStore{
		listItemsFn: func(ctx context.Context) ([]database.CatalogItem, error) {
			return nil, wantErr
		},
	}

	if _, _, err := NewRepository(store).Load(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want wrapped %v", err, wantErr)
	}
}

func TestRepositoryLoadNullOptionals(t *testing.T) {
	furnitureCat := uuid.New()
	store := &mockCatalogStore{
		listItemsFn: func(ctx context.Context) ([]database.CatalogItem, error) {
			return []database.CatalogItem{
				{
					ID:           uuid.New(),
					CategoryID:   furnitureCat,
					Name:         "Cổng hoa trang trí",
					SellingPrice: makeNumeric(t, "800000.00"),
					// Uom, Keywords, CostPrice left null
				},
			}, nil
		},
		listCategoriesFn: func(ctx context.Context) ([]database.Category, error) {
			return []database.Category{
				{ID: furnitureCat, ItemType: enum.CategoryTypeService,
					Code: pgtype.Text{String: enum.ServiceCodeFurniture, Valid: true}},
			}, nil
		},
		listPresetsFn: func(ctx context.Context) ([]database.NotePreset, error) {
			return nil, nil
		},
	}

	proj, _, err := NewRepository(store).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(proj.FurnitureItems) != 1 {
		t.Fatalf("got %d furniture items, want 1", len(proj.FurnitureItems))
	}
	// Null unit falls back to the furniture default.
	if got := proj.FurnitureItems[0].Unit; got != enum.UnitSet {
		t.Errorf("Unit = %q, want %q", got, enum.UnitSet)
	}
}
