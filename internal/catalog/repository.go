package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tiecvui/api/internal/database"
)

// CatalogStore defines the database methods needed to load the catalog.
// Satisfied by *database.Queries; narrow interface for testability.
type CatalogStore interface {
	ListCatalogItems(ctx context.Context) ([]database.CatalogItem, error)
	ListCategories(ctx context.Context) ([]database.Category, error)
	ListNotePresets(ctx context.Context) ([]database.NotePreset, error)
}

// Repository loads the read-only catalog the quote engine consumes.
type Repository struct {
	store CatalogStore
}

// NewRepository creates a new Repository.
func NewRepository(store CatalogStore) *Repository {
	return &Repository{store: store}
}

// Load fetches catalog items, category metadata, and note presets, and
// returns the projected catalog ready for the quote engine.
func (r *Repository) Load(ctx context.Context) (*Projection, []string, error) {
	dbItems, err := r.store.ListCatalogItems(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list catalog items: %w", err)
	}
	dbCategories, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list categories: %w", err)
	}
	dbPresets, err := r.store.ListNotePresets(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list note presets: %w", err)
	}

	items := make([]Item, len(dbItems))
	for i, it := range dbItems {
		items[i] = Item{
			ID:           it.ID,
			Name:         it.Name,
			CategoryID:   it.CategoryID,
			SellingPrice: numericToDecimal(it.SellingPrice),
			CostPrice:    numericToDecimal(it.CostPrice),
			Unit:         textOrEmpty(it.Uom),
			Keywords:     textOrEmpty(it.Keywords),
		}
	}

	categories := make([]CategoryMeta, len(dbCategories))
	for i, c := range dbCategories {
		categories[i] = CategoryMeta{
			ID:       c.ID,
			ItemType: c.ItemType,
			Code:     textOrEmpty(c.Code),
		}
	}

	presets := make([]string, len(dbPresets))
	for i, p := range dbPresets {
		presets[i] = p.Content
	}

	return Project(items, categories), presets, nil
}

func textOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	val, err := n.Value()
	if err != nil || val == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val.(string))
	if err != nil {
		return decimal.Zero
	}
	return d
}
