package database

import "context"

const listCategories = `
SELECT id, name, item_type, code, sort_order, is_active, created_at
FROM categories
WHERE is_active = true
ORDER BY sort_order, name
`

func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ItemType, &c.Code, &c.SortOrder, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

const listCatalogItems = `
SELECT id, category_id, name, selling_price, cost_price, uom, keywords, is_active, created_at
FROM catalog_items
WHERE is_active = true
ORDER BY name
`

func (q *Queries) ListCatalogItems(ctx context.Context) ([]CatalogItem, error) {
	rows, err := q.db.Query(ctx, listCatalogItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CatalogItem
	for rows.Next() {
		var it CatalogItem
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.Name, &it.SellingPrice, &it.CostPrice, &it.Uom, &it.Keywords, &it.IsActive, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

const listNotePresets = `
SELECT id, content, sort_order
FROM note_presets
ORDER BY sort_order
`

func (q *Queries) ListNotePresets(ctx context.Context) ([]NotePreset, error) {
	rows, err := q.db.Query(ctx, listNotePresets)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []NotePreset
	for rows.Next() {
		var p NotePreset
		if err := rows.Scan(&p.ID, &p.Content, &p.SortOrder); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}
