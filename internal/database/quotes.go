package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getNextQuoteSeq = `
SELECT COALESCE(MAX(quote_seq), 0) + 1
FROM quotes
`

func (q *Queries) GetNextQuoteSeq(ctx context.Context) (int32, error) {
	row := q.db.QueryRow(ctx, getNextQuoteSeq)
	var next int32
	err := row.Scan(&next)
	return next, err
}

type CreateQuoteParams struct {
	QuoteSeq             int32
	QuoteNumber          string
	CustomerName         string
	CustomerPhone        string
	CustomerEmail        pgtype.Text
	EventType            string
	EventAddress         string
	EventAt              pgtype.Text
	TableCount           int32
	GuestCount           pgtype.Int4
	StaffCount           int32
	Notes                pgtype.Text
	DiscountFurniturePct pgtype.Numeric
	DiscountStaffPct     pgtype.Numeric
	DiscountOrderPct     pgtype.Numeric
	IncludeVat           bool
	VatRate              pgtype.Numeric
	VatAmount            pgtype.Numeric
	GrandTotal           pgtype.Numeric
	Status               string
	CreatedBy            uuid.UUID
}

const createQuote = `
INSERT INTO quotes (
	quote_seq, quote_number, customer_name, customer_phone, customer_email,
	event_type, event_address, event_at, table_count, guest_count, staff_count,
	notes, discount_furniture_pct, discount_staff_pct, discount_order_pct,
	include_vat, vat_rate, vat_amount, grand_total, status, created_by
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
	$12, $13, $14, $15, $16, $17, $18, $19, $20, $21
)
RETURNING id, quote_seq, quote_number, customer_name, customer_phone, customer_email,
	event_type, event_address, event_at, table_count, guest_count, staff_count,
	notes, discount_furniture_pct, discount_staff_pct, discount_order_pct,
	include_vat, vat_rate, vat_amount, grand_total, status, created_by, created_at
`

func (q *Queries) CreateQuote(ctx context.Context, arg CreateQuoteParams) (Quote, error) {
	row := q.db.QueryRow(ctx, createQuote,
		arg.QuoteSeq, arg.QuoteNumber, arg.CustomerName, arg.CustomerPhone, arg.CustomerEmail,
		arg.EventType, arg.EventAddress, arg.EventAt, arg.TableCount, arg.GuestCount, arg.StaffCount,
		arg.Notes, arg.DiscountFurniturePct, arg.DiscountStaffPct, arg.DiscountOrderPct,
		arg.IncludeVat, arg.VatRate, arg.VatAmount, arg.GrandTotal, arg.Status, arg.CreatedBy,
	)
	var qt Quote
	err := row.Scan(&qt.ID, &qt.QuoteSeq, &qt.QuoteNumber, &qt.CustomerName, &qt.CustomerPhone, &qt.CustomerEmail,
		&qt.EventType, &qt.EventAddress, &qt.EventAt, &qt.TableCount, &qt.GuestCount, &qt.StaffCount,
		&qt.Notes, &qt.DiscountFurniturePct, &qt.DiscountStaffPct, &qt.DiscountOrderPct,
		&qt.IncludeVat, &qt.VatRate, &qt.VatAmount, &qt.GrandTotal, &qt.Status, &qt.CreatedBy, &qt.CreatedAt)
	return qt, err
}

type CreateQuoteItemParams struct {
	QuoteID    uuid.UUID
	ItemID     uuid.UUID
	Quantity   int32
	UnitPrice  pgtype.Numeric
	TotalPrice pgtype.Numeric
}

const createQuoteItem = `
INSERT INTO quote_items (quote_id, item_id, quantity, unit_price, total_price)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, quote_id, item_id, quantity, unit_price, total_price
`

func (q *Queries) CreateQuoteItem(ctx context.Context, arg CreateQuoteItemParams) (QuoteItem, error) {
	row := q.db.QueryRow(ctx, createQuoteItem,
		arg.QuoteID, arg.ItemID, arg.Quantity, arg.UnitPrice, arg.TotalPrice)
	var it QuoteItem
	err := row.Scan(&it.ID, &it.QuoteID, &it.ItemID, &it.Quantity, &it.UnitPrice, &it.TotalPrice)
	return it, err
}

type CreateQuoteServiceLineParams struct {
	QuoteID    uuid.UUID
	Name       string
	Quantity   int32
	UnitPrice  pgtype.Numeric
	TotalPrice pgtype.Numeric
}

const createQuoteServiceLine = `
INSERT INTO quote_service_lines (quote_id, name, quantity, unit_price, total_price)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, quote_id, name, quantity, unit_price, total_price
`

func (q *Queries) CreateQuoteServiceLine(ctx context.Context, arg CreateQuoteServiceLineParams) (QuoteServiceLine, error) {
	row := q.db.QueryRow(ctx, createQuoteServiceLine,
		arg.QuoteID, arg.Name, arg.Quantity, arg.UnitPrice, arg.TotalPrice)
	var sl QuoteServiceLine
	err := row.Scan(&sl.ID, &sl.QuoteID, &sl.Name, &sl.Quantity, &sl.UnitPrice, &sl.TotalPrice)
	return sl, err
}
