package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tiecvui/api/internal/database"
	"github.com/tiecvui/api/internal/enum"
	"github.com/tiecvui/api/internal/quote"
)

const maxQuoteNumberRetries = 3

// ErrEmptyItems is returned when a payload carries no food lines.
var ErrEmptyItems = errors.New("at least one food item is required")

// TxBeginner starts a new database transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// QuoteStore defines the DB methods needed to persist quotes.
// Satisfied by *database.Queries (and its WithTx variant).
type QuoteStore interface {
	GetNextQuoteSeq(ctx context.Context) (int32, error)
	CreateQuote(ctx context.Context, arg database.CreateQuoteParams) (database.Quote, error)
	CreateQuoteItem(ctx context.Context, arg database.CreateQuoteItemParams) (database.QuoteItem, error)
	CreateQuoteServiceLine(ctx context.Context, arg database.CreateQuoteServiceLineParams) (database.QuoteServiceLine, error)
}

// NewQuoteStore creates a QuoteStore from a DBTX (pool or tx).
type NewQuoteStore func(db database.DBTX) QuoteStore

// QuoteService persists submitted quotes.
type QuoteService struct {
	pool     TxBeginner
	newStore NewQuoteStore
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(pool TxBeginner, newStore NewQuoteStore) *QuoteService {
	return &QuoteService{pool: pool, newStore: newStore}
}

// SubmitResult is the persisted quote with its lines.
type SubmitResult struct {
	Quote    database.Quote
	Items    []database.QuoteItem
	Services []database.QuoteServiceLine
}

// Submit persists a built payload atomically: quote header, food lines,
// service lines in one transaction. Retries on quote_number unique
// constraint violations (concurrent submissions can read the same MAX).
func (s *QuoteService) Submit(ctx context.Context, p quote.Payload, createdBy uuid.UUID) (*SubmitResult, error) {
	if len(p.Items) == 0 {
		return nil, ErrEmptyItems
	}

	var lastErr error
	for attempt := 0; attempt < maxQuoteNumberRetries; attempt++ {
		result, err := s.submitTx(ctx, p, createdBy)
		if err == nil {
			return result, nil
		}
		if isQuoteNumberConflict(err) {
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, lastErr
}

// isQuoteNumberConflict checks for a unique violation on the quote number
// (pgconn error code 23505).
func isQuoteNumberConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "quotes_quote_number_key"
	}
	return false
}

func (s *QuoteService) submitTx(ctx context.Context, p quote.Payload, createdBy uuid.UUID) (*SubmitResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	nextSeq, err := store.GetNextQuoteSeq(ctx)
	if err != nil {
		return nil, fmt.Errorf("get next quote seq: %w", err)
	}
	quoteNumber := fmt.Sprintf("TVQ-%04d", nextSeq)

	qt, err := store.CreateQuote(ctx, database.CreateQuoteParams{
		QuoteSeq:             nextSeq,
		QuoteNumber:          quoteNumber,
		CustomerName:         p.CustomerName,
		CustomerPhone:        p.CustomerPhone,
		CustomerEmail:        optionalText(p.CustomerEmail),
		EventType:            p.EventType,
		EventAddress:         p.EventAddress,
		EventAt:              optionalText(p.EventAt),
		TableCount:           int32(p.TableCount),
		GuestCount:           optionalInt4(p.GuestCount),
		StaffCount:           int32(p.StaffCount),
		Notes:                optionalText(p.Notes),
		DiscountFurniturePct: decimalToNumeric(p.DiscountFurniturePct),
		DiscountStaffPct:     decimalToNumeric(p.DiscountStaffPct),
		DiscountOrderPct:     decimalToNumeric(p.DiscountOrderPct),
		IncludeVat:           p.IncludeVAT,
		VatRate:              decimalToNumeric(p.VATRatePct),
		VatAmount:            decimalToNumeric(p.VATAmount),
		GrandTotal:           decimalToNumeric(p.GrandTotal),
		Status:               enum.QuoteStatusSubmitted,
		CreatedBy:            createdBy,
	})
	if err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}

	var items []database.QuoteItem
	for _, line := range p.Items {
		item, err := store.CreateQuoteItem(ctx, database.CreateQuoteItemParams{
			QuoteID:    qt.ID,
			ItemID:     line.ItemID,
			Quantity:   int32(line.Quantity),
			UnitPrice:  decimalToNumeric(line.UnitPrice),
			TotalPrice: decimalToNumeric(line.TotalPrice),
		})
		if err != nil {
			return nil, fmt.Errorf("create quote item: %w", err)
		}
		items = append(items, item)
	}

	var services []database.QuoteServiceLine
	for _, line := range p.Services {
		sl, err := store.CreateQuoteServiceLine(ctx, database.CreateQuoteServiceLineParams{
			QuoteID:    qt.ID,
			Name:       line.Name,
			Quantity:   int32(line.Quantity),
			UnitPrice:  decimalToNumeric(line.UnitPrice),
			TotalPrice: decimalToNumeric(line.TotalPrice),
		})
		if err != nil {
			return nil, fmt.Errorf("create quote service line: %w", err)
		}
		services = append(services, sl)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &SubmitResult{
		Quote:    qt,
		Items:    items,
		Services: services,
	}, nil
}

// --- Helpers ---

func optionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func optionalInt4(n int) pgtype.Int4 {
	if n == 0 {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(n), Valid: true}
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.StringFixed(2))
	return n
}
