package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

type Category struct {
	ID        uuid.UUID
	Name      string
	ItemType  string      // FOOD or SERVICE
	Code      pgtype.Text // FURNITURE_DECOR or STAFF when ItemType = SERVICE
	SortOrder int32
	IsActive  bool
	CreatedAt time.Time
}

type CatalogItem struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	Name         string
	SellingPrice pgtype.Numeric
	CostPrice    pgtype.Numeric
	Uom          pgtype.Text
	Keywords     pgtype.Text // CSV, used by the matcher
	IsActive     bool
	CreatedAt    time.Time
}

type NotePreset struct {
	ID        uuid.UUID
	Content   string
	SortOrder int32
}

type Quote struct {
	ID                   uuid.UUID
	QuoteSeq             int32
	QuoteNumber          string
	CustomerName         string
	CustomerPhone        string
	CustomerEmail        pgtype.Text
	EventType            string
	EventAddress         string
	EventAt              pgtype.Text // combined "date time" string, absent when no date entered
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
	CreatedAt            time.Time
}

type QuoteItem struct {
	ID         uuid.UUID
	QuoteID    uuid.UUID
	ItemID     uuid.UUID
	Quantity   int32
	UnitPrice  pgtype.Numeric
	TotalPrice pgtype.Numeric
}

type QuoteServiceLine struct {
	ID         uuid.UUID
	QuoteID    uuid.UUID
	Name       string
	Quantity   int32
	UnitPrice  pgtype.Numeric
	TotalPrice pgtype.Numeric
}
