package quote

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiecvui/api/internal/catalog"
)

// PayloadItem is one food line in the submission shape: one table's worth
// of the dish, multiplied out by the table count.
type PayloadItem struct {
	ItemID     uuid.UUID       `json:"item_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// PayloadService is one service line (furniture with a quantity, or a staff
// item billed at the shared headcount).
type PayloadService struct {
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Payload is the external submission shape handed to the create-quote API.
type Payload struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`
	EventType     string `json:"event_type"`
	EventAddress  string `json:"event_address"`
	EventAt       string `json:"event_at,omitempty"`
	TableCount    int    `json:"table_count"`
	GuestCount    int    `json:"guest_count,omitempty"`
	Notes         string `json:"notes,omitempty"`

	Items    []PayloadItem    `json:"items"`
	Services []PayloadService `json:"services"`

	StaffCount           int             `json:"staff_count"`
	DiscountFurniturePct decimal.Decimal `json:"discount_furniture_pct"`
	DiscountStaffPct     decimal.Decimal `json:"discount_staff_pct"`
	DiscountOrderPct     decimal.Decimal `json:"discount_order_pct"`
	IncludeVAT           bool            `json:"include_vat"`
	VATRatePct           decimal.Decimal `json:"vat_rate_pct"`
	VATAmount            decimal.Decimal `json:"vat_amount"`
	GrandTotal           decimal.Decimal `json:"grand_total"`
}

// BuildPayload converts the session state into the submission shape. Pure;
// it assumes the form already passed the step-1 gate and has no failure
// mode of its own.
//
// Asymmetry with ComputeTotals: pricing bills staff at the first staff
// item's rate only, but the payload emits one line per staff item, each at
// the shared headcount. Preserved deliberately.
func BuildPayload(form *FormFields, presetNote string, sel *Selection, params Params,
	furnitureItems, staffItems []catalog.ServiceItem, totals Totals) Payload {

	p := Payload{
		CustomerName:  form.Values[FieldCustomerName],
		CustomerPhone: form.Values[FieldCustomerPhone],
		CustomerEmail: form.Values[FieldCustomerEmail],
		EventType:     form.Values[FieldEventType],
		EventAddress:  form.Values[FieldEventAddress],
		EventAt:       combineEventAt(form.Values[FieldEventDate], form.Values[FieldEventTime]),
		TableCount:    params.TableCount,
		Notes:         combineNotes(form.Values[FieldNotes], presetNote),

		StaffCount:           sel.StaffCount(),
		DiscountFurniturePct: params.DiscountFurniturePct,
		DiscountStaffPct:     params.DiscountStaffPct,
		DiscountOrderPct:     params.DiscountOrderPct,
		IncludeVAT:           params.IncludeVAT,
		VATRatePct:           decimal.Zero,
		VATAmount:            totals.VATAmount,
		GrandTotal:           totals.GrandTotal,
	}
	if params.IncludeVAT {
		p.VATRatePct = VATRatePct
	}
	if n, err := strconv.Atoi(strings.TrimSpace(form.Values[FieldGuestCount])); err == nil {
		p.GuestCount = n
	}

	tables := decimal.NewFromInt(int64(params.TableCount))
	for _, it := range sel.FoodItems() {
		p.Items = append(p.Items, PayloadItem{
			ItemID:     it.ID,
			Quantity:   params.TableCount,
			UnitPrice:  it.SellingPrice,
			TotalPrice: it.SellingPrice.Mul(tables),
		})
	}

	for _, svc := range furnitureItems {
		qty := sel.ServiceQuantity(svc.ID)
		if qty == 0 {
			continue
		}
		p.Services = append(p.Services, PayloadService{
			Name:       svc.Name,
			Quantity:   qty,
			UnitPrice:  svc.PricePerUnit,
			TotalPrice: svc.PricePerUnit.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	if staff := sel.StaffCount(); staff > 0 {
		headcount := decimal.NewFromInt(int64(staff))
		for _, svc := range staffItems {
			p.Services = append(p.Services, PayloadService{
				Name:       svc.Name,
				Quantity:   staff,
				UnitPrice:  svc.PricePerUnit,
				TotalPrice: svc.PricePerUnit.Mul(headcount),
			})
		}
	}

	return p
}

// combineNotes joins the free-text notes and the chosen preset with a
// newline, omitting the join when either side is empty.
func combineNotes(freeText, preset string) string {
	switch {
	case freeText == "":
		return preset
	case preset == "":
		return freeText
	}
	return freeText + "\n" + preset
}

// combineEventAt folds date and time into one timestamp string; empty when
// no date was entered.
func combineEventAt(date, timeOfDay string) string {
	if date == "" {
		return ""
	}
	if timeOfDay == "" {
		return date
	}
	return date + " " + timeOfDay
}
