package quote

import (
	"github.com/shopspring/decimal"

	"github.com/tiecvui/api/internal/catalog"
)

// VATRatePct is the fixed VAT rate applied when a quote includes VAT.
var VATRatePct = decimal.NewFromInt(10)

var hundred = decimal.NewFromInt(100)

// Params are the user-set pricing inputs. Discount percentages are clamped
// to [0,100] at the point of entry; ComputeTotals trusts them to be in
// range already.
type Params struct {
	TableCount           int
	DiscountFurniturePct decimal.Decimal
	DiscountStaffPct     decimal.Decimal
	DiscountOrderPct     decimal.Decimal
	IncludeVAT           bool
}

// Totals is the full derived pricing breakdown. Recomputed from scratch on
// every evaluation; never stored as authoritative state.
type Totals struct {
	MenuTotalPerTable            decimal.Decimal `json:"menu_total_per_table"`
	MenuTotalScaled              decimal.Decimal `json:"menu_total_scaled"`
	FurnitureSubtotal            decimal.Decimal `json:"furniture_subtotal"`
	StaffSubtotal                decimal.Decimal `json:"staff_subtotal"`
	ServiceSubtotal              decimal.Decimal `json:"service_subtotal"`
	FurnitureDiscountAmount      decimal.Decimal `json:"furniture_discount_amount"`
	StaffDiscountAmount          decimal.Decimal `json:"staff_discount_amount"`
	ServiceSubtotalAfterDiscount decimal.Decimal `json:"service_subtotal_after_discount"`
	PreOrderDiscountSubtotal     decimal.Decimal `json:"pre_order_discount_subtotal"`
	OrderDiscountAmount          decimal.Decimal `json:"order_discount_amount"`
	Subtotal                     decimal.Decimal `json:"subtotal"`
	VATAmount                    decimal.Decimal `json:"vat_amount"`
	GrandTotal                   decimal.Decimal `json:"grand_total"`
}

// ComputeTotals derives the complete pricing breakdown. Pure: identical
// inputs yield identical outputs. The step order below is fixed; later
// steps depend on earlier ones being exact.
//
// The staff subtotal uses only the first staff item's rate regardless of
// how many staff items exist, while the submission payload emits a line
// per staff item. The mismatch is carried over from the billing rules as
// they stand today; do not unify without product confirmation.
func ComputeTotals(sel *Selection, params Params, furnitureItems, staffItems []catalog.ServiceItem) Totals {
	tables := decimal.NewFromInt(int64(params.TableCount))

	// 1. Menu total for one table: order-independent sum.
	menuPerTable := decimal.Zero
	for _, it := range sel.foodItems {
		menuPerTable = menuPerTable.Add(it.SellingPrice)
	}

	// 2. Scale by table count.
	menuScaled := menuPerTable.Mul(tables)

	// 3. Furniture subtotal.
	furnitureSubtotal := decimal.Zero
	for _, svc := range furnitureItems {
		qty := sel.ServiceQuantity(svc.ID)
		if qty == 0 {
			continue
		}
		furnitureSubtotal = furnitureSubtotal.Add(svc.PricePerUnit.Mul(decimal.NewFromInt(int64(qty))))
	}

	// 4. Staff subtotal: headcount times the first staff item's rate.
	staffSubtotal := decimal.Zero
	if len(staffItems) > 0 && sel.staffCount > 0 {
		staffSubtotal = staffItems[0].PricePerUnit.Mul(decimal.NewFromInt(int64(sel.staffCount)))
	}

	// 5-6. Category-scoped discounts.
	furnitureDiscount := furnitureSubtotal.Mul(params.DiscountFurniturePct).Div(hundred)
	staffDiscount := staffSubtotal.Mul(params.DiscountStaffPct).Div(hundred)

	// 7. Services after their discounts.
	serviceAfterDiscount := furnitureSubtotal.Sub(furnitureDiscount).Add(staffSubtotal.Sub(staffDiscount))

	// 8-10. Order-level discount over menu + discounted services.
	preOrderDiscount := menuScaled.Add(serviceAfterDiscount)
	orderDiscount := preOrderDiscount.Mul(params.DiscountOrderPct).Div(hundred)
	subtotal := preOrderDiscount.Sub(orderDiscount)

	// 11-12. Optional VAT, then the grand total.
	vatAmount := decimal.Zero
	if params.IncludeVAT {
		vatAmount = subtotal.Mul(VATRatePct).Div(hundred)
	}
	grandTotal := subtotal.Add(vatAmount)

	return Totals{
		MenuTotalPerTable:            menuPerTable,
		MenuTotalScaled:              menuScaled,
		FurnitureSubtotal:            furnitureSubtotal,
		StaffSubtotal:                staffSubtotal,
		ServiceSubtotal:              furnitureSubtotal.Add(staffSubtotal),
		FurnitureDiscountAmount:      furnitureDiscount,
		StaffDiscountAmount:          staffDiscount,
		ServiceSubtotalAfterDiscount: serviceAfterDiscount,
		PreOrderDiscountSubtotal:     preOrderDiscount,
		OrderDiscountAmount:          orderDiscount,
		Subtotal:                     subtotal,
		VATAmount:                    vatAmount,
		GrandTotal:                   grandTotal,
	}
}

// ClampPercent clamps a discount percentage to [0,100]. Values already in
// range are returned unchanged.
func ClampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
