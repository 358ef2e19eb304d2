package quote

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfitLine is the margin breakdown for one selected food item.
type ProfitLine struct {
	ItemID        uuid.UUID       `json:"item_id"`
	Name          string          `json:"name"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Profit        decimal.Decimal `json:"profit"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

// ProfitSummary aggregates menu margin per table and for the whole order.
// It reflects theoretical menu margin only: discounts and VAT never enter
// these figures.
type ProfitSummary struct {
	Lines []ProfitLine `json:"lines"`

	PerTableCost    decimal.Decimal `json:"per_table_cost"`
	PerTableSelling decimal.Decimal `json:"per_table_selling"`
	PerTableProfit  decimal.Decimal `json:"per_table_profit"`

	TotalCost     decimal.Decimal `json:"total_cost"`
	TotalSelling  decimal.Decimal `json:"total_selling"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

// AnalyzeProfit computes per-item and aggregate margin over the selected
// food items. Pure. Profit percent is exactly zero when the cost base is
// zero, never an error or a division blowup.
func AnalyzeProfit(sel *Selection, tableCount int) ProfitSummary {
	summary := ProfitSummary{
		PerTableCost:    decimal.Zero,
		PerTableSelling: decimal.Zero,
		PerTableProfit:  decimal.Zero,
		ProfitPercent:   decimal.Zero,
	}

	for _, it := range sel.foodItems {
		profit := it.SellingPrice.Sub(it.CostPrice)
		pct := decimal.Zero
		if it.CostPrice.IsPositive() {
			pct = profit.Div(it.CostPrice).Mul(hundred)
		}
		summary.Lines = append(summary.Lines, ProfitLine{
			ItemID:        it.ID,
			Name:          it.Name,
			CostPrice:     it.CostPrice,
			SellingPrice:  it.SellingPrice,
			Profit:        profit,
			ProfitPercent: pct,
		})
		summary.PerTableCost = summary.PerTableCost.Add(it.CostPrice)
		summary.PerTableSelling = summary.PerTableSelling.Add(it.SellingPrice)
	}
	summary.PerTableProfit = summary.PerTableSelling.Sub(summary.PerTableCost)

	tables := decimal.NewFromInt(int64(tableCount))
	summary.TotalCost = summary.PerTableCost.Mul(tables)
	summary.TotalSelling = summary.PerTableSelling.Mul(tables)
	summary.TotalProfit = summary.PerTableProfit.Mul(tables)

	if summary.TotalCost.IsPositive() {
		summary.ProfitPercent = summary.TotalProfit.Div(summary.TotalCost).Mul(hundred)
	}

	return summary
}
