package quote

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tiecvui/api/internal/catalog"
)

func TestBuildPayloadItems(t *testing.T) {
	dish := foodItem("Gà nướng mật ong", 200000, 120000)

	sel := NewSelection()
	sel.ToggleFood(dish)

	params := Params{TableCount: 10}
	totals := ComputeTotals(sel, params, nil, nil)
	p := BuildPayload(validForm(), "", sel, params, nil, nil, totals)

	if len(p.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(p.Items))
	}
	item := p.Items[0]
	if item.ItemID != dish.ID {
		t.Error("item id mismatch")
	}
	if item.Quantity != 10 {
		t.Errorf("Quantity = %d, want table count 10", item.Quantity)
	}
	if !item.UnitPrice.Equal(decimal.NewFromInt(200000)) {
		t.Errorf("UnitPrice = %s, want 200000", item.UnitPrice)
	}
	if !item.TotalPrice.Equal(decimal.NewFromInt(2000000)) {
		t.Errorf("TotalPrice = %s, want 2000000", item.TotalPrice)
	}
}

func TestBuildPayloadEmitsEveryStaffItem(t *testing.T) {
	waiter := staffItem("Nhân viên phục vụ", 100000)
	chef := staffItem("Đầu bếp tại chỗ", 300000)
	table := furnitureItem("Bộ bàn ghế tiệc", 500000)
	unused := furnitureItem("Cổng hoa trang trí", 800000)

	sel := NewSelection()
	sel.SetServiceQuantity(table.ID, 2)
	sel.SetStaffCount(3)

	params := Params{TableCount: 1}
	furniture := []catalog.ServiceItem{table, unused}
	staff := []catalog.ServiceItem{waiter, chef}
	totals := ComputeTotals(sel, params, furniture, staff)

	p := BuildPayload(validForm(), "", sel, params, furniture, staff, totals)

	// One furniture line (qty > 0 only) plus a line per staff item.
	if len(p.Services) != 3 {
		t.Fatalf("got %d service lines, want 3", len(p.Services))
	}

	if p.Services[0].Name != table.Name || p.Services[0].Quantity != 2 {
		t.Errorf("furniture line wrong: %+v", p.Services[0])
	}
	if !p.Services[0].TotalPrice.Equal(decimal.NewFromInt(1000000)) {
		t.Errorf("furniture TotalPrice = %s, want 1000000", p.Services[0].TotalPrice)
	}

	// Both staff items are billed at the shared headcount, even though the
	// pricing cascade only uses the first one's rate.
	for i, svc := range []catalog.ServiceItem{waiter, chef} {
		line := p.Services[1+i]
		if line.Name != svc.Name {
			t.Errorf("staff line %d name = %q, want %q", i, line.Name, svc.Name)
		}
		if line.Quantity != 3 {
			t.Errorf("staff line %d quantity = %d, want 3", i, line.Quantity)
		}
		if !line.TotalPrice.Equal(svc.PricePerUnit.Mul(decimal.NewFromInt(3))) {
			t.Errorf("staff line %d total = %s", i, line.TotalPrice)
		}
	}
}

func TestBuildPayloadNoStaffLinesWhenHeadcountZero(t *testing.T) {
	waiter := staffItem("Nhân viên phục vụ", 100000)
	sel := NewSelection()

	params := Params{TableCount: 1}
	staff := []catalog.ServiceItem{waiter}
	totals := ComputeTotals(sel, params, nil, staff)

	p := BuildPayload(validForm(), "", sel, params, nil, staff, totals)
	if len(p.Services) != 0 {
		t.Errorf("got %d service lines with zero headcount, want 0", len(p.Services))
	}
}

func TestCombineNotes(t *testing.T) {
	tests := []struct {
		name     string
		freeText string
		preset   string
		want     string
	}{
		{"both empty", "", "", ""},
		{"only free text", "mang dư 2 bộ chén", "", "mang dư 2 bộ chén"},
		{"only preset", "", "Đặt cọc 30%", "Đặt cọc 30%"},
		{"both", "mang dư 2 bộ chén", "Đặt cọc 30%", "mang dư 2 bộ chén\nĐặt cọc 30%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := combineNotes(tt.freeText, tt.preset); got != tt.want {
				t.Errorf("combineNotes(%q, %q) = %q, want %q", tt.freeText, tt.preset, got, tt.want)
			}
		})
	}
}

func TestCombineEventAt(t *testing.T) {
	tests := []struct {
		date string
		time string
		want string
	}{
		{"", "18:00", ""},
		{"2026-10-20", "", "2026-10-20"},
		{"2026-10-20", "18:00", "2026-10-20 18:00"},
	}
	for _, tt := range tests {
		if got := combineEventAt(tt.date, tt.time); got != tt.want {
			t.Errorf("combineEventAt(%q, %q) = %q, want %q", tt.date, tt.time, got, tt.want)
		}
	}
}

func TestBuildPayloadVATFields(t *testing.T) {
	dish := foodItem("Gà nướng mật ong", 200000, 120000)
	sel := NewSelection()
	sel.ToggleFood(dish)

	params := Params{TableCount: 1, IncludeVAT: true}
	totals := ComputeTotals(sel, params, nil, nil)
	p := BuildPayload(validForm(), "", sel, params, nil, nil, totals)

	if !p.VATRatePct.Equal(decimal.NewFromInt(10)) {
		t.Errorf("VATRatePct = %s with VAT on, want 10", p.VATRatePct)
	}
	if !p.VATAmount.Equal(totals.VATAmount) || !p.GrandTotal.Equal(totals.GrandTotal) {
		t.Error("payload VAT/grand total diverged from derived totals")
	}

	params.IncludeVAT = false
	totals = ComputeTotals(sel, params, nil, nil)
	p = BuildPayload(validForm(), "", sel, params, nil, nil, totals)
	if !p.VATRatePct.IsZero() {
		t.Errorf("VATRatePct = %s with VAT off, want 0", p.VATRatePct)
	}
}

func TestBuildPayloadFormFields(t *testing.T) {
	f := validForm()
	f.Values[FieldGuestCount] = "120"
	f.Values[FieldNotes] = "mang dư 2 bộ chén"

	sel := NewSelection()
	params := Params{TableCount: 10}
	totals := ComputeTotals(sel, params, nil, nil)

	p := BuildPayload(f, "Đặt cọc 30% khi xác nhận báo giá", sel, params, nil, nil, totals)

	if p.CustomerName != "Nguyễn Văn An" || p.CustomerPhone != "0901234567" {
		t.Error("customer fields not carried through")
	}
	if p.EventAt != "2026-10-20 18:00" {
		t.Errorf("EventAt = %q", p.EventAt)
	}
	if p.GuestCount != 120 {
		t.Errorf("GuestCount = %d, want 120", p.GuestCount)
	}
	if p.Notes != "mang dư 2 bộ chén\nĐặt cọc 30% khi xác nhận báo giá" {
		t.Errorf("Notes = %q", p.Notes)
	}
}
