package session

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiecvui/api/internal/catalog"
	"github.com/tiecvui/api/internal/quote"
)

// Errors returned by session operations.
var (
	ErrItemNotFound    = errors.New("item not found in catalog")
	ErrServiceNotFound = errors.New("service item not found in catalog")
	ErrStaleImport     = errors.New("bulk import superseded by a newer request")
)

// Broadcaster fans an event out to everyone watching a session.
// Satisfied by *ws.Hub.
type Broadcaster interface {
	Broadcast(room uuid.UUID, eventType string, payload any)
}

// Session owns one draft quote: the step-1 form, the selection, the pricing
// parameters, and the wizard position. A session has a single writer; every
// mutation happens under the session lock and ends with a fresh totals
// derivation pushed to watchers. Totals are never stored, only derived.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu         sync.Mutex
	proj       *catalog.Projection
	form       *quote.FormFields
	sel        *quote.Selection
	params     quote.Params
	wizard     *quote.Wizard
	presetNote string
	importGen  uint64

	broadcast Broadcaster
}

const totalsEvent = "totals_updated"

// totalsLocked derives fresh totals. Callers hold s.mu.
func (s *Session) totalsLocked() quote.Totals {
	return quote.ComputeTotals(s.sel, s.params, s.proj.FurnitureItems, s.proj.StaffItems)
}

// publishLocked derives totals and pushes them to watchers. Callers hold s.mu.
func (s *Session) publishLocked() quote.Totals {
	totals := s.totalsLocked()
	if s.broadcast != nil {
		s.broadcast.Broadcast(s.ID, totalsEvent, totals)
	}
	return totals
}

// Totals derives the current pricing breakdown.
func (s *Session) Totals() quote.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

// Profit derives the current menu margin analysis.
func (s *Session) Profit() quote.ProfitSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return quote.AnalyzeProfit(s.sel, s.params.TableCount)
}

// ToggleFood toggles a food item and returns the refreshed totals.
func (s *Session) ToggleFood(itemID uuid.UUID) (quote.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.proj.FoodByID(itemID)
	if !ok {
		return quote.Totals{}, ErrItemNotFound
	}
	s.sel.ToggleFood(item)
	return s.publishLocked(), nil
}

// SetServiceQuantity sets a furniture/staff item quantity (clamped to >= 0).
func (s *Session) SetServiceQuantity(serviceID uuid.UUID, qty int) (quote.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.proj.ServiceByID(serviceID); !ok {
		return quote.Totals{}, ErrServiceNotFound
	}
	s.sel.SetServiceQuantity(serviceID, qty)
	return s.publishLocked(), nil
}

// SetStaffCount sets the staff headcount (clamped to >= 0).
func (s *Session) SetStaffCount(n int) quote.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sel.SetStaffCount(n)
	return s.publishLocked()
}

// SetParams updates table count, discounts, and the VAT flag. Discount
// percentages are clamped to [0,100] here, at the point of entry; the
// calculator treats in-range values as a precondition. Table count floors
// at 1.
func (s *Session) SetParams(tableCount int, furniturePct, staffPct, orderPct decimal.Decimal, includeVAT bool) quote.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tableCount < 1 {
		tableCount = 1
	}
	s.params = quote.Params{
		TableCount:           tableCount,
		DiscountFurniturePct: quote.ClampPercent(furniturePct),
		DiscountStaffPct:     quote.ClampPercent(staffPct),
		DiscountOrderPct:     quote.ClampPercent(orderPct),
		IncludeVAT:           includeVAT,
	}
	s.form.Set(quote.FieldTableCount, strconv.Itoa(tableCount))
	return s.publishLocked()
}

// SetField stores a step-1 form value, refreshing that field's validation
// error. A parseable table_count is mirrored into the pricing parameters so
// the two never drift.
func (s *Session) SetField(field, value string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form.Set(field, value)
	if field == quote.FieldTableCount {
		if n, err := strconv.Atoi(value); err == nil && n >= 1 {
			s.params.TableCount = n
			s.publishLocked()
		}
	}
	return copyMap(s.form.Errors)
}

// SetPresetNote records the chosen quick-select note.
func (s *Session) SetPresetNote(note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presetNote = note
}

// Next advances the wizard; from step 1 the gate runs first. Returns the
// resulting step and the (possibly freshly populated) error map.
func (s *Session) Next() (int, map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wizard.Next()
	return s.wizard.Step(), copyMap(s.form.Errors)
}

// Back moves the wizard back one step; at step 1 it exits the wizard, which
// discards this session.
func (s *Session) Back() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wizard.Back()
	return s.wizard.Step()
}

// JumpTo jumps from the review step to an earlier step.
func (s *Session) JumpTo(target int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.wizard.JumpTo(target); err != nil {
		return s.wizard.Step(), err
	}
	return s.wizard.Step(), nil
}

// Step returns the current wizard step.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.Step()
}

// BulkImport matches pasted text and selects the top candidate per line.
// The match call runs outside the session lock; if a newer import starts
// before this one resolves, the late result is discarded rather than
// applied. A matcher failure leaves the selection untouched.
func (s *Session) BulkImport(ctx context.Context, m quote.Matcher, text string) (quote.ImportResult, error) {
	s.mu.Lock()
	s.importGen++
	gen := s.importGen
	s.mu.Unlock()

	lines := quote.PrepareLines(text)
	if len(lines) == 0 {
		return quote.ImportResult{}, nil
	}

	matches, err := m.Match(ctx, lines)
	if err != nil {
		return quote.ImportResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.importGen {
		return quote.ImportResult{}, ErrStaleImport
	}

	result := quote.ApplyMatches(lines, matches, s.proj, s.sel)
	if len(result.Added) > 0 {
		s.publishLocked()
	}
	return result, nil
}

// Payload builds the submission shape from the current state.
func (s *Session) Payload() quote.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := s.totalsLocked()
	return quote.BuildPayload(s.form, s.presetNote, s.sel, s.params,
		s.proj.FurnitureItems, s.proj.StaffItems, totals)
}

// ValidateGate re-runs the step-1 gate check, for server-side use at
// submission time.
func (s *Session) ValidateGate() (map[string]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.ValidateAll()
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
