package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiecvui/api/internal/enum"
	"github.com/tiecvui/api/internal/middleware"
	"github.com/tiecvui/api/internal/quote"
	"github.com/tiecvui/api/internal/service"
	"github.com/tiecvui/api/internal/session"
)

// Submitter persists a submitted quote. Satisfied by *service.QuoteService.
type Submitter interface {
	Submit(ctx context.Context, p quote.Payload, createdBy uuid.UUID) (*service.SubmitResult, error)
}

// QuoteSessionHandler drives the quote wizard over HTTP: one session per
// draft quote, every mutation answering with freshly derived totals.
type QuoteSessionHandler struct {
	sessions  *session.Store
	matcher   quote.Matcher
	submitter Submitter
}

// NewQuoteSessionHandler creates a new QuoteSessionHandler.
func NewQuoteSessionHandler(sessions *session.Store, m quote.Matcher, submitter Submitter) *QuoteSessionHandler {
	return &QuoteSessionHandler{sessions: sessions, matcher: m, submitter: submitter}
}

// RegisterRoutes registers quote-session endpoints on the given Chi router.
func (h *QuoteSessionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Route("/{sid}", func(r chi.Router) {
		r.Post("/food-items/{itemID}/toggle", h.ToggleFood)
		r.Put("/service-items/{itemID}/quantity", h.SetServiceQuantity)
		r.Put("/staff-count", h.SetStaffCount)
		r.Put("/params", h.SetParams)
		r.Put("/fields", h.SetFields)
		r.Put("/preset-note", h.SetPresetNote)
		r.Get("/totals", h.Totals)
		r.With(middleware.RequireRole(enum.UserRoleOwner, enum.UserRoleManager)).
			Get("/profit", h.Profit)
		r.Post("/wizard/next", h.WizardNext)
		r.Post("/wizard/back", h.WizardBack)
		r.Post("/wizard/jump", h.WizardJump)
		r.Post("/bulk-import", h.BulkImport)
		r.Post("/submit", h.Submit)
	})
}

// --- Request / Response types ---

type sessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Step      int       `json:"step"`
}

type totalsResponse struct {
	Totals quote.Totals `json:"totals"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type staffCountRequest struct {
	StaffCount int `json:"staff_count"`
}

type paramsRequest struct {
	TableCount           int             `json:"table_count"`
	DiscountFurniturePct decimal.Decimal `json:"discount_furniture_pct"`
	DiscountStaffPct     decimal.Decimal `json:"discount_staff_pct"`
	DiscountOrderPct     decimal.Decimal `json:"discount_order_pct"`
	IncludeVAT           bool            `json:"include_vat"`
}

type fieldsRequest struct {
	Fields map[string]string `json:"fields"`
}

type presetNoteRequest struct {
	Content string `json:"content"`
}

type stepResponse struct {
	Step   int               `json:"step"`
	Exited bool              `json:"exited,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

type jumpRequest struct {
	Step int `json:"step"`
}

type bulkImportRequest struct {
	Text string `json:"text"`
}

type submitResponse struct {
	QuoteID     uuid.UUID       `json:"quote_id"`
	QuoteNumber string          `json:"quote_number"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}

// --- Handlers ---

// Create opens a new quote session at step 1.
func (h *QuoteSessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.CreateSession()
	writeJSON(w, http.StatusCreated, sessionResponse{SessionID: sess.ID, Step: sess.Step()})
}

func (h *QuoteSessionHandler) getSession(w http.ResponseWriter, r *http.Request) *session.Session {
	sid, err := uuid.Parse(chi.URLParam(r, "sid"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return nil
	}
	sess, err := h.sessions.Get(sid)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return nil
	}
	return sess
}

// ToggleFood selects or deselects a menu item.
func (h *QuoteSessionHandler) ToggleFood(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}

	totals, err := sess.ToggleFood(itemID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, totalsResponse{Totals: totals})
}

// SetServiceQuantity updates a furniture/staff item quantity.
func (h *QuoteSessionHandler) SetServiceQuantity(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}

	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	totals, err := sess.SetServiceQuantity(itemID, req.Quantity)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, totalsResponse{Totals: totals})
}

// SetStaffCount updates the staff headcount.
func (h *QuoteSessionHandler) SetStaffCount(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}

	var req staffCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	writeJSON(w, http.StatusOK, totalsResponse{Totals: sess.SetStaffCount(req.StaffCount)})
}

// SetParams updates table count, discounts, and the VAT flag.
func (h *QuoteSessionHandler) SetParams(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}

	var req paramsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	totals := sess.SetParams(req.TableCount, req.DiscountFurniturePct,
		req.DiscountStaffPct, req.DiscountOrderPct, req.IncludeVAT)
	writeJSON(w, http.StatusOK, totalsResponse{Totals: totals})
}

// SetFields stores step-1 form values and returns the current error map.
func (h *QuoteSessionHandler) SetFields(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}

	var req fieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	errs := make(map[string]string)
	for field, value := range req.Fields {
		errs = sess.SetField(field, value)
	}
	writeJSON(w, http.StatusOK, map[string]any{"errors": errs})
}

// SetPresetNote records the chosen quick-select note.
func (h *QuoteSessionHandler) SetPresetNote(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}

	var req presetNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	sess.SetPresetNote(req.Content)
	w.WriteHeader(http.StatusNoContent)
}

// Totals returns the current derived pricing breakdown.
func (h *QuoteSessionHandler) Totals(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, http.StatusOK, totalsResponse{Totals: sess.Totals()})
}

// Profit returns the internal margin analysis. Cost prices are not for
// sales staff; the route is restricted to OWNER and MANAGER.
func (h *QuoteSessionHandler) Profit(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, http.StatusOK, sess.Profit())
}

// WizardNext advances the wizard; refused at step 1 until the gating fields
// validate.
func (h *QuoteSessionHandler) WizardNext(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}

	step, errs := sess.Next()
	writeJSON(w, http.StatusOK, stepResponse{Step: step, Errors: errs})
}

// WizardBack moves back one step; backing out of step 1 discards the
// session.
func (h *QuoteSessionHandler) WizardBack(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}

	step := sess.Back()
	_, err := h.sessions.Get(sess.ID)
	writeJSON(w, http.StatusOK, stepResponse{Step: step, Exited: err != nil})
}

// WizardJump jumps from the review step to an earlier step.
func (h *QuoteSessionHandler) WizardJump(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}

	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	step, err := sess.JumpTo(req.Step)
	if err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stepResponse{Step: step})
}

// BulkImport matches pasted order text against the menu and selects the top
// candidate per line. A matcher failure changes nothing and is safe to
// retry.
func (h *QuoteSessionHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}

	var req bulkImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := sess.BulkImport(r.Context(), h.matcher, req.Text)
	if err != nil {
		if errors.Is(err, session.ErrStaleImport) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "superseded by a newer import"})
			return
		}
		log.Printf("ERROR: bulk import: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "matching failed, nothing was selected"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Submit re-checks the step-1 gate, persists the quote, and discards the
// session.
func (h *QuoteSessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess := h.getSession(w, r)
	if sess == nil {
		return
	}

	if errs, ok := sess.ValidateGate(); !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	var createdBy uuid.UUID
	if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
		createdBy = claims.UserID
	}

	result, err := h.submitter.Submit(r.Context(), sess.Payload(), createdBy)
	if err != nil {
		if errors.Is(err, service.ErrEmptyItems) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("ERROR: submit quote: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.sessions.Delete(sess.ID)

	writeJSON(w, http.StatusCreated, submitResponse{
		QuoteID:     result.Quote.ID,
		QuoteNumber: result.Quote.QuoteNumber,
		GrandTotal:  sessGrandTotal(result),
	})
}

func sessGrandTotal(result *service.SubmitResult) decimal.Decimal {
	if !result.Quote.GrandTotal.Valid {
		return decimal.Zero
	}
	val, err := result.Quote.GrandTotal.Value()
	if err != nil || val == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val.(string))
	if err != nil {
		return decimal.Zero
	}
	return d
}
