package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiecvui/api/internal/catalog"
)

// CatalogHandler serves the projected catalog the quoting screens consume.
// The projection is loaded at startup and read-only afterwards.
type CatalogHandler struct {
	proj    *catalog.Projection
	presets []string
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(proj *catalog.Projection, presets []string) *CatalogHandler {
	return &CatalogHandler{proj: proj, presets: presets}
}

// RegisterRoutes registers catalog endpoints on the given Chi router.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/food-items", h.ListFoodItems)
	r.Get("/service-items", h.ListServiceItems)
	r.Get("/note-presets", h.ListNotePresets)
}

// --- Response types ---

type foodItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	CategoryID   uuid.UUID       `json:"category_id"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Unit         string          `json:"unit,omitempty"`
}

type serviceItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Unit         string          `json:"unit"`
	Code         string          `json:"code"`
}

// --- Handlers ---

// ListFoodItems returns the sellable menu items.
func (h *CatalogHandler) ListFoodItems(w http.ResponseWriter, r *http.Request) {
	resp := make([]foodItemResponse, len(h.proj.FoodItems))
	for i, it := range h.proj.FoodItems {
		resp[i] = foodItemResponse{
			ID:           it.ID,
			Name:         it.Name,
			CategoryID:   it.CategoryID,
			SellingPrice: it.SellingPrice,
			CostPrice:    it.CostPrice,
			Unit:         it.Unit,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListServiceItems returns furniture/decor and staff items, split by code.
func (h *CatalogHandler) ListServiceItems(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Furniture []serviceItemResponse `json:"furniture"`
		Staff     []serviceItemResponse `json:"staff"`
	}{
		Furniture: toServiceResponses(h.proj.FurnitureItems),
		Staff:     toServiceResponses(h.proj.StaffItems),
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListNotePresets returns the quick-select note texts.
func (h *CatalogHandler) ListNotePresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"presets": h.presets})
}

func toServiceResponses(items []catalog.ServiceItem) []serviceItemResponse {
	resp := make([]serviceItemResponse, len(items))
	for i, svc := range items {
		resp[i] = serviceItemResponse{
			ID:           svc.ID,
			Name:         svc.Name,
			PricePerUnit: svc.PricePerUnit,
			Unit:         svc.Unit,
			Code:         svc.Code,
		}
	}
	return resp
}
