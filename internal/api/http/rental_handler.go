package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"videostore-admin/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type createRentalRequest struct {
	InventoryID int `json:"inventory_id"`
	CustomerID  int `json:"customer_id"`
	StaffID     int `json:"staff_id"`
}

// HandleListActive handles GET /api/v1/rentals/active
func (h *RentalHandler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.ListActiveRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

// HandleListRecent handles GET /api/v1/rentals/recent?limit=
func (h *RentalHandler) HandleListRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	rentals, err := h.rentals.ListRecentRentals(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

// HandleCreate handles POST /api/v1/rentals
func (h *RentalHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	id, err := h.rentals.CreateRental(r.Context(), req.InventoryID, req.CustomerID, req.StaffID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// HandleReturn handles POST /api/v1/rentals/{id}/return
func (h *RentalHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid rental id"})
		return
	}

	if err := h.rentals.ProcessReturn(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

// HandleInventory handles GET /api/v1/films/{id}/inventory
func (h *RentalHandler) HandleInventory(w http.ResponseWriter, r *http.Request) {
	filmID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid film id"})
		return
	}

	items, err := h.rentals.ListInventory(r.Context(), filmID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
