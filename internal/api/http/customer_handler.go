package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"videostore-admin/internal/domain"
	"videostore-admin/internal/service"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// HandleSearch handles GET /api/v1/customers?search=
func (h *CustomerHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.SearchCustomers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// HandleCreate handles POST /api/v1/customers
func (h *CustomerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var nc domain.NewCustomer
	if !decodeBody(w, r, &nc) {
		return
	}

	id, err := h.customers.AddCustomer(r.Context(), &nc)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// HandleUpdate handles PUT /api/v1/customers/{id}
func (h *CustomerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid customer id"})
		return
	}

	var c domain.Customer
	if !decodeBody(w, r, &c) {
		return
	}
	c.ID = id

	if err := h.customers.UpdateCustomer(r.Context(), &c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

// HandleDelete handles DELETE /api/v1/customers/{id}
func (h *CustomerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid customer id"})
		return
	}

	if err := h.customers.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// HandleCities handles GET /api/v1/cities
func (h *CustomerHandler) HandleCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.customers.ListCities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}
