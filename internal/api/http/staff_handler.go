package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"videostore-admin/internal/domain"
	"videostore-admin/internal/service"
)

type StaffHandler struct {
	staff service.StaffService
}

func NewStaffHandler(staff service.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// HandleList handles GET /api/v1/staff
func (h *StaffHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staff.ListStaff(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

// HandleCreate handles POST /api/v1/staff
func (h *StaffHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var ns domain.NewStaff
	if !decodeBody(w, r, &ns) {
		return
	}

	id, err := h.staff.AddStaff(r.Context(), &ns)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// HandleUpdate handles PUT /api/v1/staff/{id}
func (h *StaffHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid staff id"})
		return
	}

	var st domain.Staff
	if !decodeBody(w, r, &st) {
		return
	}
	st.ID = id

	if err := h.staff.UpdateStaff(r.Context(), &st); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

// HandleDelete handles DELETE /api/v1/staff/{id}
func (h *StaffHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid staff id"})
		return
	}

	if err := h.staff.DeleteStaff(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
