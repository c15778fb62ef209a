package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"videostore-admin/internal/database"
	"videostore-admin/internal/service"
)

// Handlers groups everything the router exposes.
type Handlers struct {
	DB        *database.Manager
	Films     service.FilmService
	Customers service.CustomerService
	Staff     service.StaffService
	Rentals   service.RentalService
	Dashboard service.DashboardService
}

// NewRouter wires all routes with the request-id and logging
// middleware applied.
func NewRouter(h Handlers) *mux.Router {
	filmHandler := NewFilmHandler(h.Films)
	customerHandler := NewCustomerHandler(h.Customers)
	staffHandler := NewStaffHandler(h.Staff)
	rentalHandler := NewRentalHandler(h.Rentals)
	dashboardHandler := NewDashboardHandler(h.Dashboard)
	connectionHandler := NewConnectionHandler(h.DB)

	router := mux.NewRouter()
	router.Use(RequestID, Logging)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "connected": h.DB.Connected()})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/films", filmHandler.HandleSearch).Methods("GET")
	api.HandleFunc("/films/{id:[0-9]+}", filmHandler.HandleDetail).Methods("GET")
	api.HandleFunc("/films/{id:[0-9]+}/inventory", rentalHandler.HandleInventory).Methods("GET")
	api.HandleFunc("/categories", filmHandler.HandleCategories).Methods("GET")

	api.HandleFunc("/customers", customerHandler.HandleSearch).Methods("GET")
	api.HandleFunc("/customers", customerHandler.HandleCreate).Methods("POST")
	api.HandleFunc("/customers/{id:[0-9]+}", customerHandler.HandleUpdate).Methods("PUT")
	api.HandleFunc("/customers/{id:[0-9]+}", customerHandler.HandleDelete).Methods("DELETE")
	api.HandleFunc("/cities", customerHandler.HandleCities).Methods("GET")

	api.HandleFunc("/staff", staffHandler.HandleList).Methods("GET")
	api.HandleFunc("/staff", staffHandler.HandleCreate).Methods("POST")
	api.HandleFunc("/staff/{id:[0-9]+}", staffHandler.HandleUpdate).Methods("PUT")
	api.HandleFunc("/staff/{id:[0-9]+}", staffHandler.HandleDelete).Methods("DELETE")

	api.HandleFunc("/rentals/active", rentalHandler.HandleListActive).Methods("GET")
	api.HandleFunc("/rentals/recent", rentalHandler.HandleListRecent).Methods("GET")
	api.HandleFunc("/rentals", rentalHandler.HandleCreate).Methods("POST")
	api.HandleFunc("/rentals/{id:[0-9]+}/return", rentalHandler.HandleReturn).Methods("POST")

	api.HandleFunc("/dashboard", dashboardHandler.HandleStats).Methods("GET")

	api.HandleFunc("/connection/connect", connectionHandler.HandleConnect).Methods("POST")
	api.HandleFunc("/connection/disconnect", connectionHandler.HandleDisconnect).Methods("POST")
	api.HandleFunc("/connection/status", connectionHandler.HandleStatus).Methods("GET")

	return router
}
