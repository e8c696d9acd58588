package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"raitha-mithra-backend/internal/security"
)

// NewRouter wires all API routes. Public routes (catalog browsing, review
// reading) skip auth; everything else goes through the token middleware.
func NewRouter(
	tokens security.TokenManager,
	equipment *EquipmentHandler,
	bookings *BookingHandler,
	reviews *ReviewHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	api := r.PathPrefix("/api").Subrouter()
	auth := AuthMiddleware(tokens)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Equipment. The owner listing must register before the catch-all
	// {idOrSlug} route or mux would swallow it.
	api.Handle("/equipment/owner/my-equipment", auth(http.HandlerFunc(equipment.ListMine))).Methods(http.MethodGet)
	api.Handle("/equipment", auth(http.HandlerFunc(equipment.Create))).Methods(http.MethodPost)
	api.HandleFunc("/equipment", equipment.List).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{idOrSlug}", equipment.Get).Methods(http.MethodGet)
	api.Handle("/equipment/{id}", auth(http.HandlerFunc(equipment.Update))).Methods(http.MethodPut)
	api.Handle("/equipment/{id}", auth(http.HandlerFunc(equipment.Delete))).Methods(http.MethodDelete)

	// Bookings. All routes require auth; services enforce role and party checks.
	api.Handle("/bookings", auth(http.HandlerFunc(bookings.Create))).Methods(http.MethodPost)
	api.Handle("/bookings", auth(http.HandlerFunc(bookings.List))).Methods(http.MethodGet)
	api.Handle("/bookings/{id}", auth(http.HandlerFunc(bookings.Get))).Methods(http.MethodGet)
	api.Handle("/bookings/{id}/status", auth(http.HandlerFunc(bookings.UpdateStatus))).Methods(http.MethodPut)
	api.Handle("/bookings/{id}", auth(http.HandlerFunc(bookings.Cancel))).Methods(http.MethodDelete)

	// Reviews. Reading is public, writing requires auth.
	api.Handle("/reviews/my-reviews", auth(http.HandlerFunc(reviews.ListMine))).Methods(http.MethodGet)
	api.HandleFunc("/reviews/equipment/{equipmentId}", reviews.ListForEquipment).Methods(http.MethodGet)
	api.Handle("/reviews", auth(http.HandlerFunc(reviews.Create))).Methods(http.MethodPost)
	api.HandleFunc("/reviews/{id}", reviews.Get).Methods(http.MethodGet)
	api.Handle("/reviews/{id}", auth(http.HandlerFunc(reviews.Update))).Methods(http.MethodPut)
	api.Handle("/reviews/{id}", auth(http.HandlerFunc(reviews.Delete))).Methods(http.MethodDelete)

	return r
}
