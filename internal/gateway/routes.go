package gateway

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the gateway API under /gateways.
func RegisterRoutes(r *mux.Router, h *Handler) {
	sub := r.PathPrefix("/gateways").Subrouter()

	sub.HandleFunc("", h.Create).Methods(http.MethodPost)
	sub.HandleFunc("", h.List).Methods(http.MethodGet)
	sub.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)
	sub.HandleFunc("/{id}", h.Update).Methods(http.MethodPatch)
	sub.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)

	sub.HandleFunc("/{id}/devices", h.AddDevice).Methods(http.MethodPost)
	sub.HandleFunc("/{id}/devices", h.ListDevices).Methods(http.MethodGet)
	sub.HandleFunc("/{id}/devices/{deviceId}", h.GetDevice).Methods(http.MethodGet)
	sub.HandleFunc("/{id}/devices/{deviceId}", h.UpdateDevice).Methods(http.MethodPatch)
	sub.HandleFunc("/{id}/devices/{deviceId}", h.RemoveDevice).Methods(http.MethodDelete)
}
