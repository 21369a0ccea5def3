package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"gwhub/internal/logs"
	"gwhub/internal/middleware"
	"gwhub/internal/models"
)

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

type Handler struct {
	svc *Service
}

// fail logs the failure once at the boundary (op, kind, ids, reqid) and
// writes the mapped response. 4xx means the client did something wrong, so
// those log at warn; only 5xx carry the raw error into the log.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error, fields logrus.Fields) {
	status, msg, kind := Classify(err)
	entry := logs.Logger.WithFields(fields).WithFields(logrus.Fields{
		"op":    op,
		"kind":  kind,
		"reqid": middleware.GetRequestID(r),
	})
	if status >= http.StatusInternalServerError {
		entry.WithError(err).Error("request failed")
	} else {
		entry.Warn(msg)
	}
	models.WriteError(w, status, msg)
}

// POST /gateways
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, "createGateway", invalid(msgMissingFields), nil)
		return
	}
	in, err := ValidateCreate(req)
	if err != nil {
		h.fail(w, r, "createGateway", err, nil)
		return
	}
	g, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, "createGateway", err, logrus.Fields{"name": in.Name})
		return
	}
	models.WriteJSON(w, http.StatusOK, g)
}

// GET /gateways
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	gws, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, r, "listGateways", err, nil)
		return
	}
	if gws == nil {
		gws = []models.Gateway{}
	}
	models.WriteJSON(w, http.StatusOK, gws)
}

// GET /gateways/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	g, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, "getGateway", err, logrus.Fields{"gateway_id": id})
		return
	}
	models.WriteJSON(w, http.StatusOK, g)
}

// GET /gateways/{id}/devices
func (h *Handler) ListDevices(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	devices, err := h.svc.ListDevices(r.Context(), id)
	if err != nil {
		h.fail(w, r, "listDevices", err, logrus.Fields{"gateway_id": id})
		return
	}
	if devices == nil {
		devices = []models.Device{}
	}
	models.WriteJSON(w, http.StatusOK, devices)
}

// GET /gateways/{id}/devices/{deviceId}
func (h *Handler) GetDevice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, deviceID := vars["id"], vars["deviceId"]
	d, err := h.svc.GetDevice(r.Context(), id, deviceID)
	if err != nil {
		h.fail(w, r, "getDevice", err, logrus.Fields{"gateway_id": id, "device_id": deviceID})
		return
	}
	models.WriteJSON(w, http.StatusOK, d)
}

// POST /gateways/{id}/devices
func (h *Handler) AddDevice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var in DeviceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.fail(w, r, "addDevice", invalid(msgVendorMissing), logrus.Fields{"gateway_id": id})
		return
	}
	g, err := h.svc.AddDevice(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, "addDevice", err, logrus.Fields{"gateway_id": id})
		return
	}
	models.WriteJSON(w, http.StatusOK, g)
}

// PATCH /gateways/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, "updateGateway", invalid(msgMissingFields), logrus.Fields{"gateway_id": id})
		return
	}
	g, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, "updateGateway", err, logrus.Fields{"gateway_id": id})
		return
	}
	models.WriteJSON(w, http.StatusOK, g)
}

// PATCH /gateways/{id}/devices/{deviceId}
func (h *Handler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, deviceID := vars["id"], vars["deviceId"]
	var req DeviceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, "updateDevice", invalid(msgVendorMissing), logrus.Fields{"gateway_id": id, "device_id": deviceID})
		return
	}
	d, err := h.svc.UpdateDevice(r.Context(), id, deviceID, req)
	if err != nil {
		h.fail(w, r, "updateDevice", err, logrus.Fields{"gateway_id": id, "device_id": deviceID})
		return
	}
	models.WriteJSON(w, http.StatusOK, d)
}

// DELETE /gateways/{id}/devices/{deviceId}
func (h *Handler) RemoveDevice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, deviceID := vars["id"], vars["deviceId"]
	if _, err := h.svc.RemoveDevice(r.Context(), id, deviceID); err != nil {
		h.fail(w, r, "removeDevice", err, logrus.Fields{"gateway_id": id, "device_id": deviceID})
		return
	}
	models.WriteJSON(w, http.StatusOK, models.APIMessage{Message: "Device removed from gateway successfully"})
}

// DELETE /gateways/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, "deleteGateway", err, logrus.Fields{"gateway_id": id})
		return
	}
	models.WriteJSON(w, http.StatusOK, models.APIMessage{Message: "Gateway deleted successfully"})
}
