package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/gorilla/mux"

	"gwhub/internal/models"
)

func newTestRouter() *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	RegisterRoutes(r, NewHandler(NewService(NewMemoryStore())))
	return r
}

func doJSON(t *testing.T, r *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestCreateGatewayEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/gateways", map[string]any{
		"name":        "GW1",
		"ipv4Address": "10.0.0.1",
		"devices":     []any{},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	g := decode[models.Gateway](t, w)
	assert.Equal(t, "GW1", g.Name)
	assert.Equal(t, "10.0.0.1", g.IPv4Address)
	assert.Equal(t, 0, len(g.Devices))
	assert.NotEqual(t, "", g.UUID)

	// Same name, different address — conflict.
	w = doJSON(t, r, http.MethodPost, "/gateways", map[string]any{
		"name": "GW1", "ipv4Address": "10.0.0.2", "devices": []any{},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, MsgDuplicate, decode[models.APIError](t, w).Error)

	// Different name, same address — also conflict.
	w = doJSON(t, r, http.MethodPost, "/gateways", map[string]any{
		"name": "GW2", "ipv4Address": "10.0.0.1", "devices": []any{},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateGatewayValidationEndpoint(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name string
		body map[string]any
		want string
	}{
		{"missing devices", map[string]any{"name": "GW1", "ipv4Address": "10.0.0.1"}, msgMissingFields},
		{"missing name", map[string]any{"ipv4Address": "10.0.0.1", "devices": []any{}}, msgMissingFields},
		{"numeric ipv4", map[string]any{"name": "GW1", "ipv4Address": 167772161, "devices": []any{}}, msgIPv4NotString},
		{"malformed ipv4", map[string]any{"name": "GW1", "ipv4Address": "999.0.0.1", "devices": []any{}}, msgIPv4Invalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/gateways", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.want, decode[models.APIError](t, w).Error)
		})
	}
}

// The end-to-end walk from the acceptance scenario: create, fill to capacity,
// hit the vendor and capacity limits on the way.
func TestGatewayDeviceScenario(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/gateways", map[string]any{
		"name": "GW1", "ipv4Address": "10.0.0.1", "devices": []any{},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	g := decode[models.Gateway](t, w)
	base := "/gateways/" + g.UUID

	// First device, default status offline.
	w = doJSON(t, r, http.MethodPost, base+"/devices", map[string]any{"vendor": "Acme"})
	assert.Equal(t, http.StatusOK, w.Code)
	g = decode[models.Gateway](t, w)
	assert.Equal(t, 1, len(g.Devices))
	assert.Equal(t, models.DeviceStatusOffline, g.Devices[0].Status)

	// Second Acme — vendor taken.
	w = doJSON(t, r, http.MethodPost, base+"/devices", map[string]any{"vendor": "Acme"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, MsgVendorTaken, decode[models.APIError](t, w).Error)

	// Nine more distinct vendors fill the gateway to ten.
	for i := 0; i < 9; i++ {
		w = doJSON(t, r, http.MethodPost, base+"/devices", map[string]any{"vendor": fmt.Sprintf("vendor-%d", i)})
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// The eleventh is over capacity.
	w = doJSON(t, r, http.MethodPost, base+"/devices", map[string]any{"vendor": "straw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, MsgDeviceLimit, decode[models.APIError](t, w).Error)

	w = doJSON(t, r, http.MethodGet, base+"/devices", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	devices := decode[[]models.Device](t, w)
	assert.Equal(t, MaxDevices, len(devices))
}

func TestGetGatewayNotFoundAndBadID(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/gateways/3f2e8c1a-0000-4000-8000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, MsgNotFound, decode[models.APIError](t, w).Error)

	w = doJSON(t, r, http.MethodGet, "/gateways/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, MsgInvalidID, decode[models.APIError](t, w).Error)
}

func TestListGatewaysEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/gateways", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, len(decode[[]models.Gateway](t, w)))

	doJSON(t, r, http.MethodPost, "/gateways", map[string]any{"name": "GW1", "ipv4Address": "10.0.0.1", "devices": []any{}})
	doJSON(t, r, http.MethodPost, "/gateways", map[string]any{"name": "GW2", "ipv4Address": "10.0.0.2", "devices": []any{}})

	w = doJSON(t, r, http.MethodGet, "/gateways", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, len(decode[[]models.Gateway](t, w)))
}

func TestDeviceEndpoints(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/gateways", map[string]any{
		"name": "GW1", "ipv4Address": "10.0.0.1", "devices": []any{map[string]any{"vendor": "Acme"}},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	g := decode[models.Gateway](t, w)
	base := "/gateways/" + g.UUID
	uid := g.Devices[0].UID

	// Fetch by uid.
	w = doJSON(t, r, http.MethodGet, base+"/devices/"+uid, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme", decode[models.Device](t, w).Vendor)

	// Unknown uid.
	w = doJSON(t, r, http.MethodGet, base+"/devices/unknown-uid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, MsgDeviceNotFound, decode[models.APIError](t, w).Error)

	// Patch vendor; the device comes back, uid intact.
	w = doJSON(t, r, http.MethodPatch, base+"/devices/"+uid, map[string]any{"vendor": "Globex"})
	assert.Equal(t, http.StatusOK, w.Code)
	d := decode[models.Device](t, w)
	assert.Equal(t, "Globex", d.Vendor)
	assert.Equal(t, uid, d.UID)

	// Remove it.
	w = doJSON(t, r, http.MethodDelete, base+"/devices/"+uid, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Device removed from gateway successfully", decode[models.APIMessage](t, w).Message)

	w = doJSON(t, r, http.MethodGet, base+"/devices", nil)
	assert.Equal(t, 0, len(decode[[]models.Device](t, w)))
}

func TestUpdateAndDeleteGatewayEndpoints(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/gateways", map[string]any{
		"name": "GW1", "ipv4Address": "10.0.0.1", "devices": []any{},
	})
	g := decode[models.Gateway](t, w)
	base := "/gateways/" + g.UUID

	// Partial update: only the name moves.
	w = doJSON(t, r, http.MethodPatch, base, map[string]any{"name": "GW1-renamed"})
	assert.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.Gateway](t, w)
	assert.Equal(t, "GW1-renamed", updated.Name)
	assert.Equal(t, "10.0.0.1", updated.IPv4Address)

	w = doJSON(t, r, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Gateway deleted successfully", decode[models.APIMessage](t, w).Message)

	w = doJSON(t, r, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
