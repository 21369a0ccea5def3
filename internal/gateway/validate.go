package gateway

import (
	"encoding/json"
	"regexp"

	"gwhub/internal/models"
)

// Dotted quad, each octet 0-255.
var ipv4Re = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)

const (
	msgMissingFields = "Invalid request body. Please provide all required fields."
	msgIPv4NotString = "Invalid IPv4 address. Please input a valid IPv4 address as a string."
	msgIPv4Invalid   = "Invalid IPv4 address"
	msgVendorMissing = "Device vendor is required"
	msgBadStatus     = "Device status must be one of: online, offline"
)

// ValidateCreate runs the structural checks on a creation payload: all three
// fields present, ipv4Address of string type. Pure; runs before any store
// access. The devices list may be empty but must be there.
func ValidateCreate(req CreateRequest) (CreateInput, error) {
	if req.Name == nil || *req.Name == "" || len(req.IPv4Address) == 0 || req.Devices == nil {
		return CreateInput{}, invalid(msgMissingFields)
	}

	var addr string
	if err := json.Unmarshal(req.IPv4Address, &addr); err != nil {
		return CreateInput{}, invalid(msgIPv4NotString)
	}
	if addr == "" {
		return CreateInput{}, invalid(msgMissingFields)
	}

	return CreateInput{
		Name:        *req.Name,
		IPv4Address: addr,
		Devices:     *req.Devices,
	}, nil
}

// validDeviceStatus resolves the submitted status against the enum,
// defaulting to offline when unset.
func validDeviceStatus(s string) (string, error) {
	switch s {
	case "":
		return models.DeviceStatusOffline, nil
	case models.DeviceStatusOnline, models.DeviceStatusOffline:
		return s, nil
	default:
		return "", invalid(msgBadStatus)
	}
}
