package gateway

import (
	"errors"
	"net/http"
)

// Client-facing messages. Stable and machine-readable; the classifier never
// looks at them, only at the error identity.
const (
	MsgDuplicate      = "A device with the same name or IPv4 address already exists."
	MsgNotFound       = "Gateway not found."
	MsgDeviceNotFound = "Device not found."
	MsgInvalidID      = "Invalid gateway ID."
	MsgDeviceLimit    = "Maximum number of devices reached."
	MsgVendorTaken    = "Device with the same vendor already exists."
	MsgInternal       = "Internal Server Error"
)

// Classify maps a domain failure to transport status, client message and a
// short kind tag for logs. Pure function; anything unrecognized becomes an
// opaque 500 so store errors never leak.
func Classify(err error) (status int, msg, kind string) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Error(), "validation"
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict, MsgDuplicate, "conflict"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, MsgNotFound, "gateway_not_found"
	case errors.Is(err, ErrDeviceNotFound):
		return http.StatusNotFound, MsgDeviceNotFound, "device_not_found"
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest, MsgInvalidID, "invalid_id"
	case errors.Is(err, ErrDeviceLimit):
		return http.StatusBadRequest, MsgDeviceLimit, "device_limit"
	case errors.Is(err, ErrDuplicateVendor):
		return http.StatusBadRequest, MsgVendorTaken, "vendor_taken"
	default:
		return http.StatusInternalServerError, MsgInternal, "internal"
	}
}
