package gateway

import (
	"context"
	"encoding/json"

	"gwhub/internal/models"
)

// Store is the persistence contract the service runs against. Lookups return
// (nil, nil) when nothing matches; errors are reserved for store trouble.
type Store interface {
	FindByUUID(ctx context.Context, uuid string) (*models.Gateway, error)
	FindByNameOrAddress(ctx context.Context, name, ipv4 string) (*models.Gateway, error)
	FindAll(ctx context.Context) ([]models.Gateway, error)
	Create(ctx context.Context, g *models.Gateway) error
	Save(ctx context.Context, g *models.Gateway) error
	DeleteByUUID(ctx context.Context, uuid string) error
}

// CreateRequest is the raw creation payload. Fields stay loosely typed so the
// validator can tell "absent" from "wrong type" before anything touches the
// store.
type CreateRequest struct {
	Name        *string         `json:"name"`
	IPv4Address json.RawMessage `json:"ipv4Address"`
	Devices     *[]DeviceInput  `json:"devices"`
}

// CreateInput is a CreateRequest that passed structural validation.
type CreateInput struct {
	Name        string
	IPv4Address string
	Devices     []DeviceInput
}

// DeviceInput carries client-supplied device fields; uid and createdDate are
// always assigned server-side.
type DeviceInput struct {
	Vendor string `json:"vendor"`
	Status string `json:"status"`
}

// UpdateRequest is the partial gateway update: absent fields stay untouched.
type UpdateRequest struct {
	Name        *string `json:"name"`
	IPv4Address *string `json:"ipv4Address"`
}

// DeviceUpdateRequest is the partial device update. Only vendor is mutable.
type DeviceUpdateRequest struct {
	Vendor *string `json:"vendor"`
}
