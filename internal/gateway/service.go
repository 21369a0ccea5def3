package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gwhub/internal/models"
)

// MaxDevices caps the embedded device collection of a single gateway.
const MaxDevices = 10

// Service owns the aggregate invariants: gateway uniqueness at creation,
// device capacity, per-gateway vendor uniqueness and uid-based device
// resolution. Every mutation is a fresh read-modify-save of the whole
// aggregate; the store is the sole arbiter of durable state.
type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

// Create persists a new gateway after the disjunctive uniqueness check:
// an existing gateway with the same name OR the same address rejects the
// whole request.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Gateway, error) {
	existing, err := s.store.FindByNameOrAddress(ctx, in.Name, in.IPv4Address)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicate
	}

	if !ipv4Re.MatchString(in.IPv4Address) {
		return nil, invalid(msgIPv4Invalid)
	}

	devices := make([]models.Device, 0, len(in.Devices))
	for _, d := range in.Devices {
		dev, err := newDevice(d, devices)
		if err != nil {
			return nil, err
		}
		devices = append(devices, *dev)
	}
	if len(devices) > MaxDevices {
		return nil, ErrDeviceLimit
	}

	g := &models.Gateway{
		UUID:        uuid.NewString(),
		Name:        in.Name,
		IPv4Address: in.IPv4Address,
		Devices:     devices,
	}
	if err := s.store.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// List returns every gateway, unfiltered.
func (s *Service) List(ctx context.Context) ([]models.Gateway, error) {
	return s.store.FindAll(ctx)
}

// Get fetches a single gateway by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Gateway, error) {
	return s.fetch(ctx, id)
}

// ListDevices returns the device collection of one gateway.
func (s *Service) ListDevices(ctx context.Context, id string) ([]models.Device, error) {
	g, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.Devices, nil
}

// GetDevice resolves one device by uid within a gateway.
func (s *Service) GetDevice(ctx context.Context, id, deviceID string) (*models.Device, error) {
	g, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	i := deviceIndex(g.Devices, deviceID)
	if i < 0 {
		return nil, ErrDeviceNotFound
	}
	d := g.Devices[i]
	return &d, nil
}

// AddDevice appends a device to the gateway. Capacity and vendor uniqueness
// are checked before anything is touched, so a rejected add leaves the
// collection exactly as it was.
func (s *Service) AddDevice(ctx context.Context, id string, in DeviceInput) (*models.Gateway, error) {
	g, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(g.Devices) >= MaxDevices {
		return nil, ErrDeviceLimit
	}
	dev, err := newDevice(in, g.Devices)
	if err != nil {
		return nil, err
	}
	g.Devices = append(g.Devices, *dev)
	if err := s.store.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Update applies the fields present in the partial among name/ipv4Address.
// Uniqueness is not re-checked on update; creation is the only gate.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*models.Gateway, error) {
	g, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil && *req.Name != "" {
		g.Name = *req.Name
	}
	if req.IPv4Address != nil && *req.IPv4Address != "" {
		g.IPv4Address = *req.IPv4Address
	}
	if err := s.store.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateDevice applies the partial to one device. Only vendor is mutable;
// uid, createdDate and status stay as they are.
func (s *Service) UpdateDevice(ctx context.Context, id, deviceID string, req DeviceUpdateRequest) (*models.Device, error) {
	g, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	i := deviceIndex(g.Devices, deviceID)
	if i < 0 {
		return nil, ErrDeviceNotFound
	}
	if req.Vendor != nil && *req.Vendor != "" {
		g.Devices[i].Vendor = *req.Vendor
	}
	if err := s.store.Save(ctx, g); err != nil {
		return nil, err
	}
	d := g.Devices[i]
	return &d, nil
}

// RemoveDevice deletes one device by uid, preserving the relative order of
// the remaining devices.
func (s *Service) RemoveDevice(ctx context.Context, id, deviceID string) (*models.Gateway, error) {
	g, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	i := deviceIndex(g.Devices, deviceID)
	if i < 0 {
		return nil, ErrDeviceNotFound
	}
	g.Devices = append(g.Devices[:i], g.Devices[i+1:]...)
	if err := s.store.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Delete removes the gateway and, with it, every device it owns.
func (s *Service) Delete(ctx context.Context, id string) error {
	g, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	return s.store.DeleteByUUID(ctx, g.UUID)
}

// fetch validates the id format and loads the aggregate.
func (s *Service) fetch(ctx context.Context, id string) (*models.Gateway, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	g, err := s.store.FindByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNotFound
	}
	return g, nil
}

// newDevice builds a fresh device against the current collection: vendor
// required and unique among siblings, status from the enum (offline when
// unset), uid and createdDate assigned here and never again.
func newDevice(in DeviceInput, siblings []models.Device) (*models.Device, error) {
	if in.Vendor == "" {
		return nil, invalid(msgVendorMissing)
	}
	for _, d := range siblings {
		if d.Vendor == in.Vendor {
			return nil, ErrDuplicateVendor
		}
	}
	status, err := validDeviceStatus(in.Status)
	if err != nil {
		return nil, err
	}
	return &models.Device{
		UID:         uuid.NewString(),
		Vendor:      in.Vendor,
		CreatedDate: time.Now().UTC(),
		Status:      status,
	}, nil
}

// deviceIndex scans for the first exact uid match. First match wins; the
// collection is not assumed sorted.
func deviceIndex(devices []models.Device, uid string) int {
	for i, d := range devices {
		if d.UID == uid {
			return i
		}
	}
	return -1
}
