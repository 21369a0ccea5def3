package gateway

import (
	"context"
	"sync"

	"gwhub/internal/models"
)

// memStore keeps the aggregates in a map. Used when no database is
// configured, and by tests. Every read hands out a copy so callers get the
// same fresh-read semantics a real store gives them.
type memStore struct {
	mu       sync.RWMutex
	gateways map[string]*models.Gateway
	seq      int64
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() Store {
	return &memStore{gateways: make(map[string]*models.Gateway)}
}

func (m *memStore) FindByUUID(_ context.Context, uuid string) (*models.Gateway, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.gateways[uuid]
	if !ok {
		return nil, nil
	}
	return clone(g), nil
}

func (m *memStore) FindByNameOrAddress(_ context.Context, name, ipv4 string) (*models.Gateway, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, g := range m.gateways {
		if g.Name == name || g.IPv4Address == ipv4 {
			return clone(g), nil
		}
	}
	return nil, nil
}

func (m *memStore) FindAll(_ context.Context) ([]models.Gateway, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Gateway, 0, len(m.gateways))
	for _, g := range m.gateways {
		out = append(out, *clone(g))
	}
	return out, nil
}

func (m *memStore) Create(_ context.Context, g *models.Gateway) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	g.ID = m.seq
	m.gateways[g.UUID] = clone(g)
	return nil
}

func (m *memStore) Save(_ context.Context, g *models.Gateway) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gateways[g.UUID] = clone(g)
	return nil
}

func (m *memStore) DeleteByUUID(_ context.Context, uuid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.gateways, uuid)
	return nil
}

func clone(g *models.Gateway) *models.Gateway {
	cp := *g
	cp.Devices = make([]models.Device, len(g.Devices))
	copy(cp.Devices, g.Devices)
	return &cp
}
