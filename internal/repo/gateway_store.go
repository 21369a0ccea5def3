package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gwhub/internal/models"
)

// GatewayStore persists the gateway aggregate as one row per gateway, the
// device collection riding along in the devices JSON column. Lookups return
// (nil, nil) on no match; only real store trouble comes back as an error.
type GatewayStore struct{ db *gorm.DB }

func NewGatewayStore(db *gorm.DB) *GatewayStore { return &GatewayStore{db: db} }

func (s *GatewayStore) FindByUUID(ctx context.Context, uuid string) (*models.Gateway, error) {
	var g models.Gateway
	err := s.db.WithContext(ctx).Where("uuid = ?", uuid).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *GatewayStore) FindByNameOrAddress(ctx context.Context, name, ipv4 string) (*models.Gateway, error) {
	var g models.Gateway
	err := s.db.WithContext(ctx).
		Where("name = ? OR ipv4_address = ?", name, ipv4).
		First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *GatewayStore) FindAll(ctx context.Context) ([]models.Gateway, error) {
	var rows []models.Gateway
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GatewayStore) Create(ctx context.Context, g *models.Gateway) error {
	return s.db.WithContext(ctx).Create(g).Error
}

func (s *GatewayStore) Save(ctx context.Context, g *models.Gateway) error {
	return s.db.WithContext(ctx).Save(g).Error
}

func (s *GatewayStore) DeleteByUUID(ctx context.Context, uuid string) error {
	return s.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&models.Gateway{}).Error
}
