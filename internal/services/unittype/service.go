package unittype

import (
	"context"
	"log/slog"

	"github.com/mearas/realmwar/internal/model"
	"github.com/mearas/realmwar/internal/storage"
)

// Service resolves unit types for the workflows and the API
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new unit-type Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{storage: storage, logger: logger}
}

// GetByName returns a unit type by name
func (s *Service) GetByName(ctx context.Context, name string) (*model.UnitType, error) {
	return s.storage.GetUnitType(ctx, name)
}

// List returns all unit types
func (s *Service) List(ctx context.Context) ([]*model.UnitType, error) {
	return s.storage.ListUnitTypes(ctx)
}

// Save upserts a unit type (used for seeding reference data)
func (s *Service) Save(ctx context.Context, ut *model.UnitType) error {
	s.logger.Debug("saving unit type", slog.String("name", ut.Name))
	return s.storage.SaveUnitType(ctx, ut)
}
