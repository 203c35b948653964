package faction

import (
	"context"
	"log/slog"

	"github.com/mearas/realmwar/internal/model"
	"github.com/mearas/realmwar/internal/storage"
)

// Service resolves factions for the workflows and the API
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new faction Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{storage: storage, logger: logger}
}

// GetByName returns a faction by name
func (s *Service) GetByName(ctx context.Context, name string) (*model.Faction, error) {
	return s.storage.GetFaction(ctx, name)
}

// List returns all factions
func (s *Service) List(ctx context.Context) ([]*model.Faction, error) {
	return s.storage.ListFactions(ctx)
}

// Save upserts a faction (used for seeding reference data)
func (s *Service) Save(ctx context.Context, faction *model.Faction) error {
	s.logger.Debug("saving faction", slog.String("name", faction.Name))
	return s.storage.SaveFaction(ctx, faction)
}
