package claimbuild

import (
	"context"
	"log/slog"

	"github.com/mearas/realmwar/internal/model"
	"github.com/mearas/realmwar/internal/storage"
)

// Service resolves claimbuilds (settlements) for the workflows and the API
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new claimbuild Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{storage: storage, logger: logger}
}

// GetByName returns a claimbuild by name
func (s *Service) GetByName(ctx context.Context, name string) (*model.ClaimBuild, error) {
	return s.storage.GetClaimBuild(ctx, name)
}

// ListByFaction returns all claimbuilds owned by a faction
func (s *Service) ListByFaction(ctx context.Context, faction string) ([]*model.ClaimBuild, error) {
	return s.storage.ListClaimBuildsByFaction(ctx, faction)
}

// Save upserts a claimbuild (used for seeding reference data)
func (s *Service) Save(ctx context.Context, cb *model.ClaimBuild) error {
	s.logger.Debug("saving claimbuild", slog.String("name", cb.Name))
	return s.storage.SaveClaimBuild(ctx, cb)
}
