package army

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mearas/realmwar/internal/dependencies/clock"
	"github.com/mearas/realmwar/internal/model"
	"github.com/mearas/realmwar/internal/storage"
)

// Service runs the army lifecycle workflows: raising a new army against a
// claimbuild's token budget and transferring command authority over it.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new army Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// UnitRequest is one unit-type/count pair of a requested composition
type UnitRequest struct {
	UnitTypeName string
	Count        int
}

// CreateRequest carries the inputs for raising a new army
type CreateRequest struct {
	Name       string
	Faction    string
	Type       model.ArmyType
	ClaimBuild string
	Units      []UnitRequest
}

func (r CreateRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: army name", model.ErrValidation)
	}
	if strings.TrimSpace(r.Faction) == "" {
		return fmt.Errorf("%w: faction", model.ErrValidation)
	}
	if !r.Type.IsValid() {
		return fmt.Errorf("%w: army type %q", model.ErrValidation, r.Type)
	}
	if strings.TrimSpace(r.ClaimBuild) == "" {
		return fmt.Errorf("%w: claimbuild", model.ErrValidation)
	}
	if len(r.Units) == 0 {
		return fmt.Errorf("%w: units", model.ErrValidation)
	}
	for _, unit := range r.Units {
		if strings.TrimSpace(unit.UnitTypeName) == "" {
			return fmt.Errorf("%w: unit type name", model.ErrValidation)
		}
		if unit.Count <= 0 {
			return fmt.Errorf("%w: unit count for %q must be positive", model.ErrValidation, unit.UnitTypeName)
		}
	}
	return nil
}

// Create raises a new army at a claimbuild. The claimbuild's tier fixes the
// unit-token budget and the number of armies that may exist from it at once;
// the first failing check aborts the workflow before anything is persisted.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*model.Army, error) {
	s.logger.Debug("creating army",
		slog.String("name", req.Name),
		slog.String("faction", req.Faction),
		slog.String("claimbuild", req.ClaimBuild),
	)

	if err := req.validate(); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetArmy(ctx, model.ArmyName(req.Name)); err == nil {
		s.logger.Warn("army name already taken", slog.String("name", req.Name))
		return nil, fmt.Errorf("%w: %q", model.ErrArmyNameTaken, req.Name)
	} else if !errors.Is(err, model.ErrArmyNotFound) {
		return nil, err
	}

	faction, err := s.storage.GetFaction(ctx, req.Faction)
	if err != nil {
		if errors.Is(err, model.ErrFactionNotFound) {
			return nil, fmt.Errorf("%w: %q", model.ErrFactionNotFound, req.Faction)
		}
		return nil, err
	}

	unitTypes := make(map[string]*model.UnitType, len(req.Units))
	units := make([]model.Unit, 0, len(req.Units))
	for _, unit := range req.Units {
		ut, err := s.storage.GetUnitType(ctx, unit.UnitTypeName)
		if err != nil {
			if errors.Is(err, model.ErrUnitTypeNotFound) {
				return nil, fmt.Errorf("%w: %q", model.ErrUnitTypeNotFound, unit.UnitTypeName)
			}
			return nil, err
		}
		unitTypes[ut.Name] = ut
		units = append(units, model.Unit{UnitTypeName: ut.Name, Count: unit.Count})
	}

	claimBuild, err := s.storage.GetClaimBuild(ctx, req.ClaimBuild)
	if err != nil {
		if errors.Is(err, model.ErrClaimBuildNotFound) {
			return nil, fmt.Errorf("%w: %q", model.ErrClaimBuildNotFound, req.ClaimBuild)
		}
		return nil, err
	}

	limits, err := tierLimitsFor(claimBuild.Type)
	if err != nil {
		return nil, err
	}

	existing, err := s.storage.CountArmiesByOrigin(ctx, claimBuild.Name)
	if err != nil {
		return nil, err
	}
	if existing >= limits.MaxArmies {
		s.logger.Warn("claimbuild at max armies",
			slog.String("claimbuild", claimBuild.Name),
			slog.Int("max", limits.MaxArmies),
		)
		return nil, fmt.Errorf("%w: %q already has %d of %d armies",
			model.ErrMaxArmiesReached, claimBuild.Name, existing, limits.MaxArmies)
	}

	cost := unitCost(units, unitTypes)
	if cost > limits.MaxFreeTokens {
		s.logger.Warn("unit cost exceeds token budget",
			slog.Int("cost", cost),
			slog.Int("budget", limits.MaxFreeTokens),
		)
		return nil, fmt.Errorf("%w: requested %d tokens but %q grants %d",
			model.ErrNotEnoughTokens, cost, claimBuild.Name, limits.MaxFreeTokens)
	}

	now := s.clock.Now()
	army := &model.Army{
		Name:          model.ArmyName(req.Name),
		Type:          req.Type,
		Faction:       faction.Name,
		CurrentRegion: claimBuild.Region,
		Units:         units,
		Sieges:        []string{},
		FreeTokens:    limits.MaxFreeTokens - cost,
		Origin:        claimBuild.Name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.storage.SaveArmy(ctx, army); err != nil {
		return nil, err
	}

	s.logger.Info("army created",
		slog.String("name", string(army.Name)),
		slog.String("faction", army.Faction),
		slog.Int("free_tokens", army.FreeTokens),
	)
	return army, nil
}

// BindRequest carries the inputs for binding an army to a player.
// Executor and target are external platform identities; they are equal for
// a self-bind.
type BindRequest struct {
	ExecutorDiscordID string
	TargetDiscordID   string
	ArmyName          string
}

func (r BindRequest) validate() error {
	if strings.TrimSpace(r.ExecutorDiscordID) == "" {
		return fmt.Errorf("%w: executor discord id", model.ErrValidation)
	}
	if strings.TrimSpace(r.TargetDiscordID) == "" {
		return fmt.Errorf("%w: target discord id", model.ErrValidation)
	}
	if strings.TrimSpace(r.ArmyName) == "" {
		return fmt.Errorf("%w: army name", model.ErrValidation)
	}
	return nil
}

// Bind grants the target player command authority over the named army.
// Binding oneself needs no extra authority; binding another player requires
// the executor to lead their faction. Rebinding an army to the player who
// already commands it is a no-op.
func (s *Service) Bind(ctx context.Context, req BindRequest) (*model.Army, error) {
	s.logger.Debug("binding army",
		slog.String("army", req.ArmyName),
		slog.String("target", req.TargetDiscordID),
	)

	if err := req.validate(); err != nil {
		return nil, err
	}

	executor, err := s.storage.GetPlayerByDiscordID(ctx, req.ExecutorDiscordID)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, fmt.Errorf("%w: discord id %q", model.ErrPlayerNotFound, req.ExecutorDiscordID)
		}
		return nil, err
	}

	selfBind := req.ExecutorDiscordID == req.TargetDiscordID
	if !selfBind {
		authorized, err := s.hasDelegatedBindAuthority(ctx, executor)
		if err != nil {
			return nil, err
		}
		if !authorized {
			s.logger.Warn("executor lacks bind authority",
				slog.String("executor", executor.IGN),
				slog.String("faction", executor.Faction),
			)
			return nil, fmt.Errorf("%w: %q does not lead %q",
				model.ErrNotFactionLeader, executor.IGN, executor.Faction)
		}
	}

	target := executor
	if !selfBind {
		target, err = s.storage.GetPlayerByDiscordID(ctx, req.TargetDiscordID)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				return nil, fmt.Errorf("%w: discord id %q", model.ErrPlayerNotFound, req.TargetDiscordID)
			}
			return nil, err
		}
	}

	army, err := s.storage.GetArmy(ctx, model.ArmyName(req.ArmyName))
	if err != nil {
		if errors.Is(err, model.ErrArmyNotFound) {
			return nil, fmt.Errorf("%w: %q", model.ErrArmyNotFound, req.ArmyName)
		}
		return nil, err
	}

	if army.Faction != target.Faction {
		return nil, fmt.Errorf("%w: army belongs to %q, player to %q",
			model.ErrFactionMismatch, army.Faction, target.Faction)
	}

	if target.RPChar == nil {
		return nil, fmt.Errorf("%w: %q", model.ErrNoRPChar, target.IGN)
	}
	if army.CurrentRegion != target.RPChar.CurrentRegion {
		return nil, fmt.Errorf("%w: army in %q, character in %q",
			model.ErrRegionMismatch, army.CurrentRegion, target.RPChar.CurrentRegion)
	}

	if army.IsBound() {
		if army.BoundTo == target.IGN {
			// Already bound to this player, nothing to do
			return army, nil
		}
		return nil, fmt.Errorf("%w: %q is bound to %q",
			model.ErrArmyAlreadyBound, army.Name, army.BoundTo)
	}

	army.BoundTo = target.IGN
	army.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveArmy(ctx, army); err != nil {
		return nil, err
	}

	s.logger.Info("army bound",
		slog.String("army", string(army.Name)),
		slog.String("player", target.IGN),
	)
	return army, nil
}

// hasDelegatedBindAuthority reports whether the executor may bind armies to
// other players of their faction. Currently only the faction leader holds
// that authority; lord roles would slot in here.
func (s *Service) hasDelegatedBindAuthority(ctx context.Context, executor *model.Player) (bool, error) {
	faction, err := s.storage.GetFaction(ctx, executor.Faction)
	if err != nil {
		if errors.Is(err, model.ErrFactionNotFound) {
			return false, fmt.Errorf("%w: %q", model.ErrFactionNotFound, executor.Faction)
		}
		return false, err
	}
	return faction.IsLeader(executor.IGN), nil
}

// Get returns an army by name
func (s *Service) Get(ctx context.Context, name model.ArmyName) (*model.Army, error) {
	return s.storage.GetArmy(ctx, name)
}

// ListByFaction returns all armies belonging to a faction
func (s *Service) ListByFaction(ctx context.Context, faction string) ([]*model.Army, error) {
	return s.storage.ListArmiesByFaction(ctx, faction)
}
