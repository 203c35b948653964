package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mearas/realmwar/internal/dependencies/clock"
	"github.com/mearas/realmwar/internal/model"
	"github.com/mearas/realmwar/internal/services/accounts"
	"github.com/mearas/realmwar/internal/storage"
)

// Service manages players and their roleplay characters. Every player's IGN
// is verified against the external game-account directory at registration
// and whenever it changes.
type Service struct {
	storage   storage.Storage
	directory accounts.Directory
	clock     clock.Clock
	logger    *slog.Logger
}

// New creates a new player Service
func New(storage storage.Storage, directory accounts.Directory, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:   storage,
		directory: directory,
		clock:     clock,
		logger:    logger,
	}
}

// CreateRequest carries the inputs for registering a player
type CreateRequest struct {
	IGN       string
	DiscordID string
	Faction   string
}

// Create registers a new player. The IGN must resolve in the account
// directory and neither the IGN nor the discord id may already be in use.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*model.Player, error) {
	s.logger.Debug("creating player",
		slog.String("ign", req.IGN),
		slog.String("discord_id", req.DiscordID),
	)

	if strings.TrimSpace(req.IGN) == "" {
		return nil, fmt.Errorf("%w: ign", model.ErrValidation)
	}
	if strings.TrimSpace(req.DiscordID) == "" {
		return nil, fmt.Errorf("%w: discord id", model.ErrValidation)
	}
	if strings.TrimSpace(req.Faction) == "" {
		return nil, fmt.Errorf("%w: faction", model.ErrValidation)
	}

	faction, err := s.storage.GetFaction(ctx, req.Faction)
	if err != nil {
		if errors.Is(err, model.ErrFactionNotFound) {
			return nil, fmt.Errorf("%w: %q", model.ErrFactionNotFound, req.Faction)
		}
		return nil, err
	}

	uuid, err := s.directory.LookupUUID(ctx, req.IGN)
	if err != nil {
		return nil, err
	}

	if _, err := s.storage.GetPlayerByIGN(ctx, req.IGN); err == nil {
		return nil, fmt.Errorf("%w: ign %q", model.ErrPlayerExists, req.IGN)
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	if _, err := s.storage.GetPlayerByDiscordID(ctx, req.DiscordID); err == nil {
		return nil, fmt.Errorf("%w: discord id %q", model.ErrPlayerExists, req.DiscordID)
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	player := &model.Player{
		IGN:       req.IGN,
		UUID:      uuid,
		DiscordID: req.DiscordID,
		Faction:   faction.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("ign", player.IGN),
		slog.String("faction", player.Faction),
	)
	return player, nil
}

// GetByIGN returns a player by in-game name
func (s *Service) GetByIGN(ctx context.Context, ign string) (*model.Player, error) {
	return s.storage.GetPlayerByIGN(ctx, ign)
}

// GetByDiscordID returns a player by external platform identity
func (s *Service) GetByDiscordID(ctx context.Context, discordID string) (*model.Player, error) {
	return s.storage.GetPlayerByDiscordID(ctx, discordID)
}

// UpdateFaction moves a player to another faction
func (s *Service) UpdateFaction(ctx context.Context, discordID, factionName string) (*model.Player, error) {
	if strings.TrimSpace(discordID) == "" {
		return nil, fmt.Errorf("%w: discord id", model.ErrValidation)
	}
	if strings.TrimSpace(factionName) == "" {
		return nil, fmt.Errorf("%w: faction", model.ErrValidation)
	}

	player, err := s.storage.GetPlayerByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	faction, err := s.storage.GetFaction(ctx, factionName)
	if err != nil {
		if errors.Is(err, model.ErrFactionNotFound) {
			return nil, fmt.Errorf("%w: %q", model.ErrFactionNotFound, factionName)
		}
		return nil, err
	}

	oldFaction := player.Faction
	player.Faction = faction.Name
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player faction updated",
		slog.String("ign", player.IGN),
		slog.String("from", oldFaction),
		slog.String("to", player.Faction),
	)
	return player, nil
}

// UpdateIGN changes a player's in-game name, re-verifying it against the
// account directory
func (s *Service) UpdateIGN(ctx context.Context, discordID, newIGN string) (*model.Player, error) {
	if strings.TrimSpace(discordID) == "" {
		return nil, fmt.Errorf("%w: discord id", model.ErrValidation)
	}
	if strings.TrimSpace(newIGN) == "" {
		return nil, fmt.Errorf("%w: ign", model.ErrValidation)
	}

	player, err := s.storage.GetPlayerByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	if _, err := s.storage.GetPlayerByIGN(ctx, newIGN); err == nil {
		return nil, fmt.Errorf("%w: ign %q", model.ErrPlayerExists, newIGN)
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	uuid, err := s.directory.LookupUUID(ctx, newIGN)
	if err != nil {
		return nil, err
	}

	// The IGN is the storage key, so the record has to be re-keyed. The
	// storage swap is atomic; a failed rename leaves the old record intact.
	oldIGN := player.IGN
	player.IGN = newIGN
	player.UUID = uuid
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.RenamePlayer(ctx, oldIGN, player); err != nil {
		return nil, err
	}

	s.logger.Info("player ign updated",
		slog.String("from", oldIGN),
		slog.String("to", player.IGN),
	)
	return player, nil
}

// UpdateDiscordID re-links a player to a new external platform identity
func (s *Service) UpdateDiscordID(ctx context.Context, oldDiscordID, newDiscordID string) (*model.Player, error) {
	if strings.TrimSpace(oldDiscordID) == "" || strings.TrimSpace(newDiscordID) == "" {
		return nil, fmt.Errorf("%w: discord id", model.ErrValidation)
	}

	player, err := s.storage.GetPlayerByDiscordID(ctx, oldDiscordID)
	if err != nil {
		return nil, err
	}

	if _, err := s.storage.GetPlayerByDiscordID(ctx, newDiscordID); err == nil {
		return nil, fmt.Errorf("%w: discord id %q", model.ErrPlayerExists, newDiscordID)
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	player.DiscordID = newDiscordID
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player discord id updated", slog.String("ign", player.IGN))
	return player, nil
}

// Delete removes a player entirely
func (s *Service) Delete(ctx context.Context, discordID string) (*model.Player, error) {
	player, err := s.storage.GetPlayerByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	if err := s.storage.DeletePlayer(ctx, player.IGN); err != nil {
		return nil, err
	}

	s.logger.Info("player deleted", slog.String("ign", player.IGN))
	return player, nil
}

// CreateRPCharRequest carries the inputs for creating a roleplay character
type CreateRPCharRequest struct {
	DiscordID string
	Name      string
	Title     string
	Gear      string
	PvP       bool
}

// CreateRPChar creates the player's roleplay character. A player has at most
// one character; character names are globally unique; the character spawns
// in the faction's home region.
func (s *Service) CreateRPChar(ctx context.Context, req CreateRPCharRequest) (*model.RPChar, error) {
	s.logger.Debug("creating rp character",
		slog.String("discord_id", req.DiscordID),
		slog.String("name", req.Name),
	)

	if strings.TrimSpace(req.DiscordID) == "" {
		return nil, fmt.Errorf("%w: discord id", model.ErrValidation)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: character name", model.ErrValidation)
	}
	if len(req.Title) > model.MaxRPCharTitleLength {
		return nil, fmt.Errorf("%w: %q is %d characters, max is %d",
			model.ErrTitleTooLong, req.Title, len(req.Title), model.MaxRPCharTitleLength)
	}

	player, err := s.storage.GetPlayerByDiscordID(ctx, req.DiscordID)
	if err != nil {
		return nil, err
	}

	if player.RPChar != nil {
		return nil, fmt.Errorf("%w: %q already plays %q",
			model.ErrRPCharExists, player.IGN, player.RPChar.Name)
	}

	if _, err := s.storage.GetPlayerByRPCharName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("%w: %q", model.ErrRPCharNameTaken, req.Name)
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	faction, err := s.storage.GetFaction(ctx, player.Faction)
	if err != nil {
		return nil, err
	}

	player.RPChar = &model.RPChar{
		Name:          req.Name,
		Title:         req.Title,
		Gear:          req.Gear,
		PvP:           req.PvP,
		CurrentRegion: faction.HomeRegion,
	}
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("rp character created",
		slog.String("ign", player.IGN),
		slog.String("character", req.Name),
	)
	return player.RPChar, nil
}

// UpdateRPCharName renames the player's character; the new name must be free
func (s *Service) UpdateRPCharName(ctx context.Context, discordID, newName string) (*model.RPChar, error) {
	if strings.TrimSpace(discordID) == "" {
		return nil, fmt.Errorf("%w: discord id", model.ErrValidation)
	}
	if strings.TrimSpace(newName) == "" {
		return nil, fmt.Errorf("%w: character name", model.ErrValidation)
	}

	player, err := s.storage.GetPlayerByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	if player.RPChar == nil {
		return nil, fmt.Errorf("%w: %q", model.ErrNoRPChar, player.IGN)
	}

	if _, err := s.storage.GetPlayerByRPCharName(ctx, newName); err == nil {
		return nil, fmt.Errorf("%w: %q", model.ErrRPCharNameTaken, newName)
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	player.RPChar.Name = newName
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player.RPChar, nil
}

// UpdateRPCharTitle changes the character's title
func (s *Service) UpdateRPCharTitle(ctx context.Context, discordID, title string) (*model.RPChar, error) {
	if strings.TrimSpace(discordID) == "" {
		return nil, fmt.Errorf("%w: discord id", model.ErrValidation)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title", model.ErrValidation)
	}
	if len(title) > model.MaxRPCharTitleLength {
		return nil, fmt.Errorf("%w: %q is %d characters, max is %d",
			model.ErrTitleTooLong, title, len(title), model.MaxRPCharTitleLength)
	}

	player, err := s.storage.GetPlayerByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	if player.RPChar == nil {
		return nil, fmt.Errorf("%w: %q", model.ErrNoRPChar, player.IGN)
	}

	player.RPChar.Title = title
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player.RPChar, nil
}

// DeleteRPChar removes the player's character
func (s *Service) DeleteRPChar(ctx context.Context, discordID string) (*model.RPChar, error) {
	player, err := s.storage.GetPlayerByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	if player.RPChar == nil {
		return nil, fmt.Errorf("%w: %q", model.ErrNoRPChar, player.IGN)
	}

	deleted := player.RPChar
	player.RPChar = nil
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("rp character deleted",
		slog.String("ign", player.IGN),
		slog.String("character", deleted.Name),
	)
	return deleted, nil
}
