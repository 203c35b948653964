package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mearas/realmwar/internal/model"
	"github.com/mearas/realmwar/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Entity records are JSON values; secondary lookups (discord id, rp
// character name, faction membership, origin claimbuild) are kept in index
// keys updated in the same pipeline as the record.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Army operations

func (s *Storage) SaveArmy(ctx context.Context, army *model.Army) error {
	data, err := json.Marshal(army)
	if err != nil {
		return err
	}

	prev, err := s.GetArmy(ctx, army.Name)
	if err != nil && !errors.Is(err, model.ErrArmyNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	if prev != nil && prev.Faction != army.Faction {
		pipe.SRem(ctx, armiesByFactionKey(prev.Faction), string(army.Name))
	}
	if prev != nil && prev.Origin != army.Origin {
		pipe.SRem(ctx, armiesByOriginKey(prev.Origin), string(army.Name))
	}
	pipe.Set(ctx, armyKey(army.Name), data, 0)
	pipe.SAdd(ctx, armiesByFactionKey(army.Faction), string(army.Name))
	pipe.SAdd(ctx, armiesByOriginKey(army.Origin), string(army.Name))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetArmy(ctx context.Context, name model.ArmyName) (*model.Army, error) {
	data, err := s.client.Get(ctx, armyKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrArmyNotFound
		}
		return nil, err
	}

	var army model.Army
	if err := json.Unmarshal(data, &army); err != nil {
		return nil, err
	}
	return &army, nil
}

func (s *Storage) DeleteArmy(ctx context.Context, name model.ArmyName) error {
	army, err := s.GetArmy(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrArmyNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, armyKey(name))
	pipe.SRem(ctx, armiesByFactionKey(army.Faction), string(name))
	pipe.SRem(ctx, armiesByOriginKey(army.Origin), string(name))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListArmiesByFaction(ctx context.Context, faction string) ([]*model.Army, error) {
	names, err := s.client.SMembers(ctx, armiesByFactionKey(faction)).Result()
	if err != nil {
		return nil, err
	}

	var armies []*model.Army
	for _, name := range names {
		army, err := s.GetArmy(ctx, model.ArmyName(name))
		if err != nil {
			if errors.Is(err, model.ErrArmyNotFound) {
				continue
			}
			return nil, err
		}
		armies = append(armies, army)
	}
	return armies, nil
}

func (s *Storage) CountArmiesByOrigin(ctx context.Context, claimBuildName string) (int, error) {
	count, err := s.client.SCard(ctx, armiesByOriginKey(claimBuildName)).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	prev, err := s.GetPlayerByIGN(ctx, player.IGN)
	if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	if prev != nil && prev.DiscordID != player.DiscordID {
		pipe.Del(ctx, discordIndexKey(prev.DiscordID))
	}
	if prev != nil && prev.RPChar != nil &&
		(player.RPChar == nil || prev.RPChar.Name != player.RPChar.Name) {
		pipe.Del(ctx, rpCharIndexKey(prev.RPChar.Name))
	}
	pipe.Set(ctx, playerKey(player.IGN), data, 0)
	pipe.Set(ctx, discordIndexKey(player.DiscordID), player.IGN, 0)
	if player.RPChar != nil {
		pipe.Set(ctx, rpCharIndexKey(player.RPChar.Name), player.IGN, 0)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayerByIGN(ctx context.Context, ign string) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(ign)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) GetPlayerByDiscordID(ctx context.Context, discordID string) (*model.Player, error) {
	ign, err := s.client.Get(ctx, discordIndexKey(discordID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return s.GetPlayerByIGN(ctx, ign)
}

func (s *Storage) GetPlayerByRPCharName(ctx context.Context, charName string) (*model.Player, error) {
	ign, err := s.client.Get(ctx, rpCharIndexKey(charName)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return s.GetPlayerByIGN(ctx, ign)
}

// RenamePlayer deletes the old record and writes the new one in a single
// pipeline, so a fault cannot leave the player without a record.
func (s *Storage) RenamePlayer(ctx context.Context, oldIGN string, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	prev, err := s.GetPlayerByIGN(ctx, oldIGN)
	if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	if prev != nil {
		pipe.Del(ctx, playerKey(oldIGN))
		if prev.DiscordID != player.DiscordID {
			pipe.Del(ctx, discordIndexKey(prev.DiscordID))
		}
		if prev.RPChar != nil &&
			(player.RPChar == nil || prev.RPChar.Name != player.RPChar.Name) {
			pipe.Del(ctx, rpCharIndexKey(prev.RPChar.Name))
		}
	}
	pipe.Set(ctx, playerKey(player.IGN), data, 0)
	pipe.Set(ctx, discordIndexKey(player.DiscordID), player.IGN, 0)
	if player.RPChar != nil {
		pipe.Set(ctx, rpCharIndexKey(player.RPChar.Name), player.IGN, 0)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) DeletePlayer(ctx context.Context, ign string) error {
	player, err := s.GetPlayerByIGN(ctx, ign)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(ign))
	pipe.Del(ctx, discordIndexKey(player.DiscordID))
	if player.RPChar != nil {
		pipe.Del(ctx, rpCharIndexKey(player.RPChar.Name))
	}
	_, err = pipe.Exec(ctx)
	return err
}

// Faction operations

func (s *Storage) SaveFaction(ctx context.Context, faction *model.Faction) error {
	data, err := json.Marshal(faction)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, factionKey(faction.Name), data, 0)
	pipe.SAdd(ctx, factionsIndexKey(), faction.Name)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetFaction(ctx context.Context, name string) (*model.Faction, error) {
	data, err := s.client.Get(ctx, factionKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrFactionNotFound
		}
		return nil, err
	}

	var faction model.Faction
	if err := json.Unmarshal(data, &faction); err != nil {
		return nil, err
	}
	return &faction, nil
}

func (s *Storage) ListFactions(ctx context.Context) ([]*model.Faction, error) {
	names, err := s.client.SMembers(ctx, factionsIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	var factions []*model.Faction
	for _, name := range names {
		faction, err := s.GetFaction(ctx, name)
		if err != nil {
			if errors.Is(err, model.ErrFactionNotFound) {
				continue
			}
			return nil, err
		}
		factions = append(factions, faction)
	}
	return factions, nil
}

// Region operations

func (s *Storage) SaveRegion(ctx context.Context, region *model.Region) error {
	data, err := json.Marshal(region)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, regionKey(region.ID), data, 0).Err()
}

func (s *Storage) GetRegion(ctx context.Context, id model.RegionID) (*model.Region, error) {
	data, err := s.client.Get(ctx, regionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRegionNotFound
		}
		return nil, err
	}

	var region model.Region
	if err := json.Unmarshal(data, &region); err != nil {
		return nil, err
	}
	return &region, nil
}

// ClaimBuild operations

func (s *Storage) SaveClaimBuild(ctx context.Context, cb *model.ClaimBuild) error {
	data, err := json.Marshal(cb)
	if err != nil {
		return err
	}

	prev, err := s.GetClaimBuild(ctx, cb.Name)
	if err != nil && !errors.Is(err, model.ErrClaimBuildNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	if prev != nil && prev.OwnedBy != cb.OwnedBy {
		pipe.SRem(ctx, claimBuildsByFactionKey(prev.OwnedBy), cb.Name)
	}
	pipe.Set(ctx, claimBuildKey(cb.Name), data, 0)
	pipe.SAdd(ctx, claimBuildsByFactionKey(cb.OwnedBy), cb.Name)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetClaimBuild(ctx context.Context, name string) (*model.ClaimBuild, error) {
	data, err := s.client.Get(ctx, claimBuildKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrClaimBuildNotFound
		}
		return nil, err
	}

	var cb model.ClaimBuild
	if err := json.Unmarshal(data, &cb); err != nil {
		return nil, err
	}
	return &cb, nil
}

func (s *Storage) ListClaimBuildsByFaction(ctx context.Context, faction string) ([]*model.ClaimBuild, error) {
	names, err := s.client.SMembers(ctx, claimBuildsByFactionKey(faction)).Result()
	if err != nil {
		return nil, err
	}

	var builds []*model.ClaimBuild
	for _, name := range names {
		cb, err := s.GetClaimBuild(ctx, name)
		if err != nil {
			if errors.Is(err, model.ErrClaimBuildNotFound) {
				continue
			}
			return nil, err
		}
		builds = append(builds, cb)
	}
	return builds, nil
}

// UnitType operations

func (s *Storage) SaveUnitType(ctx context.Context, ut *model.UnitType) error {
	data, err := json.Marshal(ut)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, unitTypeKey(ut.Name), data, 0)
	pipe.SAdd(ctx, unitTypesIndexKey(), ut.Name)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUnitType(ctx context.Context, name string) (*model.UnitType, error) {
	data, err := s.client.Get(ctx, unitTypeKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUnitTypeNotFound
		}
		return nil, err
	}

	var ut model.UnitType
	if err := json.Unmarshal(data, &ut); err != nil {
		return nil, err
	}
	return &ut, nil
}

func (s *Storage) ListUnitTypes(ctx context.Context) ([]*model.UnitType, error) {
	names, err := s.client.SMembers(ctx, unitTypesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	var types []*model.UnitType
	for _, name := range names {
		ut, err := s.GetUnitType(ctx, name)
		if err != nil {
			if errors.Is(err, model.ErrUnitTypeNotFound) {
				continue
			}
			return nil, err
		}
		types = append(types, ut)
	}
	return types, nil
}
