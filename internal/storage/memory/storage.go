package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mearas/realmwar/internal/model"
	"github.com/mearas/realmwar/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// A single mutex serializes all check-then-write sequences, which satisfies
// the consistency precondition the workflows rely on within one process.
// Entities are copied on save and load so callers always hold snapshots,
// never the stored records themselves.
type Storage struct {
	mu sync.RWMutex

	armies       map[model.ArmyName]*model.Army
	players      map[string]*model.Player // keyed by IGN
	discordIndex map[string]string        // discord id -> IGN
	rpCharIndex  map[string]string        // rp character name -> IGN
	factions     map[string]*model.Faction
	regions      map[model.RegionID]*model.Region
	claimBuilds  map[string]*model.ClaimBuild
	unitTypes    map[string]*model.UnitType
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		armies:       make(map[model.ArmyName]*model.Army),
		players:      make(map[string]*model.Player),
		discordIndex: make(map[string]string),
		rpCharIndex:  make(map[string]string),
		factions:     make(map[string]*model.Faction),
		regions:      make(map[model.RegionID]*model.Region),
		claimBuilds:  make(map[string]*model.ClaimBuild),
		unitTypes:    make(map[string]*model.UnitType),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Army operations

func (s *Storage) SaveArmy(ctx context.Context, army *model.Army) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armies[army.Name] = copyArmy(army)
	return nil
}

func (s *Storage) GetArmy(ctx context.Context, name model.ArmyName) (*model.Army, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	army, ok := s.armies[name]
	if !ok {
		return nil, model.ErrArmyNotFound
	}
	return copyArmy(army), nil
}

func (s *Storage) DeleteArmy(ctx context.Context, name model.ArmyName) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.armies, name)
	return nil
}

func (s *Storage) ListArmiesByFaction(ctx context.Context, faction string) ([]*model.Army, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var armies []*model.Army
	for _, army := range s.armies {
		if army.Faction == faction {
			armies = append(armies, copyArmy(army))
		}
	}
	sort.Slice(armies, func(i, j int) bool { return armies[i].Name < armies[j].Name })
	return armies, nil
}

func (s *Storage) CountArmiesByOrigin(ctx context.Context, claimBuildName string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, army := range s.armies {
		if army.Origin == claimBuildName {
			count++
		}
	}
	return count, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Drop stale index entries from a previous version of the player
	if prev, ok := s.players[player.IGN]; ok {
		delete(s.discordIndex, prev.DiscordID)
		if prev.RPChar != nil {
			delete(s.rpCharIndex, prev.RPChar.Name)
		}
	}

	s.players[player.IGN] = copyPlayer(player)
	s.discordIndex[player.DiscordID] = player.IGN
	if player.RPChar != nil {
		s.rpCharIndex[player.RPChar.Name] = player.IGN
	}
	return nil
}

func (s *Storage) GetPlayerByIGN(ctx context.Context, ign string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[ign]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return copyPlayer(player), nil
}

func (s *Storage) GetPlayerByDiscordID(ctx context.Context, discordID string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ign, ok := s.discordIndex[discordID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[ign]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return copyPlayer(player), nil
}

func (s *Storage) GetPlayerByRPCharName(ctx context.Context, charName string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ign, ok := s.rpCharIndex[charName]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[ign]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return copyPlayer(player), nil
}

func (s *Storage) RenamePlayer(ctx context.Context, oldIGN string, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.players[oldIGN]; ok {
		delete(s.discordIndex, prev.DiscordID)
		if prev.RPChar != nil {
			delete(s.rpCharIndex, prev.RPChar.Name)
		}
		delete(s.players, oldIGN)
	}

	s.players[player.IGN] = copyPlayer(player)
	s.discordIndex[player.DiscordID] = player.IGN
	if player.RPChar != nil {
		s.rpCharIndex[player.RPChar.Name] = player.IGN
	}
	return nil
}

func (s *Storage) DeletePlayer(ctx context.Context, ign string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player, ok := s.players[ign]; ok {
		delete(s.discordIndex, player.DiscordID)
		if player.RPChar != nil {
			delete(s.rpCharIndex, player.RPChar.Name)
		}
	}
	delete(s.players, ign)
	return nil
}

// Faction operations

func (s *Storage) SaveFaction(ctx context.Context, faction *model.Faction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.factions[faction.Name] = copyFaction(faction)
	return nil
}

func (s *Storage) GetFaction(ctx context.Context, name string) (*model.Faction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	faction, ok := s.factions[name]
	if !ok {
		return nil, model.ErrFactionNotFound
	}
	return copyFaction(faction), nil
}

func (s *Storage) ListFactions(ctx context.Context) ([]*model.Faction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var factions []*model.Faction
	for _, f := range s.factions {
		factions = append(factions, copyFaction(f))
	}
	sort.Slice(factions, func(i, j int) bool { return factions[i].Name < factions[j].Name })
	return factions, nil
}

// Region operations

func (s *Storage) SaveRegion(ctx context.Context, region *model.Region) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions[region.ID] = copyRegion(region)
	return nil
}

func (s *Storage) GetRegion(ctx context.Context, id model.RegionID) (*model.Region, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	region, ok := s.regions[id]
	if !ok {
		return nil, model.ErrRegionNotFound
	}
	return copyRegion(region), nil
}

// ClaimBuild operations

func (s *Storage) SaveClaimBuild(ctx context.Context, cb *model.ClaimBuild) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claimBuilds[cb.Name] = copyClaimBuild(cb)
	return nil
}

func (s *Storage) GetClaimBuild(ctx context.Context, name string) (*model.ClaimBuild, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cb, ok := s.claimBuilds[name]
	if !ok {
		return nil, model.ErrClaimBuildNotFound
	}
	return copyClaimBuild(cb), nil
}

func (s *Storage) ListClaimBuildsByFaction(ctx context.Context, faction string) ([]*model.ClaimBuild, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var builds []*model.ClaimBuild
	for _, cb := range s.claimBuilds {
		if cb.OwnedBy == faction {
			builds = append(builds, copyClaimBuild(cb))
		}
	}
	sort.Slice(builds, func(i, j int) bool { return builds[i].Name < builds[j].Name })
	return builds, nil
}

// UnitType operations

func (s *Storage) SaveUnitType(ctx context.Context, ut *model.UnitType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unitTypes[ut.Name] = copyUnitType(ut)
	return nil
}

func (s *Storage) GetUnitType(ctx context.Context, name string) (*model.UnitType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ut, ok := s.unitTypes[name]
	if !ok {
		return nil, model.ErrUnitTypeNotFound
	}
	return copyUnitType(ut), nil
}

func (s *Storage) ListUnitTypes(ctx context.Context) ([]*model.UnitType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var types []*model.UnitType
	for _, ut := range s.unitTypes {
		types = append(types, copyUnitType(ut))
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types, nil
}
