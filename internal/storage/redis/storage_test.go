package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mearas/realmwar/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Army tests

func (s *StorageSuite) TestSaveAndGetArmy() {
	army := &model.Army{
		Name:          "Host of Ithilien",
		Type:          model.ArmyTypeArmy,
		Faction:       "Gondor",
		CurrentRegion: "91",
		Units:         []model.Unit{{UnitTypeName: "Gondor Soldier", Count: 11}},
		FreeTokens:    19,
		Origin:        "Minas Ithil",
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}

	err := s.storage.SaveArmy(s.ctx, army)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetArmy(s.ctx, "Host of Ithilien")
	s.Require().NoError(err)
	s.Equal(army.Name, retrieved.Name)
	s.Equal(army.FreeTokens, retrieved.FreeTokens)
	s.Equal(army.Units, retrieved.Units)
}

func (s *StorageSuite) TestGetArmyNotFound() {
	_, err := s.storage.GetArmy(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrArmyNotFound)
}

func (s *StorageSuite) TestDeleteArmyCleansIndexes() {
	army := &model.Army{Name: "Host of Ithilien", Faction: "Gondor", Origin: "Minas Ithil"}
	_ = s.storage.SaveArmy(s.ctx, army)

	err := s.storage.DeleteArmy(s.ctx, "Host of Ithilien")
	s.Require().NoError(err)

	_, err = s.storage.GetArmy(s.ctx, "Host of Ithilien")
	s.ErrorIs(err, model.ErrArmyNotFound)

	armies, err := s.storage.ListArmiesByFaction(s.ctx, "Gondor")
	s.Require().NoError(err)
	s.Empty(armies)

	count, err := s.storage.CountArmiesByOrigin(s.ctx, "Minas Ithil")
	s.Require().NoError(err)
	s.Equal(0, count)
}

func (s *StorageSuite) TestListArmiesByFaction() {
	_ = s.storage.SaveArmy(s.ctx, &model.Army{Name: "First Host", Faction: "Gondor", Origin: "Minas Ithil"})
	_ = s.storage.SaveArmy(s.ctx, &model.Army{Name: "Second Host", Faction: "Gondor", Origin: "Minas Ithil"})
	_ = s.storage.SaveArmy(s.ctx, &model.Army{Name: "Black Host", Faction: "Mordor", Origin: "Barad-dûr"})

	armies, err := s.storage.ListArmiesByFaction(s.ctx, "Gondor")
	s.Require().NoError(err)
	s.Len(armies, 2)
}

func (s *StorageSuite) TestCountArmiesByOrigin() {
	_ = s.storage.SaveArmy(s.ctx, &model.Army{Name: "First Host", Faction: "Gondor", Origin: "Minas Ithil"})
	_ = s.storage.SaveArmy(s.ctx, &model.Army{Name: "Second Host", Faction: "Gondor", Origin: "Minas Ithil"})

	count, err := s.storage.CountArmiesByOrigin(s.ctx, "Minas Ithil")
	s.Require().NoError(err)
	s.Equal(2, count)

	// Re-saving the same army must not double count
	_ = s.storage.SaveArmy(s.ctx, &model.Army{Name: "First Host", Faction: "Gondor", Origin: "Minas Ithil"})
	count, err = s.storage.CountArmiesByOrigin(s.ctx, "Minas Ithil")
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *StorageSuite) TestSaveArmyMovesFactionIndex() {
	_ = s.storage.SaveArmy(s.ctx, &model.Army{Name: "Turncoat Host", Faction: "Gondor", Origin: "Minas Ithil"})
	_ = s.storage.SaveArmy(s.ctx, &model.Army{Name: "Turncoat Host", Faction: "Mordor", Origin: "Minas Ithil"})

	gondor, err := s.storage.ListArmiesByFaction(s.ctx, "Gondor")
	s.Require().NoError(err)
	s.Empty(gondor)

	mordor, err := s.storage.ListArmiesByFaction(s.ctx, "Mordor")
	s.Require().NoError(err)
	s.Len(mordor, 1)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		IGN:       "Borondir",
		UUID:      "uuid-1",
		DiscordID: "discord-1",
		Faction:   "Gondor",
		RPChar:    &model.RPChar{Name: "Borondir the Bold", CurrentRegion: "91"},
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	byIGN, err := s.storage.GetPlayerByIGN(s.ctx, "Borondir")
	s.Require().NoError(err)
	s.Equal("uuid-1", byIGN.UUID)

	byDiscord, err := s.storage.GetPlayerByDiscordID(s.ctx, "discord-1")
	s.Require().NoError(err)
	s.Equal("Borondir", byDiscord.IGN)

	byChar, err := s.storage.GetPlayerByRPCharName(s.ctx, "Borondir the Bold")
	s.Require().NoError(err)
	s.Equal("Borondir", byChar.IGN)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayerByIGN(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.storage.GetPlayerByDiscordID(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.storage.GetPlayerByRPCharName(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSavePlayerDropsStaleIndexes() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{
		IGN:       "Borondir",
		DiscordID: "discord-1",
		RPChar:    &model.RPChar{Name: "Borondir the Bold"},
	})

	_ = s.storage.SavePlayer(s.ctx, &model.Player{
		IGN:       "Borondir",
		DiscordID: "discord-2",
		RPChar:    &model.RPChar{Name: "Borondir Reborn"},
	})

	_, err := s.storage.GetPlayerByDiscordID(s.ctx, "discord-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.storage.GetPlayerByRPCharName(s.ctx, "Borondir the Bold")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	found, err := s.storage.GetPlayerByRPCharName(s.ctx, "Borondir Reborn")
	s.Require().NoError(err)
	s.Equal("discord-2", found.DiscordID)
}

func (s *StorageSuite) TestSavePlayerDropsCharIndexWhenCharDeleted() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{
		IGN:       "Borondir",
		DiscordID: "discord-1",
		RPChar:    &model.RPChar{Name: "Borondir the Bold"},
	})

	_ = s.storage.SavePlayer(s.ctx, &model.Player{
		IGN:       "Borondir",
		DiscordID: "discord-1",
	})

	_, err := s.storage.GetPlayerByRPCharName(s.ctx, "Borondir the Bold")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestRenamePlayerMovesRecordAndIndexes() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{
		IGN:       "Borondir",
		DiscordID: "discord-1",
		RPChar:    &model.RPChar{Name: "Borondir the Bold"},
	})

	err := s.storage.RenamePlayer(s.ctx, "Borondir", &model.Player{
		IGN:       "Calmacil",
		DiscordID: "discord-1",
		RPChar:    &model.RPChar{Name: "Borondir the Bold"},
	})
	s.Require().NoError(err)

	_, err = s.storage.GetPlayerByIGN(s.ctx, "Borondir")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	byDiscord, err := s.storage.GetPlayerByDiscordID(s.ctx, "discord-1")
	s.Require().NoError(err)
	s.Equal("Calmacil", byDiscord.IGN)
	byChar, err := s.storage.GetPlayerByRPCharName(s.ctx, "Borondir the Bold")
	s.Require().NoError(err)
	s.Equal("Calmacil", byChar.IGN)
}

func (s *StorageSuite) TestDeletePlayerCleansIndexes() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{
		IGN:       "Borondir",
		DiscordID: "discord-1",
		RPChar:    &model.RPChar{Name: "Borondir the Bold"},
	})

	err := s.storage.DeletePlayer(s.ctx, "Borondir")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayerByIGN(s.ctx, "Borondir")
	s.ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.storage.GetPlayerByDiscordID(s.ctx, "discord-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.storage.GetPlayerByRPCharName(s.ctx, "Borondir the Bold")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Faction tests

func (s *StorageSuite) TestSaveAndGetFaction() {
	faction := &model.Faction{Name: "Gondor", Leader: "Aldwin", HomeRegion: "91"}

	err := s.storage.SaveFaction(s.ctx, faction)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetFaction(s.ctx, "Gondor")
	s.Require().NoError(err)
	s.Equal("Aldwin", retrieved.Leader)
}

func (s *StorageSuite) TestGetFactionNotFound() {
	_, err := s.storage.GetFaction(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrFactionNotFound)
}

func (s *StorageSuite) TestListFactions() {
	_ = s.storage.SaveFaction(s.ctx, &model.Faction{Name: "Mordor"})
	_ = s.storage.SaveFaction(s.ctx, &model.Faction{Name: "Gondor"})

	factions, err := s.storage.ListFactions(s.ctx)
	s.Require().NoError(err)
	s.Len(factions, 2)
}

// Region tests

func (s *StorageSuite) TestSaveAndGetRegion() {
	region := &model.Region{ID: "91", Name: "Western Ithilien", Type: model.RegionTypeLand}

	err := s.storage.SaveRegion(s.ctx, region)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRegion(s.ctx, "91")
	s.Require().NoError(err)
	s.Equal("Western Ithilien", retrieved.Name)
}

func (s *StorageSuite) TestGetRegionNotFound() {
	_, err := s.storage.GetRegion(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRegionNotFound)
}

// ClaimBuild tests

func (s *StorageSuite) TestSaveAndGetClaimBuild() {
	cb := &model.ClaimBuild{
		Name:    "Minas Ithil",
		Type:    model.ClaimBuildTown,
		Region:  "91",
		OwnedBy: "Gondor",
	}

	err := s.storage.SaveClaimBuild(s.ctx, cb)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetClaimBuild(s.ctx, "Minas Ithil")
	s.Require().NoError(err)
	s.Equal(model.ClaimBuildTown, retrieved.Type)
}

func (s *StorageSuite) TestGetClaimBuildNotFound() {
	_, err := s.storage.GetClaimBuild(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrClaimBuildNotFound)
}

func (s *StorageSuite) TestListClaimBuildsByFaction() {
	_ = s.storage.SaveClaimBuild(s.ctx, &model.ClaimBuild{Name: "Minas Ithil", OwnedBy: "Gondor"})
	_ = s.storage.SaveClaimBuild(s.ctx, &model.ClaimBuild{Name: "Barad-dûr", OwnedBy: "Mordor"})

	builds, err := s.storage.ListClaimBuildsByFaction(s.ctx, "Gondor")
	s.Require().NoError(err)
	s.Require().Len(builds, 1)
	s.Equal("Minas Ithil", builds[0].Name)
}

// UnitType tests

func (s *StorageSuite) TestSaveAndGetUnitType() {
	ut := &model.UnitType{Name: "Gondor Knight", TokenCost: 2.5}

	err := s.storage.SaveUnitType(s.ctx, ut)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUnitType(s.ctx, "Gondor Knight")
	s.Require().NoError(err)
	s.Equal(2.5, retrieved.TokenCost)
}

func (s *StorageSuite) TestGetUnitTypeNotFound() {
	_, err := s.storage.GetUnitType(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUnitTypeNotFound)
}

func (s *StorageSuite) TestListUnitTypes() {
	_ = s.storage.SaveUnitType(s.ctx, &model.UnitType{Name: "Gondor Soldier", TokenCost: 1.0})
	_ = s.storage.SaveUnitType(s.ctx, &model.UnitType{Name: "Gondor Archer", TokenCost: 1.5})

	types, err := s.storage.ListUnitTypes(s.ctx)
	s.Require().NoError(err)
	s.Len(types, 2)
}
