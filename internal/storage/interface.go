package storage

import (
	"context"

	"github.com/mearas/realmwar/internal/model"
)

// Storage defines the interface for data persistence.
//
// Save methods are idempotent upserts keyed by the entity's natural key.
// Workflows run read-then-check-then-write sequences against this interface
// (army name uniqueness, claimbuild capacity, bind exclusivity); an
// implementation must serialize conflicting writes per key so that two
// concurrent creations of the same army, or two concurrent binds of the same
// army, cannot both succeed.
type Storage interface {
	// Army operations
	SaveArmy(ctx context.Context, army *model.Army) error
	GetArmy(ctx context.Context, name model.ArmyName) (*model.Army, error)
	DeleteArmy(ctx context.Context, name model.ArmyName) error
	ListArmiesByFaction(ctx context.Context, faction string) ([]*model.Army, error)
	// CountArmiesByOrigin returns how many armies were raised at the given
	// claimbuild and still exist.
	CountArmiesByOrigin(ctx context.Context, claimBuildName string) (int, error)

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayerByIGN(ctx context.Context, ign string) (*model.Player, error)
	GetPlayerByDiscordID(ctx context.Context, discordID string) (*model.Player, error)
	GetPlayerByRPCharName(ctx context.Context, charName string) (*model.Player, error)
	// RenamePlayer re-keys the record stored under oldIGN to player.IGN,
	// swapping record and indexes as one operation. On failure the record
	// under oldIGN must remain intact.
	RenamePlayer(ctx context.Context, oldIGN string, player *model.Player) error
	DeletePlayer(ctx context.Context, ign string) error

	// Faction operations
	SaveFaction(ctx context.Context, faction *model.Faction) error
	GetFaction(ctx context.Context, name string) (*model.Faction, error)
	ListFactions(ctx context.Context) ([]*model.Faction, error)

	// Region operations
	SaveRegion(ctx context.Context, region *model.Region) error
	GetRegion(ctx context.Context, id model.RegionID) (*model.Region, error)

	// ClaimBuild operations
	SaveClaimBuild(ctx context.Context, cb *model.ClaimBuild) error
	GetClaimBuild(ctx context.Context, name string) (*model.ClaimBuild, error)
	ListClaimBuildsByFaction(ctx context.Context, faction string) ([]*model.ClaimBuild, error)

	// UnitType operations
	SaveUnitType(ctx context.Context, ut *model.UnitType) error
	GetUnitType(ctx context.Context, name string) (*model.UnitType, error)
	ListUnitTypes(ctx context.Context) ([]*model.UnitType, error)
}
