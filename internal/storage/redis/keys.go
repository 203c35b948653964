package redis

import (
	"fmt"

	"github.com/mearas/realmwar/internal/model"
)

// Key prefix for all game-state data
const keyPrefix = "realmwar"

// Key generation functions for each entity type

// armyKey returns the Redis key for an Army
func armyKey(name model.ArmyName) string {
	return fmt.Sprintf("%s:army:%s", keyPrefix, name)
}

// armiesByFactionKey returns the Redis key for the SET of a faction's armies
func armiesByFactionKey(faction string) string {
	return fmt.Sprintf("%s:idx:armies_by_faction:%s", keyPrefix, faction)
}

// armiesByOriginKey returns the Redis key for the SET of armies raised at a
// claimbuild; its cardinality backs CountArmiesByOrigin
func armiesByOriginKey(claimBuildName string) string {
	return fmt.Sprintf("%s:idx:armies_by_origin:%s", keyPrefix, claimBuildName)
}

// playerKey returns the Redis key for a Player
func playerKey(ign string) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, ign)
}

// discordIndexKey returns the Redis key for the discord_id -> ign index
func discordIndexKey(discordID string) string {
	return fmt.Sprintf("%s:idx:discord:%s", keyPrefix, discordID)
}

// rpCharIndexKey returns the Redis key for the rp character name -> ign index
func rpCharIndexKey(charName string) string {
	return fmt.Sprintf("%s:idx:rpchar:%s", keyPrefix, charName)
}

// factionKey returns the Redis key for a Faction
func factionKey(name string) string {
	return fmt.Sprintf("%s:faction:%s", keyPrefix, name)
}

// factionsIndexKey returns the Redis key for the SET of all faction names
func factionsIndexKey() string {
	return fmt.Sprintf("%s:idx:factions", keyPrefix)
}

// regionKey returns the Redis key for a Region
func regionKey(id model.RegionID) string {
	return fmt.Sprintf("%s:region:%s", keyPrefix, id)
}

// claimBuildKey returns the Redis key for a ClaimBuild
func claimBuildKey(name string) string {
	return fmt.Sprintf("%s:claimbuild:%s", keyPrefix, name)
}

// claimBuildsByFactionKey returns the Redis key for the SET of a faction's claimbuilds
func claimBuildsByFactionKey(faction string) string {
	return fmt.Sprintf("%s:idx:claimbuilds_by_faction:%s", keyPrefix, faction)
}

// unitTypeKey returns the Redis key for a UnitType
func unitTypeKey(name string) string {
	return fmt.Sprintf("%s:unittype:%s", keyPrefix, name)
}

// unitTypesIndexKey returns the Redis key for the SET of all unit type names
func unitTypesIndexKey() string {
	return fmt.Sprintf("%s:idx:unittypes", keyPrefix)
}
