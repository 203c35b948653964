package army

import (
	"fmt"
	"math"

	"github.com/mearas/realmwar/internal/model"
)

// tierLimits are the per-tier bounds a claimbuild places on armies raised
// there: the starting unit-token budget and the number of armies that may
// exist from it at once.
type tierLimits struct {
	MaxFreeTokens int
	MaxArmies     int
}

// claimBuildTiers maps every claimbuild tier to its limits. Unknown tiers
// are rejected by tierLimitsFor rather than defaulting to anything.
var claimBuildTiers = map[model.ClaimBuildType]tierLimits{
	model.ClaimBuildHamlet:     {MaxFreeTokens: 10, MaxArmies: 1},
	model.ClaimBuildVillage:    {MaxFreeTokens: 20, MaxArmies: 2},
	model.ClaimBuildTown:       {MaxFreeTokens: 30, MaxArmies: 3},
	model.ClaimBuildCapital:    {MaxFreeTokens: 40, MaxArmies: 4},
	model.ClaimBuildKeep:       {MaxFreeTokens: 25, MaxArmies: 2},
	model.ClaimBuildCastle:     {MaxFreeTokens: 35, MaxArmies: 3},
	model.ClaimBuildStronghold: {MaxFreeTokens: 50, MaxArmies: 5},
}

// tierLimitsFor returns the limits for a claimbuild tier, failing closed on
// tiers the table does not know about.
func tierLimitsFor(tier model.ClaimBuildType) (tierLimits, error) {
	limits, ok := claimBuildTiers[tier]
	if !ok {
		return tierLimits{}, fmt.Errorf("unknown claimbuild tier %q", tier)
	}
	return limits, nil
}

// unitCost returns the total token cost of a unit composition. Unit-type
// costs may be fractional; the total rounds up so fractional remainders are
// never granted for free.
func unitCost(units []model.Unit, types map[string]*model.UnitType) int {
	total := 0.0
	for _, unit := range units {
		total += float64(unit.Count) * types[unit.UnitTypeName].TokenCost
	}
	return int(math.Ceil(total))
}
