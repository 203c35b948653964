package memory

import (
	"slices"

	"github.com/mearas/realmwar/internal/model"
)

// Copy helpers so stored records and caller-held values never alias.

func copyArmy(a *model.Army) *model.Army {
	c := *a
	c.Units = slices.Clone(a.Units)
	c.Sieges = slices.Clone(a.Sieges)
	return &c
}

func copyPlayer(p *model.Player) *model.Player {
	c := *p
	if p.RPChar != nil {
		char := *p.RPChar
		c.RPChar = &char
	}
	return &c
}

func copyFaction(f *model.Faction) *model.Faction {
	c := *f
	return &c
}

func copyRegion(r *model.Region) *model.Region {
	c := *r
	return &c
}

func copyClaimBuild(cb *model.ClaimBuild) *model.ClaimBuild {
	c := *cb
	c.SpecialBuildings = slices.Clone(cb.SpecialBuildings)
	c.BuiltBy = slices.Clone(cb.BuiltBy)
	return &c
}

func copyUnitType(ut *model.UnitType) *model.UnitType {
	c := *ut
	return &c
}
