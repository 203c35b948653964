package model

import "time"

// ArmyName uniquely identifies an army across the system
type ArmyName string

// ArmyType distinguishes fighting armies from trading companies
type ArmyType string

const (
	ArmyTypeArmy           ArmyType = "ARMY"
	ArmyTypeTradingCompany ArmyType = "TRADING_COMPANY"
	ArmyTypeArmedTraders   ArmyType = "ARMED_TRADERS"
)

// IsValid reports whether t is a known army type
func (t ArmyType) IsValid() bool {
	switch t {
	case ArmyTypeArmy, ArmyTypeTradingCompany, ArmyTypeArmedTraders:
		return true
	}
	return false
}

// Unit is a block of soldiers of one unit type inside an army
type Unit struct {
	UnitTypeName string
	Count        int
}

// Army is a named collection of units under a faction, raised at a
// claimbuild and optionally bound to a commanding player.
type Army struct {
	Name          ArmyName
	Type          ArmyType
	Faction       string     // owning faction name
	CurrentRegion RegionID   // region the army is currently in
	BoundTo       string     // IGN of the commanding player, empty when unbound
	Units         []Unit
	Sieges        []string   // siege equipment identifiers
	StationedAt   string     // claimbuild the army is stationed at, empty if none
	FreeTokens    int        // unit tokens left to spend, never negative
	Origin        string     // claimbuild the army was raised at
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsBound reports whether any player currently commands the army
func (a *Army) IsBound() bool {
	return a.BoundTo != ""
}
