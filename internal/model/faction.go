package model

// Faction is a playable allegiance players and armies belong to
type Faction struct {
	Name          string
	Leader        string // IGN of the current leader, empty if leaderless
	HomeRegion    RegionID
	InitialArmy   string // flavour description of the faction's starting host
	FoodStockpile int
}

// IsLeader reports whether the given player currently leads the faction
func (f *Faction) IsLeader(ign string) bool {
	return f.Leader != "" && f.Leader == ign
}
