package model

// ClaimBuildType is a settlement tier. The tier bounds both the unit-token
// budget of armies raised there and how many armies may be raised at once.
type ClaimBuildType string

const (
	ClaimBuildHamlet     ClaimBuildType = "HAMLET"
	ClaimBuildVillage    ClaimBuildType = "VILLAGE"
	ClaimBuildTown       ClaimBuildType = "TOWN"
	ClaimBuildCapital    ClaimBuildType = "CAPITAL"
	ClaimBuildKeep       ClaimBuildType = "KEEP"
	ClaimBuildCastle     ClaimBuildType = "CASTLE"
	ClaimBuildStronghold ClaimBuildType = "STRONGHOLD"
)

// ClaimBuild is a settlement built by a faction in a region
type ClaimBuild struct {
	Name             string
	Type             ClaimBuildType
	Region           RegionID
	OwnedBy          string // owning faction name
	Coordinates      Coordinates
	SpecialBuildings []string
	Traders          string
	Siege            string
	NumberOfHouses   int
	BuiltBy          []string // IGNs of the players who built it
}

// Coordinates is an in-world block position
type Coordinates struct {
	X int
	Y int
	Z int
}
