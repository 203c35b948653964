package model

// RegionID uniquely identifies a map region
type RegionID string

// RegionType classifies terrain for movement and claim rules
type RegionType string

const (
	RegionTypeLand     RegionType = "LAND"
	RegionTypeSea      RegionType = "SEA"
	RegionTypeMountain RegionType = "MOUNTAIN"
	RegionTypeDesert   RegionType = "DESERT"
	RegionTypeIce      RegionType = "ICE"
)

// Region is a map tile entities are located in
type Region struct {
	ID   RegionID
	Name string
	Type RegionType
}
