package response

import (
	"time"

	"github.com/mearas/realmwar/internal/model"
)

// Unit represents one unit block in API responses
type Unit struct {
	UnitType string `json:"unit_type"`
	Count    int    `json:"count"`
}

// Army represents an army in API responses
type Army struct {
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Faction       string    `json:"faction"`
	CurrentRegion string    `json:"current_region"`
	BoundTo       string    `json:"bound_to,omitempty"`
	Units         []Unit    `json:"units"`
	Sieges        []string  `json:"sieges,omitempty"`
	StationedAt   string    `json:"stationed_at,omitempty"`
	FreeTokens    int       `json:"free_tokens"`
	Origin        string    `json:"origin"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ArmyFromModel converts a model.Army to a response Army
func ArmyFromModel(a *model.Army) Army {
	units := make([]Unit, len(a.Units))
	for i, u := range a.Units {
		units[i] = Unit{UnitType: u.UnitTypeName, Count: u.Count}
	}
	return Army{
		Name:          string(a.Name),
		Type:          string(a.Type),
		Faction:       a.Faction,
		CurrentRegion: string(a.CurrentRegion),
		BoundTo:       a.BoundTo,
		Units:         units,
		Sieges:        a.Sieges,
		StationedAt:   a.StationedAt,
		FreeTokens:    a.FreeTokens,
		Origin:        a.Origin,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// RPChar represents a roleplay character in API responses
type RPChar struct {
	Name          string `json:"name"`
	Title         string `json:"title,omitempty"`
	Gear          string `json:"gear,omitempty"`
	PvP           bool   `json:"pvp"`
	CurrentRegion string `json:"current_region"`
}

// RPCharFromModel converts a model.RPChar to a response RPChar
func RPCharFromModel(c *model.RPChar) RPChar {
	return RPChar{
		Name:          c.Name,
		Title:         c.Title,
		Gear:          c.Gear,
		PvP:           c.PvP,
		CurrentRegion: string(c.CurrentRegion),
	}
}

// Player represents a player in API responses
type Player struct {
	IGN       string  `json:"ign"`
	UUID      string  `json:"uuid"`
	DiscordID string  `json:"discord_id"`
	Faction   string  `json:"faction"`
	RPChar    *RPChar `json:"rpchar,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	resp := Player{
		IGN:       p.IGN,
		UUID:      p.UUID,
		DiscordID: p.DiscordID,
		Faction:   p.Faction,
	}
	if p.RPChar != nil {
		char := RPCharFromModel(p.RPChar)
		resp.RPChar = &char
	}
	return resp
}

// Faction represents a faction in API responses
type Faction struct {
	Name       string `json:"name"`
	Leader     string `json:"leader,omitempty"`
	HomeRegion string `json:"home_region"`
}

// FactionFromModel converts a model.Faction to a response Faction
func FactionFromModel(f *model.Faction) Faction {
	return Faction{
		Name:       f.Name,
		Leader:     f.Leader,
		HomeRegion: string(f.HomeRegion),
	}
}

// ClaimBuild represents a claimbuild in API responses
type ClaimBuild struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Region  string `json:"region"`
	OwnedBy string `json:"owned_by"`
}

// ClaimBuildFromModel converts a model.ClaimBuild to a response ClaimBuild
func ClaimBuildFromModel(cb *model.ClaimBuild) ClaimBuild {
	return ClaimBuild{
		Name:    cb.Name,
		Type:    string(cb.Type),
		Region:  string(cb.Region),
		OwnedBy: cb.OwnedBy,
	}
}

// UnitType represents a unit type in API responses
type UnitType struct {
	Name      string  `json:"name"`
	TokenCost float64 `json:"token_cost"`
}

// UnitTypeFromModel converts a model.UnitType to a response UnitType
func UnitTypeFromModel(ut *model.UnitType) UnitType {
	return UnitType{Name: ut.Name, TokenCost: ut.TokenCost}
}
