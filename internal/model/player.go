package model

import "time"

// Player represents a community member able to hold game-state entities.
// IGN is the in-game account name; DiscordID is the external platform
// identity commands arrive under.
type Player struct {
	IGN       string
	UUID      string // external game-account id resolved via the accounts directory
	DiscordID string
	Faction   string
	RPChar    *RPChar // nil until the player creates a character
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RPChar is a player's roleplay character. Its current region determines
// where the player may exercise command over armies; which army a player
// commands is tracked on the Army side (Army.BoundTo).
type RPChar struct {
	Name          string
	Title         string
	Gear          string
	PvP           bool
	CurrentRegion RegionID
}

// MaxRPCharTitleLength bounds character titles
const MaxRPCharTitleLength = 25
