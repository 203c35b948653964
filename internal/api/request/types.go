package request

// UnitRequest is one unit-type/count pair of an army composition
type UnitRequest struct {
	UnitType string `json:"unit_type"`
	Count    int    `json:"count"`
}

// CreateArmyRequest is the request body for raising an army
type CreateArmyRequest struct {
	Name       string        `json:"name"`
	Faction    string        `json:"faction"`
	Type       string        `json:"type"`
	ClaimBuild string        `json:"claimbuild"`
	Units      []UnitRequest `json:"units"`
}

// BindArmyRequest is the request body for binding an army to a player
type BindArmyRequest struct {
	ExecutorDiscordID string `json:"executor_discord_id"`
	TargetDiscordID   string `json:"target_discord_id"`
}

// CreatePlayerRequest is the request body for registering a player
type CreatePlayerRequest struct {
	IGN       string `json:"ign"`
	DiscordID string `json:"discord_id"`
	Faction   string `json:"faction"`
}

// UpdatePlayerRequest is the request body for updating a player. Exactly one
// field should be set per call.
type UpdatePlayerRequest struct {
	Faction      string `json:"faction,omitempty"`
	IGN          string `json:"ign,omitempty"`
	NewDiscordID string `json:"new_discord_id,omitempty"`
}

// CreateRPCharRequest is the request body for creating a roleplay character
type CreateRPCharRequest struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Gear  string `json:"gear"`
	PvP   bool   `json:"pvp"`
}

// UpdateRPCharRequest is the request body for updating a roleplay character.
// Exactly one field should be set per call.
type UpdateRPCharRequest struct {
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
}
