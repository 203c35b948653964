package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Army:
		o.printArmy(v)
	case []Army:
		for i, a := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printArmy(a)
		}
	case Player:
		o.printPlayer(v)
	case Faction:
		o.printFaction(v)
	case []Faction:
		for _, f := range v {
			o.printFaction(f)
		}
	case ClaimBuild:
		o.printClaimBuild(v)
	case []UnitType:
		for _, ut := range v {
			fmt.Printf("%s: %g tokens\n", ut.Name, ut.TokenCost)
		}
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Unit response type (matches API)
type Unit struct {
	UnitType string `json:"unit_type"`
	Count    int    `json:"count"`
}

// Army response type
type Army struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Faction       string   `json:"faction"`
	CurrentRegion string   `json:"current_region"`
	BoundTo       string   `json:"bound_to,omitempty"`
	Units         []Unit   `json:"units"`
	Sieges        []string `json:"sieges,omitempty"`
	StationedAt   string   `json:"stationed_at,omitempty"`
	FreeTokens    int      `json:"free_tokens"`
	Origin        string   `json:"origin"`
}

// RPChar response type
type RPChar struct {
	Name          string `json:"name"`
	Title         string `json:"title,omitempty"`
	Gear          string `json:"gear,omitempty"`
	PvP           bool   `json:"pvp"`
	CurrentRegion string `json:"current_region"`
}

// Player response type
type Player struct {
	IGN       string  `json:"ign"`
	UUID      string  `json:"uuid"`
	DiscordID string  `json:"discord_id"`
	Faction   string  `json:"faction"`
	RPChar    *RPChar `json:"rpchar,omitempty"`
}

// Faction response type
type Faction struct {
	Name       string `json:"name"`
	Leader     string `json:"leader,omitempty"`
	HomeRegion string `json:"home_region"`
}

// ClaimBuild response type
type ClaimBuild struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Region  string `json:"region"`
	OwnedBy string `json:"owned_by"`
}

// UnitType response type
type UnitType struct {
	Name      string  `json:"name"`
	TokenCost float64 `json:"token_cost"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printArmy(a Army) {
	fmt.Printf("Army: %s (%s)\n", a.Name, a.Type)
	fmt.Printf("Faction: %s\n", a.Faction)
	fmt.Printf("Region: %s\n", a.CurrentRegion)
	if a.BoundTo != "" {
		fmt.Printf("Bound To: %s\n", a.BoundTo)
	}
	if a.StationedAt != "" {
		fmt.Printf("Stationed At: %s\n", a.StationedAt)
	}
	fmt.Printf("Origin: %s\n", a.Origin)
	fmt.Printf("Free Tokens: %d\n", a.FreeTokens)
	units := make([]string, 0, len(a.Units))
	for _, u := range a.Units {
		units = append(units, fmt.Sprintf("%dx %s", u.Count, u.UnitType))
	}
	fmt.Printf("Units: %s\n", strings.Join(units, ", "))
	if len(a.Sieges) > 0 {
		fmt.Printf("Sieges: %s\n", strings.Join(a.Sieges, ", "))
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s\n", p.IGN)
	fmt.Printf("UUID: %s\n", p.UUID)
	fmt.Printf("Discord ID: %s\n", p.DiscordID)
	fmt.Printf("Faction: %s\n", p.Faction)
	if p.RPChar != nil {
		name := p.RPChar.Name
		if p.RPChar.Title != "" {
			name = fmt.Sprintf("%s, %s", name, p.RPChar.Title)
		}
		fmt.Printf("Character: %s (in %s)\n", name, p.RPChar.CurrentRegion)
	}
}

func (o *Output) printFaction(f Faction) {
	leader := f.Leader
	if leader == "" {
		leader = "(none)"
	}
	fmt.Printf("%s (leader: %s, home region: %s)\n", f.Name, leader, f.HomeRegion)
}

func (o *Output) printClaimBuild(cb ClaimBuild) {
	fmt.Printf("Claimbuild: %s (%s)\n", cb.Name, cb.Type)
	fmt.Printf("Region: %s\n", cb.Region)
	fmt.Printf("Owned By: %s\n", cb.OwnedBy)
}
