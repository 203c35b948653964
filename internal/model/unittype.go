package model

// UnitType is a kind of soldier that can be raised into an army.
// TokenCost may be fractional; total army cost rounds up.
type UnitType struct {
	Name      string
	TokenCost float64
}
