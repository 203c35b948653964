package model

import "errors"

// Common errors used across the application
var (
	// Validation errors
	ErrValidation = errors.New("missing or blank required field")

	// Not-found errors
	ErrArmyNotFound       = errors.New("army not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrFactionNotFound    = errors.New("faction not found")
	ErrRegionNotFound     = errors.New("region not found")
	ErrClaimBuildNotFound = errors.New("claimbuild not found")
	ErrUnitTypeNotFound   = errors.New("unit type not found")
	ErrAccountNotFound    = errors.New("game account not found")

	// Army creation errors
	ErrArmyNameTaken    = errors.New("army name already taken")
	ErrMaxArmiesReached = errors.New("claimbuild has reached its maximum army count")
	ErrNotEnoughTokens  = errors.New("unit cost exceeds available tokens")

	// Army binding errors
	ErrNotFactionLeader = errors.New("player is not the faction leader")
	ErrFactionMismatch  = errors.New("army belongs to a different faction")
	ErrRegionMismatch   = errors.New("army is in a different region than the character")
	ErrArmyAlreadyBound = errors.New("army is already bound to another player")
	ErrNoRPChar         = errors.New("player has no roleplay character")

	// Player errors
	ErrPlayerExists    = errors.New("player already exists")
	ErrRPCharExists    = errors.New("player already has a roleplay character")
	ErrRPCharNameTaken = errors.New("roleplay character name already taken")
	ErrTitleTooLong    = errors.New("roleplay character title too long")
)
