package game

import "errors"

var (
	ErrNotEnoughTroops    = errors.New("attacking territory needs at least two troops")
	ErrSameColor          = errors.New("target territory is held by the same color")
	ErrNotOwner           = errors.New("territory is not held by the acting player")
	ErrUnknownTerritory   = errors.New("territory not found")
	ErrSameTerritory      = errors.New("a territory cannot attack itself")
	ErrInvalidDice        = errors.New("dice count out of range")
	ErrInvalidMove        = errors.New("troop count out of range")
	ErrBattleOver         = errors.New("battle is already concluded")
	ErrNoConquest         = errors.New("no territory was conquered")
	ErrInvalidName        = errors.New("invalid territory name")
	ErrDuplicateTerritory = errors.New("territory already exists")
	ErrUnknownColor       = errors.New("color is not in the palette")
	ErrColorTaken         = errors.New("color already taken by another player")
	ErrRosterFull         = errors.New("no colors left for new players")
	ErrUnknownPlayer      = errors.New("player not registered")
	ErrUnknownMission     = errors.New("mission not in catalog")
	ErrGameOver           = errors.New("game is over")
	ErrInvalidSetup       = errors.New("invalid setup")
)
