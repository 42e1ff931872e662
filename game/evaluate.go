package game

import "github.com/rs/zerolog/log"

// Conquest describes a territory that just changed hands.
type Conquest struct {
	Territory     string
	DefeatedColor string
	NewColor      string
}

// EvaluateMission checks, right after a conquest by p, whether p's mission is now complete, and
// records it on the player. Calling it again after completion is a no-op that returns true.
//
// An elimination mission completes when the conquest defeated the target color. Only the
// defeated color is checked, not the rest of the map, unless the rules require extinction.
// A hold mission recounts the player's territories on the whole map.
func EvaluateMission(p *Player, m *Map, catalog Catalog, rules Rules, c Conquest) bool {
	if p.MissionCompleted {
		return true
	}
	mission, ok := effectiveMission(p, catalog)
	if !ok {
		log.Warn().Str("player", p.Color).Int("mission", p.MissionID).Msg("unknown mission id")
		return false
	}

	done := false
	switch mission.Kind {
	case EliminateColor:
		done = c.DefeatedColor == mission.Target
		if done && rules.RequiresExtinction() {
			done = m.CountOwned(mission.Target) == 0
		}
	case HoldTerritories:
		done = m.CountOwned(p.Color) >= mission.Count
	}

	if done {
		p.MissionCompleted = true
		log.Info().Str("player", p.Color).Int("mission", mission.ID).Msg("mission completed")
	}
	return done
}

// effectiveMission resolves the player's mission, falling back to the hold mission when an
// elimination targets the player's own color.
func effectiveMission(p *Player, catalog Catalog) (Mission, bool) {
	mission, ok := catalog.Get(p.MissionID)
	if !ok {
		return Mission{}, false
	}
	if mission.IsElimination() && mission.Target == p.Color {
		return catalog.Fallback(), true
	}
	return mission, true
}

// Status is a read-only progress report of a player's mission.
type Status struct {
	Mission    Mission
	Completed  bool
	Held       int // Territories held by the player
	Required   int // Hold missions only
	TargetHeld int // Elimination missions only, territories still held by the target
}

// MissionStatus reports progress without changing the player.
func MissionStatus(p *Player, m *Map, catalog Catalog) (Status, error) {
	mission, ok := effectiveMission(p, catalog)
	if !ok {
		return Status{}, ErrUnknownMission
	}
	status := Status{
		Mission:   mission,
		Completed: p.MissionCompleted,
		Held:      m.CountOwned(p.Color),
	}
	switch mission.Kind {
	case EliminateColor:
		status.TargetHeld = m.CountOwned(mission.Target)
	case HoldTerritories:
		status.Required = mission.Count
	}
	return status, nil
}
