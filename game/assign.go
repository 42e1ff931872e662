package game

import "github.com/rs/zerolog/log"

// AssignMission draws a mission for a candidate joining the roster. An elimination mission whose
// target is the candidate's own color, or a color no registered player has, is replaced by the
// catalog fallback. The draw is never repeated.
func AssignMission(src Source, candidate string, roster *Roster, catalog Catalog) int {
	drawn := catalog[src.Intn(len(catalog))]
	if !drawn.IsElimination() {
		return drawn.ID
	}

	if drawn.Target == candidate || !roster.Has(drawn.Target) {
		fallback := catalog.Fallback()
		log.Debug().
			Str("player", candidate).
			Int("drawn", drawn.ID).
			Str("target", drawn.Target).
			Int("fallback", fallback.ID).
			Msg("elimination mission replaced by fallback")
		return fallback.ID
	}
	return drawn.ID
}

// ReconcileMissions replaces elimination missions whose target color holds no territory on the
// map, since no conquest could ever complete them. It returns the players whose mission changed.
func ReconcileMissions(roster *Roster, m *Map, catalog Catalog) []*Player {
	changed := []*Player{}
	fallback := catalog.Fallback()
	for _, p := range roster.Players {
		mission, ok := catalog.Get(p.MissionID)
		if !ok || !mission.IsElimination() {
			continue
		}
		if m.CountOwned(mission.Target) == 0 {
			log.Debug().
				Str("player", p.Color).
				Str("target", mission.Target).
				Msg("target color holds no territory, using fallback mission")
			p.MissionID = fallback.ID
			changed = append(changed, p)
		}
	}
	return changed
}
