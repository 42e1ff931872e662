package player

import (
	"fmt"
	"strings"

	"war/communication"
	"war/game"
	"war/meta"

	"github.com/rs/zerolog/log"
)

// Register asks how many people play and which color each one takes, then tells every player
// their mission. Missions are drawn as each player joins.
func Register(comm communication.Communicator, gs *game.GameState) ([]*game.Player, error) {
	maxPlayers := min(meta.MAX_PLAYERS, len(gs.Roster.AvailableColors()))
	if maxPlayers == 0 {
		return nil, game.ErrRosterFull
	}
	count, err := comm.ReadInt(fmt.Sprintf("Number of players (1-%d): ", maxPlayers), 1, maxPlayers)
	if err != nil {
		return nil, err
	}

	players := make([]*game.Player, 0, count)
	for i := 1; i <= count; i++ {
		p, err := registerOne(comm, gs, i)
		if err != nil {
			return players, err
		}
		players = append(players, p)
	}
	log.Info().Msgf("%d players registered: %s", len(players), strings.Join(gs.Roster.Colors(), ", "))
	return players, nil
}

func registerOne(comm communication.Communicator, gs *game.GameState, seat int) (*game.Player, error) {
	available := gs.Roster.AvailableColors()
	color, err := comm.ReadToken(
		fmt.Sprintf("Player %d, choose your color (%s): ", seat, strings.Join(available, ", ")),
		available,
	)
	if err != nil {
		return nil, err
	}
	p, err := gs.RegisterPlayer(color)
	if err != nil {
		return nil, err
	}
	AnnounceMission(comm, gs, p)
	return p, nil
}

// AnnounceMission tells a player their mission.
func AnnounceMission(out communication.Output, gs *game.GameState, p *game.Player) {
	mission, ok := gs.Catalog.Get(p.MissionID)
	if !ok {
		log.Warn().Str("player", p.Color).Int("mission", p.MissionID).Msg("unknown mission id")
		return
	}
	out.Say("%s, your mission: %s", p.Color, mission.Description)
}
