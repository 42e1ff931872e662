package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateMissionHold(t *testing.T) {
	catalog := StandardCatalog()
	rules := NewStandardRules()
	m := smallMap(
		Territory{Name: "Brasil", Color: "Preto", Troops: 8},
		Territory{Name: "Peru", Color: "Preto", Troops: 9},
		Territory{Name: "Chile", Color: "Branco", Troops: 3},
	)
	p := &Player{Color: "Preto", MissionID: 6} // Hold 3

	require.False(t, EvaluateMission(p, m, catalog, rules, Conquest{}), "2 territories is not enough")
	require.False(t, p.MissionCompleted)

	chile, _ := m.Find("Chile")
	chile.Color = "Preto"
	conquest := Conquest{Territory: "Chile", DefeatedColor: "Branco", NewColor: "Preto"}

	require.True(t, EvaluateMission(p, m, catalog, rules, conquest))
	require.True(t, p.MissionCompleted)

	chile.Color = "Branco"
	require.True(t, EvaluateMission(p, m, catalog, rules, conquest), "Completion is never undone")
	require.True(t, p.MissionCompleted)
}

func TestEvaluateMissionElimination(t *testing.T) {
	catalog := StandardCatalog()
	m := smallMap(
		Territory{Name: "Brasil", Color: "Preto", Troops: 8},
		Territory{Name: "Chile", Color: "Preto", Troops: 1},
		Territory{Name: "America", Color: "Branco", Troops: 4},
	)
	conquest := Conquest{Territory: "Chile", DefeatedColor: "Branco", NewColor: "Preto"}

	t.Run("completing when the defeated color is the target", func(t *testing.T) {
		p := &Player{Color: "Preto", MissionID: 2} // Destroy Branco

		require.True(t, EvaluateMission(p, m, catalog, NewStandardRules(), conquest),
			"Only the defeated color is checked, America still holds Branco troops")
		require.True(t, p.MissionCompleted)
	})

	t.Run("waiting for extinction under strict rules", func(t *testing.T) {
		p := &Player{Color: "Preto", MissionID: 2}
		rules := NewStandardRules()
		rules.StrictElimination = true

		require.False(t, EvaluateMission(p, m, catalog, rules, conquest))
		require.False(t, p.MissionCompleted)
	})

	t.Run("ignoring conquests of other colors", func(t *testing.T) {
		p := &Player{Color: "Preto", MissionID: 5} // Destroy Vermelho

		require.False(t, EvaluateMission(p, m, catalog, NewStandardRules(), conquest))
	})

	t.Run("treating an own-color target as the fallback", func(t *testing.T) {
		p := &Player{Color: "Preto", MissionID: 3} // Destroy Preto

		require.False(t, EvaluateMission(p, m, catalog, NewStandardRules(), conquest), "Hold 5 needs five territories")
	})
}

func TestMissionStatus(t *testing.T) {
	catalog := StandardCatalog()
	m := CreateMap()

	status, err := MissionStatus(&Player{Color: "Preto", MissionID: 7}, m, catalog)
	require.NoError(t, err)
	require.Equal(t, 2, status.Held)
	require.Equal(t, 4, status.Required)
	require.False(t, status.Completed)

	status, err = MissionStatus(&Player{Color: "Preto", MissionID: 2}, m, catalog)
	require.NoError(t, err)
	require.Equal(t, 3, status.TargetHeld)

	_, err = MissionStatus(&Player{Color: "Preto", MissionID: 42}, m, catalog)
	require.ErrorIs(t, err, ErrUnknownMission)
}
