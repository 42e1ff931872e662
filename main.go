package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"war/communication"
	"war/engine"
	"war/experiments"
	"war/experiments/metrics"
	"war/game"
	"war/meta"

	"github.com/rs/zerolog/log"
)

func main() {
	meta.SetupEnvironment()

	cfg, err := meta.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	seed := flag.Uint64("seed", cfg.Seed, "Seed for dice, missions and dealing (0 picks one from the clock)")
	setup := flag.String("setup", cfg.Setup, "Territory setup: fixed, shuffle or manual")
	record := flag.String("record", cfg.RecordDir, "Directory for CSV battle records")
	strict := flag.Bool("strict", cfg.StrictElimination, "Elimination missions also require the target color to hold no territory")
	odds := flag.Int("odds", 0, "Simulate this many battles per garrison pair and write the odds table instead of playing")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	if *odds > 0 {
		runOdds(*seed, *odds, *record)
		return
	}

	mode, err := game.ParseSetupMode(*setup)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid setup mode")
	}
	tag, err := cfg.Language()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid language")
	}

	rules := game.NewStandardRules()
	rules.StrictElimination = *strict
	state := game.NewGameState(game.CreateMap(), rules, game.NewSource(*seed))
	console := communication.NewConsole(os.Stdin, os.Stdout, tag)

	options := []engine.Option{engine.WithSeed(*seed), engine.WithMaxTurns(cfg.MaxTurns)}
	if *record != "" {
		options = append(options, engine.WithMetrics(metrics.NewCollector()))
	}
	e := engine.LocalEngine(state, console, options...)

	log.Info().Uint64("seed", *seed).Str("setup", mode.String()).Bool("strict", *strict).Msg("starting game")
	if err := e.Setup(mode); err != nil {
		if errors.Is(err, io.EOF) {
			log.Info().Msg("input closed during setup")
			return
		}
		log.Fatal().Err(err).Msg("failed to set up the game")
	}

	_, gameMetric, battleMetrics := e.Run()

	if *record != "" {
		dir, err := experiments.Store(*record, gameMetric, battleMetrics)
		if err != nil {
			log.Error().Err(err).Msg("failed to store records")
			return
		}
		log.Info().Msgf("records stored in %s", dir)
	}
}

func runOdds(seed uint64, trials int, dir string) {
	records, err := experiments.RunOddsExperiment(seed, trials)
	if err != nil {
		log.Fatal().Err(err).Msg("odds experiment failed")
	}
	if dir == "" {
		dir = "experiments"
	}
	out, err := experiments.StoreOdds(dir, records)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store odds")
	}
	log.Info().Msgf("odds stored in %s", out)
}
