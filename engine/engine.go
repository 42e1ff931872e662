package engine

import (
	"war/experiments/metrics"
	"war/meta"
)

// Menu options offered at every turn.
const (
	OptionExit    = 0
	OptionAttack  = 1
	OptionMission = 2
	OptionMap     = 3
	OptionPass    = 4
)

type Option func(*Engine)

// WithMetrics records every battle of the game in c.
func WithMetrics(c metrics.Collector) Option {
	return func(e *Engine) {
		e.metrics = c
	}
}

// WithMaxTurns stops the game after n turns without a winner.
func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

// WithSeed is stored with the game metrics so a game can be replayed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

func defaultOptions(e *Engine) {
	e.metrics = metrics.NewDummyCollector()
	e.maxTurns = meta.MAX_TURNS
}
