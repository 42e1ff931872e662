// meta/meta.go
package meta

// MAX_PLAYERS is the number of army colors players can pick from.
const MAX_PLAYERS = 6

// MAX_TURNS stops a game nobody manages to win.
const MAX_TURNS = 500

// DEFAULT_LANG is the BCP 47 tag of the console printer.
const DEFAULT_LANG = "en-US"
