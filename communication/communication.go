package communication

// Input is where the players' answers come from. Both reads repeat the prompt until the answer is
// valid, so callers never see an out-of-range value. A closed input returns io.EOF.
type Input interface {
	// ReadInt reads an integer in [lo, hi].
	ReadInt(prompt string, lo, hi int) (int, error)
	// ReadToken reads one of options and returns it as spelled in options.
	ReadToken(prompt string, options []string) (string, error)
}

// Output receives status lines for the players.
type Output interface {
	Say(format string, args ...any)
}

// Communicator is an interface that abstracts the communication mechanism.
type Communicator interface {
	Input
	Output
}
