package communication

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Script answers prompts from a fixed list of lines and records everything said. It applies the
// same validation as Console, skipping invalid lines, and returns io.EOF once the lines run out.
type Script struct {
	Lines   []string
	Said    []string
	Prompts []string
	fold    cases.Caser
}

func NewScript(lines ...string) *Script {
	return &Script{Lines: lines, fold: cases.Fold()}
}

func (s *Script) Say(format string, args ...any) {
	s.Said = append(s.Said, fmt.Sprintf(format, args...))
}

func (s *Script) ReadInt(prompt string, lo, hi int) (int, error) {
	for {
		line, err := s.next(prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(line); err == nil && n >= lo && n <= hi {
			return n, nil
		}
		s.Say("Enter a number from %d to %d.", lo, hi)
	}
}

func (s *Script) ReadToken(prompt string, options []string) (string, error) {
	for {
		line, err := s.next(prompt)
		if err != nil {
			return "", err
		}
		if option, ok := MatchToken(s.fold, line, options); ok {
			return option, nil
		}
		s.Say("Choose one of: %s.", strings.Join(options, ", "))
	}
}

// Transcript joins everything said, one line per message.
func (s *Script) Transcript() string {
	return strings.Join(s.Said, "\n")
}

func (s *Script) next(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Lines) == 0 {
		return "", io.EOF
	}
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return strings.TrimSpace(line), nil
}
