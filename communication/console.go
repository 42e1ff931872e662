package communication

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Console talks to the players over a line-based terminal.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	printer *message.Printer
	fold    cases.Caser
}

func NewConsole(in io.Reader, out io.Writer, tag language.Tag) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		printer: message.NewPrinter(tag),
		fold:    cases.Fold(),
	}
}

func (c *Console) Say(format string, args ...any) {
	c.printer.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) ReadInt(prompt string, lo, hi int) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= lo && n <= hi {
			return n, nil
		}
		log.Debug().Str("input", line).Int("lo", lo).Int("hi", hi).Msg("rejected number")
		c.Say("Enter a number from %d to %d.", lo, hi)
	}
}

// ReadToken matches answers without regard to case, so "brasil" selects "Brasil".
func (c *Console) ReadToken(prompt string, options []string) (string, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		if option, ok := MatchToken(c.fold, line, options); ok {
			return option, nil
		}
		log.Debug().Str("input", line).Strs("options", options).Msg("rejected token")
		c.Say("Choose one of: %s.", strings.Join(options, ", "))
	}
}

func (c *Console) readLine(prompt string) (string, error) {
	c.printer.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

// MatchToken finds the option equal to s under case folding.
func MatchToken(fold cases.Caser, s string, options []string) (string, bool) {
	want := fold.String(strings.TrimSpace(s))
	if want == "" {
		return "", false
	}
	for _, option := range options {
		if fold.String(option) == want {
			return option, true
		}
	}
	return "", false
}
