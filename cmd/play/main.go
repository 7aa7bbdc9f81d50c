package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"memorygame-server/internal/rng"
	"memorygame-server/pkg/deck"
	"memorygame-server/pkg/playable/memory"
)

const defaultWidth = 80
const help = "Enter a card number to turn it over, r to deal again, q to quit."

var symbols = flag.String("symbols", "", "comma separated symbols to play with")
var seed = flag.Int64("seed", 0, "shuffle seed; 0 deals a random deck")
var revealDelay = flag.Duration("delay", time.Second, "how long a mismatched pair stays face up")
var verbose = flag.Bool("v", false, "log game events to stderr")

func main() {
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	changed := make(chan struct{}, 1)
	opts := memory.DefaultOptions()
	opts.RevealDelay = *revealDelay
	opts.OnChange = func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}

	if *symbols != "" {
		opts.Symbols = deck.SymbolsFromStrings(strings.Split(*symbols, ","))
	}

	if *seed != 0 {
		opts.Generator = rng.NewSeeded(*seed)
	}

	session, err := memory.NewSession(logger, opts)
	if err != nil {
		logger.WithError(err).Fatal("could not deal the game")
	}
	defer session.Close()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	width := defaultWidth
	if interactive {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	p := &player{
		session:     session,
		out:         os.Stdout,
		interactive: interactive,
		columns:     gridColumns(session.Status().Pairs*2, width),
	}

	lines := make(chan string)
	go readLines(os.Stdin, lines)

	fmt.Println(help)
	p.render(true)
	for {
		select {
		case <-changed:
			if p.render(false) {
				return
			}
		case line, ok := <-lines:
			if !ok {
				return
			}

			if !p.handle(line) {
				return
			}
		}
	}
}

func readLines(r io.Reader, lines chan<- string) {
	defer close(lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
}

type player struct {
	session     *memory.Session
	out         io.Writer
	interactive bool
	columns     int
	last        memory.Status
}

// render draws the board, returns true once the game has been won
// Clock ticks are only redrawn on a terminal.
func (p *player) render(force bool) bool {
	status := p.session.Status()
	if !force && !p.interactive && status.Generation == p.last.Generation &&
		status.Moves == p.last.Moves && status.Phase == p.last.Phase {
		return false
	}
	p.last = status

	if p.interactive {
		fmt.Fprint(p.out, "\033[H\033[2J")
		fmt.Fprintln(p.out, help)
	}

	renderBoard(p.out, status, p.columns)
	if details, won := p.session.GetEndOfGameDetails(); won {
		fmt.Fprintln(p.out, details.Message)
		return true
	}

	return false
}

// handle runs a line of input, returns false when the player quits
func (p *player) handle(line string) bool {
	cmd, position, err := parseCommand(line)
	if err != nil {
		fmt.Fprintln(p.out, err)
	}

	switch cmd {
	case commandQuit:
		return false
	case commandReset:
		p.session.Reset()
	case commandReveal:
		if outcome := p.session.RevealCard(position); outcome == memory.OutcomeIgnored {
			fmt.Fprintf(p.out, "Card %d can't be turned over right now\n", position)
		}
	default:
		fmt.Fprintln(p.out, help)
	}

	return true
}
