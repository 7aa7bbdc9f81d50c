package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"memorygame-server/pkg/playable/memory"
)

const cellWidth = 6

// gridColumns picks a roughly square grid that still fits the terminal width
func gridColumns(cards, width int) int {
	columns := 1
	for columns*columns < cards {
		columns++
	}

	if maxColumns := width / cellWidth; maxColumns > 0 && columns > maxColumns {
		columns = maxColumns
	}

	return columns
}

func renderCell(card memory.CardView) string {
	switch card.State {
	case memory.CardMatched:
		return fmt.Sprintf("  %s  ", *card.Symbol)
	case memory.CardRevealed:
		return fmt.Sprintf(" [%s] ", *card.Symbol)
	default:
		return fmt.Sprintf(" %3d  ", card.Position)
	}
}

func renderBoard(w io.Writer, status memory.Status, columns int) {
	var sb strings.Builder
	for i, card := range status.Deck {
		sb.WriteString(renderCell(card))
		if (i+1)%columns == 0 || i == len(status.Deck)-1 {
			sb.WriteString("\n")
		}
	}

	fmt.Fprintf(&sb, "\nTime: %s  Moves: %d  Pairs: %d/%d\n", status.Elapsed, status.Moves, status.Points, status.Pairs)
	_, _ = io.WriteString(w, sb.String())
}

type command int

const (
	commandReveal command = iota
	commandReset
	commandQuit
	commandHelp
)

func parseCommand(line string) (command, int, error) {
	line = strings.ToLower(strings.TrimSpace(line))
	switch line {
	case "q", "quit", "exit":
		return commandQuit, 0, nil
	case "r", "reset":
		return commandReset, 0, nil
	case "", "?", "h", "help":
		return commandHelp, 0, nil
	}

	position, err := strconv.Atoi(line)
	if err != nil {
		return commandHelp, 0, fmt.Errorf("not a card: %s", line)
	}

	return commandReveal, position, nil
}
