package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"minmax/experiments/metrics"
	"minmax/tictactoe"
)

var separators = strings.NewReplacer(",", " ", "(", " ", ")", " ")

// Human reads tic-tac-toe moves as "row column" lines, commas and
// parentheses allowed, and asks again until the game accepts one.
type Human struct {
	in      *bufio.Scanner
	out     io.Writer
	symbols tictactoe.Symbols
}

func NewHuman(in io.Reader, out io.Writer, symbols tictactoe.Symbols) *Human {
	return &Human{
		in:      bufio.NewScanner(in),
		out:     out,
		symbols: symbols,
	}
}

func (h *Human) FindMove(state tictactoe.State) (tictactoe.Move, metrics.SearchMetric, error) {
	start := time.Now()
	fmt.Fprintln(h.out, state.Render(h.symbols))
	for {
		fmt.Fprint(h.out, "Your move (row, column) : ")
		if !h.in.Scan() {
			err := h.in.Err()
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return tictactoe.Move{}, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", err)
		}

		var move tictactoe.Move
		if _, err := fmt.Sscan(separators.Replace(h.in.Text()), &move.Row, &move.Col); err != nil {
			fmt.Fprintln(h.out, "Invalid move.")
			continue
		}
		fmt.Fprintf(h.out, "You are playing %v\n", move)
		if _, err := state.Play(move); err != nil {
			fmt.Fprintln(h.out, "Invalid move.")
			continue
		}
		return move, metrics.SearchMetric{Duration: time.Since(start)}, nil
	}
}
