package tictactoe

import (
	"fmt"
	"strings"

	"arcade/game"
)

// Cell is the content of one board position.
type Cell uint8

const (
	Empty Cell = iota
	X          // played by game.P1
	O          // played by game.P2
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "_"
	}
}

// winLines are the 8 three-in-a-row lines: rows, columns, diagonals.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is a 3x3 tic-tac-toe board stored row-major. It implements
// game.Board with in-place mutation and exact undo.
type Board struct {
	cells [9]Cell
	moves int
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// Parse builds a board from a 9-character row-major layout such as
// "XX_OO____". Underscores (or dots) mark empty cells.
func Parse(layout string) (*Board, error) {
	if len(layout) != 9 {
		return nil, fmt.Errorf("layout must be 9 characters, got %d", len(layout))
	}
	b := &Board{}
	for i, r := range layout {
		switch r {
		case 'X', 'x':
			b.cells[i] = X
			b.moves++
		case 'O', 'o':
			b.cells[i] = O
			b.moves++
		case '_', '.':
			b.cells[i] = Empty
		default:
			return nil, fmt.Errorf("unexpected cell %q at index %d", r, i)
		}
	}
	return b, nil
}

func mark(p game.Player) Cell {
	switch p {
	case game.P1:
		return X
	case game.P2:
		return O
	default:
		return Empty
	}
}

func owner(c Cell) game.Player {
	switch c {
	case X:
		return game.P1
	case O:
		return game.P2
	default:
		return game.None
	}
}

// LegalMoves returns the indices of empty cells in ascending order, or
// nil if the position is terminal.
func (b *Board) LegalMoves() []game.Move {
	if b.Outcome().Terminal() {
		return nil
	}
	moves := make([]game.Move, 0, 9-b.moves)
	for i, c := range b.cells {
		if c == Empty {
			moves = append(moves, game.Move(i))
		}
	}
	return moves
}

// Apply places player's mark on the cell identified by move. It rejects
// out-of-range moves, occupied cells, and moves on a finished game.
func (b *Board) Apply(move game.Move, player game.Player) error {
	m := mark(player)
	if m == Empty {
		return fmt.Errorf("%w: no player given", game.ErrInvalidMove)
	}
	if move < 0 || int(move) >= len(b.cells) {
		return fmt.Errorf("%w: index %d out of range", game.ErrInvalidMove, move)
	}
	if b.Outcome().Terminal() {
		return fmt.Errorf("%w: %v", game.ErrInvalidMove, game.ErrGameOver)
	}
	if b.cells[move] != Empty {
		return fmt.Errorf("%w: cell %d is occupied", game.ErrInvalidMove, move)
	}
	b.cells[move] = m
	b.moves++
	return nil
}

// Undo clears the cell identified by move, reversing the most recent
// Apply of that move.
func (b *Board) Undo(move game.Move) error {
	if move < 0 || int(move) >= len(b.cells) {
		return fmt.Errorf("%w: index %d out of range", game.ErrInvalidMove, move)
	}
	if b.cells[move] == Empty {
		return fmt.Errorf("%w: cell %d is empty, nothing to undo", game.ErrInvalidMove, move)
	}
	b.cells[move] = Empty
	b.moves--
	return nil
}

// Outcome classifies the position: won if any line is complete, drawn if
// the board is full, ongoing otherwise.
func (b *Board) Outcome() game.Outcome {
	for _, line := range winLines {
		c := b.cells[line[0]]
		if c != Empty && c == b.cells[line[1]] && c == b.cells[line[2]] {
			return game.WonBy(owner(c))
		}
	}
	if b.moves == len(b.cells) {
		return game.Draw()
	}
	return game.Ongoing()
}

// Cell returns the content of position i.
func (b *Board) Cell(i int) Cell {
	return b.cells[i]
}

// String renders the board row by row, e.g. for log output.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.cells[row*3+col].String())
		}
	}
	return sb.String()
}

// Layout returns the compact 9-character row-major form accepted by Parse.
func (b *Board) Layout() string {
	var sb strings.Builder
	for _, c := range b.cells {
		sb.WriteString(c.String())
	}
	return sb.String()
}
