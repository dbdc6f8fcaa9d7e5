package game

import "errors"

// Player identifies one of the two sides of a game, or nobody.
type Player uint8

const (
	None Player = iota
	P1
	P2
)

// Opponent returns the other player. The opponent of None is None.
func (p Player) Opponent() Player {
	switch p {
	case P1:
		return P2
	case P2:
		return P1
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case P1:
		return "player1"
	case P2:
		return "player2"
	default:
		return "nobody"
	}
}

// Move identifies a legal action on a Board, typically a position index.
// Moves are opaque to everything outside the Board that produced them:
// consumers only pass them back to Apply and Undo.
type Move int

// Status classifies a position as ongoing or as one of the two kinds of
// terminal position.
type Status uint8

const (
	StatusOngoing Status = iota
	StatusDraw
	StatusWon
)

// Outcome is the terminal classification of a board position.
type Outcome struct {
	Status Status
	Winner Player // set only when Status is StatusWon
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func WonBy(p Player) Outcome {
	return Outcome{Status: StatusWon, Winner: p}
}

// Terminal reports whether the position is over.
func (o Outcome) Terminal() bool {
	return o.Status != StatusOngoing
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusDraw:
		return "draw"
	case StatusWon:
		return "won by " + o.Winner.String()
	default:
		return "ongoing"
	}
}

// Board is the abstraction a host game supplies to the searcher and the
// agents. A board has a finite, fixed set of positions, each empty or
// occupied by exactly one of two players. Apply and Undo must be exact
// inverses: undoing a move recovers the prior state bit for bit.
//
// A Board is owned by one caller at a time. The searcher mutates it in
// place during a search and restores it before returning; it must not be
// read or written from elsewhere while a search is in flight.
type Board interface {
	// LegalMoves returns every currently playable move in a stable
	// enumeration order. The order determines tie-breaking among
	// equally-scored moves.
	LegalMoves() []Move

	// Apply mutates the board to reflect player making move. It fails
	// with ErrInvalidMove if the move is not currently legal, leaving the
	// board unchanged.
	Apply(move Move, player Player) error

	// Undo exactly reverses the most recent Apply of move.
	Undo(move Move) error

	// Outcome classifies the current position.
	Outcome() Outcome
}

var (
	// ErrInvalidMove is returned when a caller tries to apply a move that
	// is not legal in the current position.
	ErrInvalidMove = errors.New("move is not legal in the current position")

	// ErrInvalidState is returned when a board's terminal classification
	// is inconsistent with its legal moves. It indicates a programming
	// error in the Board implementation, not a recoverable condition.
	ErrInvalidState = errors.New("board outcome is inconsistent with its legal moves")

	// ErrGameOver is returned when an agent is asked to move on a
	// position that is already terminal.
	ErrGameOver = errors.New("game is already over")
)
