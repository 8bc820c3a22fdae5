package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

// Mark is the content of a single cell.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// WinCombos holds every winning line: 3 rows, 3 columns and 2 diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a row-major 3x3 grid. It is a value type, so assigning it copies all cells.
type Board [BoardSize]Mark

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) isPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Place - marks a cell. The board is left unchanged on error.
func (that *Board) Place(index int, player Mark) error {
	if !player.isPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, player)
	}

	if index < 0 || index >= len(that) {
		return fmt.Errorf("%w: cell %d", apperror.ErrIndexOutOfRange, index)
	}

	if that[index] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrIndexOccupied, index)
	}

	that[index] = player

	return nil
}

func (that *Board) IsOccupied(index int) bool {
	if index < 0 || index >= len(that) {
		return false
	}
	return that[index] != EmptyCell
}

// CheckWin reports whether any winning line is fully held by player.
func (that *Board) CheckWin(player Mark) bool {
	for _, combo := range WinCombos {
		if that[combo[0]] == player && that[combo[1]] == player && that[combo[2]] == player {
			return true
		}
	}
	return false
}

// IsDraw - a full board where nobody has won.
func (that *Board) IsDraw() bool {
	if that.CheckWin(PlayerX) || that.CheckWin(PlayerO) {
		return false
	}
	return that.IsFull()
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// EmptyCells returns free indices in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that *Board) Clone() Board {
	return *that
}

// Status derives the game status from the cells.
func (that *Board) Status() Status {
	switch {
	case that.CheckWin(PlayerX):
		return Won(PlayerX)
	case that.CheckWin(PlayerO):
		return Won(PlayerO)
	case that.IsFull():
		return Status{Outcome: OutcomeDraw}
	default:
		return Status{Outcome: OutcomeInProgress}
	}
}

// String renders the board as three rows separated by slashes, e.g. "XO_/_X_/__O".
func (that Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('/')
		}
		if cell == EmptyCell {
			sb.WriteByte('_')
			continue
		}
		sb.WriteString(string(cell))
	}
	return sb.String()
}
