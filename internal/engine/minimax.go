package engine

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// winScore bounds every terminal score. Depth never exceeds 8 inside Minimax,
// so a win is always worth more than a draw and a loss always less.
const winScore = 10

// Decision is the outcome of a search from one position.
type Decision struct {
	Cell  int
	Score int
	Nodes int
}

// Engine picks moves for the computer player (O) by exhaustive minimax.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// ChooseComputerMove returns the best empty cell for O, or false when the board has no empty cell.
func ChooseComputerMove(board entity.Board) (int, bool) {
	decision, ok := New().Decide(board)
	return decision.Cell, ok
}

// Decide scores every empty cell in index order and keeps the first one with the highest score.
func (that *Engine) Decide(board entity.Board) (Decision, bool) {
	s := &search{}

	best := Decision{Cell: -1, Score: math.MinInt}
	for _, cell := range board.EmptyCells() {
		scratch := board.Clone()
		scratch[cell] = entity.PlayerO

		score := s.minimax(scratch, 0, false)
		if score > best.Score {
			best.Cell = cell
			best.Score = score
		}
	}

	if best.Cell == -1 {
		return Decision{Cell: -1}, false
	}

	best.Nodes = s.nodes

	return best, true
}

// Minimax scores a position from O's point of view. isMaximizing is true when O is to move.
func Minimax(board entity.Board, depth int, isMaximizing bool) int {
	return (&search{}).minimax(board, depth, isMaximizing)
}

type search struct {
	nodes int
}

func (that *search) minimax(board entity.Board, depth int, isMaximizing bool) int {
	that.nodes++

	if board.CheckWin(entity.PlayerX) {
		return depth - winScore
	}

	if board.CheckWin(entity.PlayerO) {
		return winScore - depth
	}

	if board.IsFull() {
		return 0
	}

	mark, best := entity.PlayerX, math.MaxInt
	if isMaximizing {
		mark, best = entity.PlayerO, math.MinInt
	}

	for _, cell := range board.EmptyCells() {
		// board is passed by value, so each branch works on its own copy
		next := board
		next[cell] = mark

		score := that.minimax(next, depth+1, !isMaximizing)
		if isMaximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
