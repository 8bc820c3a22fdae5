package engine

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestChooseComputerMove(t *testing.T) {
	tests := []struct {
		name  string
		board entity.Board
		want  int
	}{
		{
			name:  "Immediate win on the top row",
			board: entity.Board{o, o, e, x, x, e, e, e, e},
			want:  2,
		},
		{
			name:  "Immediate win beats blocking",
			board: entity.Board{x, x, e, o, o, e, e, e, e},
			want:  5,
		},
		{
			name:  "Block X on the top row",
			board: entity.Board{x, x, e, e, o, e, e, e, e},
			want:  2,
		},
		{
			name:  "Block even when the game is lost anyway",
			board: entity.Board{x, x, e, o, e, e, e, e, e},
			want:  2,
		},
		{
			name:  "Center after a corner opening",
			board: entity.Board{x, e, e, e, e, e, e, e, e},
			want:  4,
		},
		{
			name:  "First corner after a center opening",
			board: entity.Board{e, e, e, e, x, e, e, e, e},
			want:  0,
		},
		{
			name:  "Only one cell left",
			board: entity.Board{x, o, x, x, o, o, o, x, e},
			want:  8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: the engine picks a move
			cell, ok := ChooseComputerMove(tt.board)

			// Then: the expected cell is chosen
			require.True(t, ok)
			require.Equal(t, tt.want, cell)
		})
	}
}

func TestChooseComputerMove_FullBoard(t *testing.T) {
	// Given: a board without empty cells
	board := entity.Board{x, o, x, x, o, o, o, x, x}

	// When: the engine is asked for a move
	cell, ok := ChooseComputerMove(board)

	// Then: no move is returned
	require.False(t, ok)
	require.Equal(t, -1, cell)
}

func TestChooseComputerMove_DoesNotMutateBoard(t *testing.T) {
	board := entity.Board{x, e, e, e, o, e, e, e, x}
	before := board

	_, ok := ChooseComputerMove(board)

	require.True(t, ok)
	require.Equal(t, before, board)
}

func TestEngine_Decide(t *testing.T) {
	// Given: O can win right away
	board := entity.Board{o, o, e, x, x, e, x, e, e}

	// When: the engine decides
	decision, ok := New().Decide(board)

	// Then: the winning cell is scored as the fastest possible win
	require.True(t, ok)
	assert.Equal(t, 2, decision.Cell)
	assert.Equal(t, winScore, decision.Score)
	assert.Positive(t, decision.Nodes)
}

func TestMinimax_TerminalScores(t *testing.T) {
	xWins := entity.Board{x, x, x, o, o, e, e, e, e}
	oWins := entity.Board{o, o, o, x, x, e, x, e, e}
	draw := entity.Board{x, o, x, x, o, o, o, x, x}

	t.Run("Faster O wins score higher", func(t *testing.T) {
		assert.Equal(t, 10, Minimax(oWins, 0, false))
		assert.Equal(t, 7, Minimax(oWins, 3, false))
		assert.Greater(t, Minimax(oWins, 1, true), Minimax(oWins, 5, true))
	})

	t.Run("Slower X wins score higher", func(t *testing.T) {
		assert.Equal(t, -9, Minimax(xWins, 1, true))
		assert.Equal(t, -7, Minimax(xWins, 3, true))
		assert.Less(t, Minimax(xWins, 1, true), Minimax(xWins, 5, true))
	})

	t.Run("Any win beats a draw and any draw beats a loss", func(t *testing.T) {
		for depth := 0; depth <= 8; depth++ {
			assert.Greater(t, Minimax(oWins, depth, true), Minimax(draw, depth, true))
			assert.Less(t, Minimax(xWins, depth, true), Minimax(draw, depth, true))
		}
		assert.Equal(t, 0, Minimax(draw, 4, false))
	})

	t.Run("X win is checked before O win", func(t *testing.T) {
		both := entity.Board{x, x, x, o, o, o, e, e, e}

		assert.Equal(t, -10, Minimax(both, 0, true))
	})
}

func TestMinimax_EmptyBoardIsDraw(t *testing.T) {
	require.Equal(t, 0, Minimax(entity.Board{}, 0, false))
}

// TestEngine_NeverLoses plays every possible sequence of X moves against the engine.
func TestEngine_NeverLoses(t *testing.T) {
	var games, draws int

	var play func(board entity.Board)
	play = func(board entity.Board) {
		for _, cell := range board.EmptyCells() {
			next := board
			require.NoError(t, next.Place(cell, entity.PlayerX))

			require.False(t, next.CheckWin(entity.PlayerX), "X won: %s", next)
			if next.IsFull() {
				games++
				draws++
				continue
			}

			reply, ok := ChooseComputerMove(next)
			require.True(t, ok)
			require.False(t, next.IsOccupied(reply), "engine picked occupied cell %d on %s", reply, next)
			require.NoError(t, next.Place(reply, entity.PlayerO))

			switch status := next.Status(); {
			case status.Outcome == entity.OutcomeWon:
				require.Equal(t, entity.PlayerO, status.Winner)
				games++
			case status.Outcome == entity.OutcomeDraw:
				games++
				draws++
			default:
				play(next)
			}
		}
	}

	play(entity.Board{})

	require.Positive(t, games)
	t.Logf("games: %d, draws: %d", games, draws)
}

// TestEngine_AlwaysBlocks checks every reachable position with O to move: if some move
// stops X from winning on the next ply, the engine must pick such a move.
func TestEngine_AlwaysBlocks(t *testing.T) {
	seen := map[entity.Board]bool{}
	checked := 0

	var walk func(board entity.Board, turn entity.Mark)
	walk = func(board entity.Board, turn entity.Mark) {
		if seen[board] || board.Status().IsFinished() {
			return
		}
		seen[board] = true

		if turn == entity.PlayerO {
			checkBlock(t, board)
			checked++
		}

		for _, cell := range board.EmptyCells() {
			next := board
			next[cell] = turn
			walk(next, turn.Opponent())
		}
	}

	walk(entity.Board{}, entity.PlayerX)

	require.Positive(t, checked)
}

func checkBlock(t *testing.T, board entity.Board) {
	t.Helper()

	cell, ok := ChooseComputerMove(board)
	require.True(t, ok)
	require.False(t, board.IsOccupied(cell))

	if hasImmediateWin(board, entity.PlayerO) {
		after := board
		after[cell] = entity.PlayerO
		require.True(t, after.CheckWin(entity.PlayerO), "missed a win on %s", board)
		return
	}

	blockExists := false
	for _, candidate := range board.EmptyCells() {
		after := board
		after[candidate] = entity.PlayerO
		if !hasImmediateWin(after, entity.PlayerX) {
			blockExists = true
			break
		}
	}

	if !blockExists {
		return
	}

	after := board
	after[cell] = entity.PlayerO
	require.False(t, hasImmediateWin(after, entity.PlayerX), "cell %d lets X win on %s", cell, board)
}

func hasImmediateWin(board entity.Board, player entity.Mark) bool {
	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = player
		if next.CheckWin(player) {
			return true
		}
	}
	return false
}
