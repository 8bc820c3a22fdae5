package tictactoe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/engine"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	HumanMark    = entity.PlayerX
	ComputerMark = entity.PlayerO
)

type moveChooserDep interface {
	Decide(board entity.Board) (engine.Decision, bool)
}

// ComputerTurn is the reply applied by MaybeComputerTurn.
type ComputerTurn struct {
	Cell   int
	Status entity.Status
}

// Session owns the board of a single game. It is not safe for concurrent use.
type Session struct {
	id      string
	log     *slog.Logger
	chooser moveChooserDep
	delay   time.Duration

	board entity.Board
	turn  entity.Mark
}

// NewSession - starts a game on an empty board with the human to move.
// delay is how long the computer waits before its reply is applied.
func NewSession(logger *slog.Logger, chooser moveChooserDep, delay time.Duration) *Session {
	id := uuid.NewString()

	return &Session{
		id:      id,
		log:     logger.With("component", "session", "session_id", id),
		chooser: chooser,
		delay:   delay,
		turn:    HumanMark,
	}
}

func (that *Session) ID() string {
	return that.id
}

// Board returns a copy of the current board.
func (that *Session) Board() entity.Board {
	return that.board.Clone()
}

func (that *Session) Turn() entity.Mark {
	return that.turn
}

func (that *Session) Status() entity.Status {
	return that.board.Status()
}

func (that *Session) CheckWin(player entity.Mark) bool {
	return that.board.CheckWin(player)
}

func (that *Session) IsDraw() bool {
	return that.board.IsDraw()
}

// ApplyHumanMove - validates and places X, then hands the turn to the computer.
func (that *Session) ApplyHumanMove(cell int) (entity.Status, error) {
	if err := that.confirmTurn(HumanMark); err != nil {
		return that.Status(), err
	}

	if err := that.board.Place(cell, HumanMark); err != nil {
		return that.Status(), fmt.Errorf("invalid turn: %w", err)
	}

	status := that.advance()
	that.log.Debug("human moved", "cell", cell, "board", that.board.String(), "status", status.String())

	return status, nil
}

// MaybeComputerTurn applies the engine's reply when the game is in progress and the computer is due.
// ok is false when there was nothing to do.
func (that *Session) MaybeComputerTurn(ctx context.Context) (ComputerTurn, bool, error) {
	if that.confirmTurn(ComputerMark) != nil {
		return ComputerTurn{}, false, nil
	}

	decision, ok := that.chooser.Decide(that.board.Clone())
	if !ok {
		return ComputerTurn{}, false, nil
	}

	that.log.Debug("computer chose", "cell", decision.Cell, "score", decision.Score, "nodes", decision.Nodes)

	if err := wait(ctx, that.delay); err != nil {
		return ComputerTurn{}, false, fmt.Errorf("computer turn interrupted: %w", err)
	}

	if err := that.board.Place(decision.Cell, ComputerMark); err != nil {
		return ComputerTurn{}, false, fmt.Errorf("computer failed to make turn: %w", err)
	}

	status := that.advance()
	that.log.Debug("computer moved", "cell", decision.Cell, "board", that.board.String(), "status", status.String())

	return ComputerTurn{Cell: decision.Cell, Status: status}, true, nil
}

// confirmTurn - checks the game is still running and player is due.
func (that *Session) confirmTurn(player entity.Mark) error {
	if that.Status().IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.turn != player {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// advance passes the turn on while the game is in progress and logs the end of the game otherwise.
func (that *Session) advance() entity.Status {
	status := that.board.Status()
	if status.IsInProgress() {
		that.turn = that.turn.Opponent()
		return status
	}

	that.log.Info("game finished", "status", status.String(), "board", that.board.String())

	return status
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
