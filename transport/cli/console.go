package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

var (
	ErrInputClosed = errors.New("input closed before the game ended")
	ErrQuit        = errors.New("player quit")
)

type session interface {
	Board() entity.Board
	Status() entity.Status
	ApplyHumanMove(cell int) (entity.Status, error)
	MaybeComputerTurn(ctx context.Context) (tictactoe.ComputerTurn, bool, error)
}

// Console plays games over a line-based reader and writer.
// Lines are read in a background goroutine so a prompt can be abandoned when the context ends.
type Console struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer
	style  table.Style

	startOnce sync.Once
	closeOnce sync.Once
	lines     chan string
	stop      chan struct{}
	readErr   error
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, style table.Style) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     bufio.NewScanner(in),
		out:    out,
		style:  style,
		lines:  make(chan string),
		stop:   make(chan struct{}),
	}
}

// Close - releases the reader goroutine once it gets a line or the input ends.
func (that *Console) Close() {
	that.closeOnce.Do(func() {
		close(that.stop)
	})
}

// Play - runs one game until it finishes, the input ends or the player quits.
func (that *Console) Play(ctx context.Context, game session) error {
	that.render(game.Board())

	for {
		line, err := that.prompt(ctx, "Your move (1-9, q to quit): ")
		if err != nil {
			return err
		}

		// a line may arrive together with the cancellation
		if err = ctx.Err(); err != nil {
			return err
		}

		if isQuit(line) {
			return ErrQuit
		}

		status, err := that.applyHumanMove(game, line)
		if err != nil {
			that.println(err.Error())
			continue
		}

		if status.IsFinished() {
			that.finish(game)
			return nil
		}

		turn, ok, err := game.MaybeComputerTurn(ctx)
		if err != nil {
			return fmt.Errorf("computer turn failed: %w", err)
		}

		if ok {
			that.println(fmt.Sprintf("Computer plays %d.", turn.Cell+1))
		}

		if game.Status().IsFinished() {
			that.finish(game)
			return nil
		}

		that.render(game.Board())
	}
}

// AskReplay - true when the player answers y or yes.
func (that *Console) AskReplay(ctx context.Context) bool {
	line, err := that.prompt(ctx, "Play again? [y/N]: ")
	if err != nil {
		return false
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (that *Console) applyHumanMove(game session, line string) (entity.Status, error) {
	number, err := strconv.Atoi(line)
	if err != nil {
		return entity.Status{}, fmt.Errorf("%q is not a number, pick a cell from 1 to 9", line)
	}

	status, err := game.ApplyHumanMove(number - 1)
	switch {
	case errors.Is(err, apperror.ErrIndexOutOfRange):
		return status, fmt.Errorf("cell %d does not exist, pick a cell from 1 to 9", number)
	case errors.Is(err, apperror.ErrIndexOccupied):
		return status, fmt.Errorf("cell %d is already taken", number)
	case err != nil:
		that.logger.Warn("move rejected", "cell", number, "error", err)
		return status, fmt.Errorf("move rejected: %w", err)
	}

	return status, nil
}

func (that *Console) finish(game session) {
	that.render(game.Board())
	that.println(outcomeMessage(game.Status()))
}

func outcomeMessage(status entity.Status) string {
	switch {
	case status.Outcome == entity.OutcomeDraw:
		return "It's a draw!"
	case status.Winner == tictactoe.HumanMark:
		return "You win!"
	case status.Winner == tictactoe.ComputerMark:
		return "Computer wins!"
	default:
		return "Game in progress."
	}
}

func (that *Console) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(that.out, text)

	that.startOnce.Do(func() {
		go that.read()
	})

	select {
	case <-ctx.Done():
		fmt.Fprintln(that.out)
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if ok {
			return strings.TrimSpace(line), nil
		}

		fmt.Fprintln(that.out)
		if that.readErr != nil {
			return "", fmt.Errorf("failed to read input: %w", that.readErr)
		}
		return "", ErrInputClosed
	}
}

// read feeds lines to prompt until the input ends or the console is closed.
func (that *Console) read() {
	defer close(that.lines)

	for that.in.Scan() {
		select {
		case that.lines <- that.in.Text():
		case <-that.stop:
			return
		}
	}

	that.readErr = that.in.Err()
}

func (that *Console) println(text string) {
	fmt.Fprintln(that.out, text)
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return true
	default:
		return false
	}
}
