package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var styles = map[string]table.Style{
	"default": table.StyleDefault,
	"light":   table.StyleLight,
	"rounded": table.StyleRounded,
	"double":  table.StyleDouble,
	"bold":    table.StyleBold,
}

// StyleByName returns the table style for name, falling back to light.
func StyleByName(name string) (table.Style, bool) {
	style, ok := styles[strings.ToLower(name)]
	if !ok {
		return table.StyleLight, false
	}
	return style, true
}

// RenderBoard draws the board as a 3x3 table. Empty cells show the number the player types to pick them.
func RenderBoard(board entity.Board, style table.Style) string {
	tw := table.NewWriter()
	tw.SetStyle(style)
	tw.Style().Options.SeparateRows = true

	for row := 0; row < 3; row++ {
		cells := table.Row{}
		for col := 0; col < 3; col++ {
			index := row*3 + col
			if board[index] == entity.EmptyCell {
				cells = append(cells, strconv.Itoa(index+1))
				continue
			}
			cells = append(cells, string(board[index]))
		}
		tw.AppendRow(cells)
	}

	return tw.Render()
}

func (that *Console) render(board entity.Board) {
	fmt.Fprintln(that.out, RenderBoard(board, that.style))
}
