// Package seatmap interprets a trip's layout descriptor into a renderable
// grid of cells.  Rendering is a pure function of the layout and the seat
// records: the same inputs always produce the same cell sequence.
package seatmap

import (
	"errors"
	"fmt"

	"github.com/adiguzelburak/bus-ticket/internal/model"
)

// ErrInvalidLayout is returned when a layout's dimensions and cell list
// disagree.  Schemas coming from the backend should never trigger this;
// it guards against hand-built fixtures and corrupted payloads.
var ErrInvalidLayout = errors.New("invalid seat layout")

// Kind classifies a rendered cell.
type Kind int

const (
	// KindAisle is the non-interactive walkway spacer.
	KindAisle Kind = iota
	// KindGap is a position with no seat record: either a structurally
	// empty cell or a seat-eligible cell left unassigned (driver area).
	// Gaps render as blank spacers and are not an error.
	KindGap
	// KindSeat is an interactive cell carrying a concrete seat.
	KindSeat
)

// Cell is one rendered position of the grid.  Row and Col are 1-indexed.
// Seat is only meaningful when Kind is KindSeat.
type Cell struct {
	Row  int
	Col  int
	Kind Kind
	Seat model.Seat
}

// Render expands the layout into exactly Rows*Cols cells in row-major
// order.  An aisle-typed layout cell becomes a KindAisle spacer; any
// other position becomes a KindSeat cell when a seat record occupies
// (row, col) and a KindGap spacer otherwise.
func Render(layout model.SeatLayout, seats []model.Seat) ([]Cell, error) {
	if layout.Rows <= 0 || layout.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrInvalidLayout, layout.Rows, layout.Cols)
	}
	if len(layout.Cells) != layout.Rows*layout.Cols {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrInvalidLayout, len(layout.Cells), layout.Rows, layout.Cols)
	}

	// Index records by grid position. Duplicate positions keep the first
	// record, matching the lookup order of the original data set.
	type pos struct{ row, col int }
	byPos := make(map[pos]model.Seat, len(seats))
	for _, s := range seats {
		p := pos{s.Row, s.Col}
		if _, ok := byPos[p]; !ok {
			byPos[p] = s
		}
	}

	cells := make([]Cell, 0, layout.Rows*layout.Cols)
	for r := 1; r <= layout.Rows; r++ {
		for c := 1; c <= layout.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			switch layout.Cells[(r-1)*layout.Cols+(c-1)] {
			case model.CellAisle:
				cell.Kind = KindAisle
			default:
				if seat, ok := byPos[pos{r, c}]; ok {
					cell.Kind = KindSeat
					cell.Seat = seat
				} else {
					cell.Kind = KindGap
				}
			}
			cells = append(cells, cell)
		}
	}
	return cells, nil
}

// SeatCells filters a rendered grid down to its interactive seat cells,
// preserving row-major order.
func SeatCells(cells []Cell) []Cell {
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if c.Kind == KindSeat {
			out = append(out, c)
		}
	}
	return out
}
