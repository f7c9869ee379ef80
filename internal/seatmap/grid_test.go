package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiguzelburak/bus-ticket/internal/model"
)

// The layout from the booking flow's reference scenario: two rows of
// three with an aisle at (1,2), five seats, seat 2 taken.
func scenarioLayout() (model.SeatLayout, []model.Seat) {
	layout := model.SeatLayout{
		Rows:  2,
		Cols:  3,
		Cells: []model.CellType{1, 2, 1, 1, 1, 1},
	}
	seats := []model.Seat{
		{No: 1, Row: 1, Col: 1, Status: model.SeatEmpty},
		{No: 2, Row: 1, Col: 3, Status: model.SeatTaken},
		{No: 3, Row: 2, Col: 1, Status: model.SeatEmpty},
		{No: 4, Row: 2, Col: 2, Status: model.SeatEmpty},
		{No: 5, Row: 2, Col: 3, Status: model.SeatEmpty},
	}
	return layout, seats
}

func TestRenderScenario(t *testing.T) {
	layout, seats := scenarioLayout()
	cells, err := Render(layout, seats)
	require.NoError(t, err)
	require.Len(t, cells, 6)

	// (1,2) is the aisle spacer.
	assert.Equal(t, KindAisle, cells[1].Kind)

	// Seat 2 renders as an interactive cell carrying its taken status.
	assert.Equal(t, KindSeat, cells[2].Kind)
	assert.Equal(t, 2, cells[2].Seat.No)
	assert.Equal(t, model.SeatTaken, cells[2].Seat.Status)

	// Row-major order: cell index 3 is position (2,1), holding seat 3.
	assert.Equal(t, 2, cells[3].Row)
	assert.Equal(t, 1, cells[3].Col)
	assert.Equal(t, 3, cells[3].Seat.No)
}

func TestRenderCellCount(t *testing.T) {
	layout, seats := scenarioLayout()
	cells, err := Render(layout, seats)
	require.NoError(t, err)
	assert.Len(t, cells, layout.Rows*layout.Cols)

	seatTyped := 0
	for _, ct := range layout.Cells {
		if ct == model.CellSeat {
			seatTyped++
		}
	}
	assert.LessOrEqual(t, len(SeatCells(cells)), seatTyped)
}

func TestRenderSeatEligibleGap(t *testing.T) {
	// A seat-typed cell with no record is a silent gap, not an error.
	layout := model.SeatLayout{Rows: 1, Cols: 2, Cells: []model.CellType{1, 1}}
	seats := []model.Seat{{No: 1, Row: 1, Col: 2, Status: model.SeatEmpty}}
	cells, err := Render(layout, seats)
	require.NoError(t, err)
	assert.Equal(t, KindGap, cells[0].Kind)
	assert.Equal(t, KindSeat, cells[1].Kind)
}

func TestRenderInvalidLayout(t *testing.T) {
	_, err := Render(model.SeatLayout{Rows: 2, Cols: 2, Cells: []model.CellType{1, 1, 1}}, nil)
	assert.ErrorIs(t, err, ErrInvalidLayout)

	_, err = Render(model.SeatLayout{Rows: 0, Cols: 3}, nil)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestRenderIsPure(t *testing.T) {
	layout, seats := scenarioLayout()
	a, err := Render(layout, seats)
	require.NoError(t, err)
	b, err := Render(layout, seats)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
