package layout

import (
	"errors"
	"fmt"
)

// Slots is the number of name tags the form holds.
const Slots = 6

// ErrOutOfRange is returned when a slot index falls outside [0, Slots).
var ErrOutOfRange = errors.New("layout: slot index out of range")

// Coordinate addresses a cell of the 2x3 label grid.
// Row 0 is the top row of the sheet.
type Coordinate struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// slotTable maps slot index to grid coordinate. Even slots sit in the left
// column, odd slots in the right one.
var slotTable = [Slots]Coordinate{
	{Column: 0, Row: 0},
	{Column: 1, Row: 0},
	{Column: 0, Row: 1},
	{Column: 1, Row: 1},
	{Column: 0, Row: 2},
	{Column: 1, Row: 2},
}

// ToCoordinate converts a slot index into its grid coordinate.
// Indices outside [0, Slots) are a caller bug and yield ErrOutOfRange.
func ToCoordinate(index int) (Coordinate, error) {
	if index < 0 || index >= Slots {
		return Coordinate{}, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	return slotTable[index], nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}
