package domain

import "strings"

// Board is indexed [column][row]; row 0 is the bottom of the grid.
type Board [Columns][Rows]PlayerID

func IsValidColumn(column int) bool {
	return column >= 0 && column < Columns
}

func (b Board) Cell(column, row int) PlayerID {
	return b[column][row]
}

// LowestEmptyRow returns the row the next disc dropped into column lands on,
// or -1 when the column is full.
func (b Board) LowestEmptyRow(column int) int {
	for row := 0; row < Rows; row++ {
		if b[column][row] == Empty {
			return row
		}
	}
	return -1
}

// Height is the number of discs stacked in column.
func (b Board) Height(column int) int {
	if row := b.LowestEmptyRow(column); row >= 0 {
		return row
	}
	return Rows
}

func (b Board) IsColumnFull(column int) bool {
	return b.LowestEmptyRow(column) < 0
}

// String draws the board top row first: '.' empty, 'X' Player1, 'O' Player2.
func (b Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for column := 0; column < Columns; column++ {
			switch b[column][row] {
			case Player1:
				sb.WriteByte('X')
			case Player2:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("0123456\n")
	return sb.String()
}
