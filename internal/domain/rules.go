package domain

// CheckWin rescans the whole board and reports whether any player holds
// ToWin or more contiguous discs on a row, a column or either diagonal.
func CheckWin(board Board) bool {
	return checkHorizontal(board) ||
		checkVertical(board) ||
		checkDiagonalUp(board) ||
		checkDiagonalDown(board)
}

// scanLine walks the board from (column, row) in steps of (deltaCol, deltaRow)
// until it leaves the grid. count holds the run length minus one: it drops
// back to 0 on a player change and the new player becomes the one tracked.
func scanLine(board Board, column, row, deltaCol, deltaRow int) bool {
	lastPlayer := Empty
	count := 0
	for column >= 0 && column < Columns && row >= 0 && row < Rows {
		cell := board[column][row]
		switch {
		case cell == Empty:
			lastPlayer = Empty
			count = 0
		case cell == lastPlayer:
			count++
		default:
			count = 0
		}

		if count == ToWin-1 {
			return true
		}
		lastPlayer = cell
		column += deltaCol
		row += deltaRow
	}
	return false
}

func checkHorizontal(board Board) bool {
	for row := 0; row < Rows; row++ {
		if scanLine(board, 0, row, 1, 0) {
			return true
		}
	}
	return false
}

func checkVertical(board Board) bool {
	for column := 0; column < Columns; column++ {
		if scanLine(board, column, 0, 0, 1) {
			return true
		}
	}
	return false
}

// checkDiagonalUp covers every / diagonal long enough to hold a win:
// those starting on the bottom row and those starting on the left edge.
func checkDiagonalUp(board Board) bool {
	for column := 0; column <= Columns-ToWin; column++ {
		if scanLine(board, column, 0, 1, 1) {
			return true
		}
	}
	for row := 1; row <= Rows-ToWin; row++ {
		if scanLine(board, 0, row, 1, 1) {
			return true
		}
	}
	return false
}

// checkDiagonalDown covers every \ diagonal (column up, row down) long
// enough to hold a win: those starting on the top row and on the left edge.
func checkDiagonalDown(board Board) bool {
	for column := 0; column <= Columns-ToWin; column++ {
		if scanLine(board, column, Rows-1, 1, -1) {
			return true
		}
	}
	for row := Rows - 2; row >= ToWin-1; row-- {
		if scanLine(board, 0, row, 1, -1) {
			return true
		}
	}
	return false
}
