package domain

// Game owns one board and the turn indicator for a single session.
// It is not safe for concurrent use; callers play one move at a time.
type Game struct {
	board         Board
	currentPlayer PlayerID
	moveCount     int
}

func NewGame() *Game {
	return &Game{
		currentPlayer: Player1,
	}
}

// DropDisc lets the current player drop a disc into column and passes the
// turn. It reports whether the board now holds four in a row.
// A rejected move leaves both the board and the turn untouched.
func (g *Game) DropDisc(column int) (bool, error) {
	if !IsValidColumn(column) {
		return false, NewInvalidColumnError(column)
	}

	row := g.board.LowestEmptyRow(column)
	if row < 0 {
		return false, NewColumnFullError(column)
	}

	g.board[column][row] = g.currentPlayer
	g.currentPlayer = g.currentPlayer.Opponent()
	g.moveCount++

	return CheckWin(g.board), nil
}

func (g *Game) CurrentPlayer() PlayerID {
	return g.currentPlayer
}

// Board returns a copy of the grid.
func (g *Game) Board() Board {
	return g.board
}

func (g *Game) MoveCount() int {
	return g.moveCount
}
