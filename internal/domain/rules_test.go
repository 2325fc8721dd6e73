package domain_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// bruteForceWin checks every cell as the start of a four-long line.
func bruteForceWin(board domain.Board) bool {
	directions := [][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for column := 0; column < domain.Columns; column++ {
		for row := 0; row < domain.Rows; row++ {
			player := board[column][row]
			if player == domain.Empty {
				continue
			}
			for _, d := range directions {
				k := 1
				for ; k < domain.ToWin; k++ {
					c, r := column+d[0]*k, row+d[1]*k
					if c < 0 || c >= domain.Columns || r < 0 || r >= domain.Rows || board[c][r] != player {
						break
					}
				}
				if k == domain.ToWin {
					return true
				}
			}
		}
	}
	return false
}

func line(board *domain.Board, player domain.PlayerID, column, row, deltaCol, deltaRow, length int) {
	for i := 0; i < length; i++ {
		board[column+deltaCol*i][row+deltaRow*i] = player
	}
}

func TestCheckWinEmptyBoard(t *testing.T) {
	assert.False(t, domain.CheckWin(domain.Board{}))
}

func TestCheckWinEveryLine(t *testing.T) {
	directions := []struct {
		name               string
		deltaCol, deltaRow int
	}{
		{"horizontal", 1, 0},
		{"vertical", 0, 1},
		{"diagonal up", 1, 1},
		{"diagonal down", 1, -1},
	}

	for _, d := range directions {
		t.Run(d.name, func(t *testing.T) {
			checked := 0
			for column := 0; column < domain.Columns; column++ {
				for row := 0; row < domain.Rows; row++ {
					endCol := column + d.deltaCol*(domain.ToWin-1)
					endRow := row + d.deltaRow*(domain.ToWin-1)
					if endCol >= domain.Columns || endRow < 0 || endRow >= domain.Rows {
						continue
					}
					for _, player := range []domain.PlayerID{domain.Player1, domain.Player2} {
						var board domain.Board
						line(&board, player, column, row, d.deltaCol, d.deltaRow, domain.ToWin)
						assert.True(t, domain.CheckWin(board), "%s at %d-%d", player, column, row)

						var short domain.Board
						line(&short, player, column, row, d.deltaCol, d.deltaRow, domain.ToWin-1)
						assert.False(t, domain.CheckWin(short), "three %s at %d-%d", player, column, row)
					}
					checked++
				}
			}
			assert.NotZero(t, checked)
		})
	}
}

func TestCheckWinRunBrokenByOpponent(t *testing.T) {
	var board domain.Board
	line(&board, domain.Player1, 0, 0, 1, 0, 3)
	board[3][0] = domain.Player2
	line(&board, domain.Player1, 4, 0, 1, 0, 3)
	assert.False(t, domain.CheckWin(board))

	// three of one player directly followed by four of the other
	board = domain.Board{}
	line(&board, domain.Player1, 0, 1, 1, 0, 3)
	line(&board, domain.Player2, 3, 1, 1, 0, 4)
	assert.True(t, domain.CheckWin(board))

	board = domain.Board{}
	line(&board, domain.Player2, 0, 2, 1, 0, 3)
	line(&board, domain.Player1, 3, 2, 1, 0, 3)
	assert.False(t, domain.CheckWin(board))
}

func TestCheckWinRunBrokenByEmpty(t *testing.T) {
	var board domain.Board
	line(&board, domain.Player2, 0, 5, 1, 0, 2)
	line(&board, domain.Player2, 3, 5, 1, 0, 2)
	assert.False(t, domain.CheckWin(board))

	board[2][5] = domain.Player2
	assert.True(t, domain.CheckWin(board))
}

func TestCheckWinLongerThanFour(t *testing.T) {
	var board domain.Board
	line(&board, domain.Player1, 0, 3, 1, 0, domain.Columns)
	assert.True(t, domain.CheckWin(board))

	board = domain.Board{}
	line(&board, domain.Player2, 4, 0, 0, 1, domain.Rows)
	assert.True(t, domain.CheckWin(board))
}

func TestDropDiscMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	wins := 0

	for game := 0; game < 2000; game++ {
		g := domain.NewGame()
		for move := 0; move < domain.Rows*domain.Columns; move++ {
			board := g.Board()
			open := make([]int, 0, domain.Columns)
			for column := 0; column < domain.Columns; column++ {
				if !board.IsColumnFull(column) {
					open = append(open, column)
				}
			}
			require.NotEmpty(t, open)

			win, err := g.DropDisc(open[rng.Intn(len(open))])
			require.NoError(t, err)

			want := bruteForceWin(g.Board())
			require.Equal(t, want, win, "game %d move %d\n%s", game, move+1, g.Board())
			if win {
				wins++
			}
		}
	}
	assert.NotZero(t, wins)
}
