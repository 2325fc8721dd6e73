package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

type playResult struct {
	Winner   domain.PlayerID
	Moves    int
	Rejected int
}

// play feeds every column token from in to a fresh game until a move wins
// or the input runs out. Rejected moves are logged and skipped.
func play(in io.Reader, out io.Writer, showBoard bool) (playResult, error) {
	g := domain.NewGame()
	var result playResult

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		token := scanner.Text()
		column, err := strconv.Atoi(token)
		if err != nil {
			log.Warn().Str("token", token).Msg("skipping non-numeric move")
			result.Rejected++
			continue
		}

		player := g.CurrentPlayer()
		win, err := g.DropDisc(column)
		if err != nil {
			result.Rejected++
			logRejectedMove(err, column, player)
			continue
		}
		result.Moves = g.MoveCount()

		log.Debug().
			Int("move", result.Moves).
			Int("column", column).
			Stringer("player", player).
			Bool("win", win).
			Msg("disc dropped")

		if showBoard {
			fmt.Fprint(out, g.Board().String())
		}

		if win {
			result.Winner = player
			return result, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func logRejectedMove(err error, column int, player domain.PlayerID) {
	event := log.Warn().Err(err).Int("column", column).Stringer("player", player)

	var invalid *domain.InvalidColumnError
	var full *domain.ColumnFullError
	switch {
	case errors.As(err, &invalid):
		event = event.Str("kind", invalid.Name())
	case errors.As(err, &full):
		event = event.Str("kind", full.Name())
	}
	event.Msg("move rejected")
}
