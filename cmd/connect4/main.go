package main

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

func main() {
	movesFlag := flag.String("moves", "", "comma or space separated columns (0-6); read from stdin when empty")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Debug().Msg("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	var input io.Reader = os.Stdin
	source := "stdin"
	if *movesFlag != "" {
		input = strings.NewReader(strings.ReplaceAll(*movesFlag, ",", " "))
		source = "flag"
	}

	log.Info().Str("source", source).Msg("starting game")
	result, err := play(input, os.Stdout, cfg.ShowBoard)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read moves")
	}

	if result.Winner == domain.Empty {
		log.Info().Int("moves", result.Moves).Msg("input exhausted without a winner")
		return
	}
	log.Info().Stringer("winner", result.Winner).Int("moves", result.Moves).Msg("four in a row")
}
