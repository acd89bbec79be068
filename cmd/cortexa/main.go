package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/cortexa/relay/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("cortexa exited with an error")
		os.Exit(1)
	}
}
