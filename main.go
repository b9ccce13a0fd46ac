package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mahmutensarsahin/literal-pooling-analysis/cmd"
)

func main() {
	// Console logger until the command picks its --log-format
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cmd.Execute()
}
