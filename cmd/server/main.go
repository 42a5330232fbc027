package main

import (
	"os"

	"github.com/qingliul/huangbinhong-backend-go/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
