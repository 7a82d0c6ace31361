package main

import (
	"os"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/cmd/flexpower/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
