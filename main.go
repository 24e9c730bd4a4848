package main

import (
	"os"

	"github.com/RumanAkhtar/lms-app-backend/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
