package main

import (
	"os"

	"github.com/tarak510605/asana-rl-seed-data/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
