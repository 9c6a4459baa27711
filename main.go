package main

import (
	"os"

	"cpu-scheduler-sim/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
