package main

import (
	"os"

	"github.com/reoring/scbind/cmd/scbind/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
