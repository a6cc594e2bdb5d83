package main

import (
	"os"

	"github.com/hashcompose/reqforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
