package main

import (
	"os"

	"github.com/color-collector/api/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
