package main

import (
	"os"

	"github.com/LixenWraith/dirlog/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
