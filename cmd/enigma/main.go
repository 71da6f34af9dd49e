package main

import (
	"os"

	"github.com/Anshit-Gupta/Enigma/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
