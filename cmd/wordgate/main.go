package main

import (
	"os"

	"github.com/solatis/wordgate/cmd/wordgate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
