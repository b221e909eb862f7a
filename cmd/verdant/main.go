package main

import (
	"os"

	"github.com/verdantapp/verdant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
