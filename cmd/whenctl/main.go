package main

import (
	"fmt"
	"os"

	"github.com/eruixma/one-click-campaign/cmd/whenctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
