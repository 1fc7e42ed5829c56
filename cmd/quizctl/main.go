package main

import (
	"os"

	"flagquiz/cmd/quizctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
