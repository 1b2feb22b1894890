package main

import (
	"os"

	"github.com/bnema/todo-tasks-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
