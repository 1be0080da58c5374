package main

import (
	"os"

	"tableflip.dev/todo/pkg/commands"
)

func main() {
	cmd, err := commands.New().ExecuteC()
	os.Exit(commands.Report(cmd, err, os.Stderr))
}
