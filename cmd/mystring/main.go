package main

import (
	"os"

	"github.com/msto63/mystring/cmd/mystring/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
