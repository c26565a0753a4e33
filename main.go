package main

import (
	"os"

	"dockvitals/cmd"
	"dockvitals/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
