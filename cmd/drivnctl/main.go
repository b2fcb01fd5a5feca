package main

import (
	"os"

	"github.com/drivncook/backoffice/cmd/drivnctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
