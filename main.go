package main

import (
	"os"

	"github.com/devansh-cmd/resume-screener/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
