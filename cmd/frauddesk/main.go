package main

import (
	"os"

	"github.com/frauddesk/frauddesk/cmd/frauddesk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
