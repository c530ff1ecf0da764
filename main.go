package main

import (
	"fmt"
	"os"

	"legislators_dashboard/cmd"
	"legislators_dashboard/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.Logger.Errorf("%+v", err)
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
