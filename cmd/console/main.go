// cmd/console/main.go
package main

import (
	"os"

	"pahana-billing/internal/config"
	"pahana-billing/internal/console"
	"pahana-billing/internal/csvstore"
	"pahana-billing/internal/util"
)

func main() {
	util.InitConsoleLogger()
	logger := util.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := csvstore.Open(cfg.DataDir, logger)
	if err != nil {
		logger.Error("failed to open data store", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	c := console.New(store, os.Stdin, os.Stdout, logger)
	if err := c.Run(); err != nil {
		logger.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}
