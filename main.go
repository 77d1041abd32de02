package main

import (
	"github.com/openshelf/catalog/internal/config"
	"github.com/openshelf/catalog/internal/entrypoint"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
