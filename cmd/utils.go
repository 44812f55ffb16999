package cmd

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/chartgrep/chartgrep/pkg/assemble"
	"github.com/chartgrep/chartgrep/pkg/config"
	"github.com/chartgrep/chartgrep/pkg/hospital"
	"github.com/chartgrep/chartgrep/pkg/log"
	"github.com/chartgrep/chartgrep/pkg/store"
)

// loadConfig applies global flags and loads the configuration file.
func loadConfig(c *cli.Command) (*config.Config, error) {
	log.SetGlobalDebug(c.Bool("debug"))

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// buildStore wires the hospital client, the assembler and the snapshot
// store from the configuration.
func buildStore(cfg *config.Config) *store.Store {
	client := hospital.NewClient(cfg.Services, cfg.RequestTimeout.Duration)
	assembler := assemble.NewAssembler(client, cfg.Hospital)
	return store.NewStore(assembler, client, cfg.RefreshInterval.Duration)
}
