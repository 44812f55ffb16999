package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// FetchCommand creates the fetch command
func FetchCommand() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Fetch records from the hospital services once",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "list",
				Usage: "Print a one-line summary per fetched record",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return fetchOnce(ctx, c)
		},
	}
}

// fetchOnce assembles the record collection once and reports what was
// fetched. Useful for verifying service URLs before serving.
func fetchOnce(ctx context.Context, c *cli.Command) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	st := buildStore(cfg)
	if err := st.Refresh(ctx); err != nil {
		return fmt.Errorf("fetching records: %w", err)
	}

	recs := st.Records()
	fmt.Printf("Fetched %d records, %d doctors\n", len(recs), len(st.Doctors()))

	if c.Bool("list") {
		for i := range recs {
			fmt.Printf("  %s\n", recs[i].Summary())
		}
	}
	return nil
}
