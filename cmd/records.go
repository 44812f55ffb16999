package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// RecordsCommand creates the records command
func RecordsCommand() *cli.Command {
	return &cli.Command{
		Name:  "records",
		Usage: "List fetched records in compact form",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of records to list",
				Value: 20,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return listRecords(ctx, c)
		},
	}
}

func listRecords(ctx context.Context, c *cli.Command) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	st := buildStore(cfg)
	if err := st.Refresh(ctx); err != nil {
		return fmt.Errorf("fetching records: %w", err)
	}

	recs := st.Records()
	limit := c.Int("limit")
	if limit > 0 && limit < len(recs) {
		recs = recs[:limit]
	}

	if len(recs) == 0 {
		fmt.Println(formatNoResults())
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s records", cfg.Hospital.Name)))
	for i := range recs {
		fmt.Printf("%d. %s\n", i+1, recs[i].Summary())
	}
	return nil
}
