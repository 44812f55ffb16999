package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"
)

// StatsCommand creates the stats command
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show record collection statistics",
		Action: func(ctx context.Context, c *cli.Command) error {
			return showStats(ctx, c)
		},
	}
}

func showStats(ctx context.Context, c *cli.Command) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	st := buildStore(cfg)
	if err := st.Refresh(ctx); err != nil {
		return fmt.Errorf("fetching records: %w", err)
	}

	stats := st.Stats()

	fmt.Println(titleStyle.Render("Record statistics"))
	fmt.Printf("Records: %d\nDoctors: %d\n", stats.TotalRecords, stats.TotalDoctors)

	fmt.Println(headerStyle.Render("By department"))
	for _, dept := range sortedKeys(stats.ByDepartment) {
		fmt.Printf("  %-24s %d\n", dept, stats.ByDepartment[dept])
	}

	fmt.Println(headerStyle.Render("By payment status"))
	for _, status := range sortedKeys(stats.ByPaymentStatus) {
		fmt.Printf("  %-24s %d\n", titleCaser.String(status), stats.ByPaymentStatus[status])
	}

	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
