package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/chartgrep/chartgrep/pkg/search"
)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search fetched records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "query",
				Usage: "Free-text or date query (YYYY-MM-DD or MM/DD/YYYY)",
			},
			&cli.StringFlag{
				Name:  "date",
				Usage: "Exact record date (YYYY-MM-DD)",
			},
			&cli.StringFlag{
				Name:  "doctor",
				Usage: "Doctor ID",
			},
			&cli.StringFlag{
				Name:  "department",
				Usage: "Department name",
			},
			&cli.StringFlag{
				Name:  "payment-status",
				Usage: "Billing payment status (paid, pending, overdue)",
			},
			&cli.StringFlag{
				Name:  "from",
				Usage: "Date range start (YYYY-MM-DD, requires --to)",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Date range end (YYYY-MM-DD, requires --from)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return searchRecords(ctx, c)
		},
	}
}

// searchRecords fetches the collection once and runs the search engine
// over it with the flags mapped onto the filter state.
func searchRecords(ctx context.Context, c *cli.Command) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	st := buildStore(cfg)
	if err := st.Refresh(ctx); err != nil {
		return fmt.Errorf("fetching records: %w", err)
	}

	filters := search.Filters{
		SelectedDate:          c.String("date"),
		SelectedDoctor:        c.String("doctor"),
		SelectedDepartment:    c.String("department"),
		SelectedPaymentStatus: c.String("payment-status"),
		DateRange: search.DateRange{
			Start: c.String("from"),
			End:   c.String("to"),
		},
	}

	svc := search.NewService(search.NewSubstringMatcher())
	result := svc.Search(st.Records(), c.String("query"), filters)

	fmt.Println(formatSearchHeader(result.Query, result.TotalCount, result.ActiveFilters))
	if result.TotalCount == 0 {
		fmt.Println(formatNoResults())
		return nil
	}

	for i := range result.Records {
		fmt.Println(formatRecord(&result.Records[i]))
	}
	return nil
}
