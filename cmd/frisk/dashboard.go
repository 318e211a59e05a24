package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/frisklabs/frisk/dashboard"
)

const dashboardDateLayout = "2006-01-02"

func cmdDashboard(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show performance dashboards",
	}

	cmd.AddCommand(cmdDashboardQueues(a))
	cmd.AddCommand(cmdDashboardAnalysts(a))

	return cmd
}

func periodFlags(cmd *cobra.Command, from, to *string) {
	cmd.Flags().StringVar(from, "from", "", "Start of the period (YYYY-MM-DD)")
	cmd.Flags().StringVar(to, "to", "", "End of the period (YYYY-MM-DD)")
}

func parsePeriod(from, to string) (dashboard.Period, error) {
	var period dashboard.Period

	if from != "" {
		t, err := time.Parse(dashboardDateLayout, from)
		if err != nil {
			return period, fmt.Errorf("invalid --from date '%s'", from)
		}
		period.From = t
	}
	if to != "" {
		t, err := time.Parse(dashboardDateLayout, to)
		if err != nil {
			return period, fmt.Errorf("invalid --to date '%s'", to)
		}
		period.To = t
	}

	return period, nil
}

func cmdDashboardQueues(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "queues",
		Short: "Decisions per queue over the period",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := parsePeriod(from, to)
			if err != nil {
				return err
			}

			dir, err := a.resolveDirectory(cmd)
			if err != nil {
				return err
			}

			s, err := dashboard.NewService(a.factory, dir, a.logs)
			if err != nil {
				return err
			}

			rows, err := s.GetQueuePerformance(cmd.Context(), period)
			if err != nil {
				return err
			}

			header := color.New(color.Bold)
			header.Printf("%-30s %10s %10s %10s %10s\n", "QUEUE", "REVIEWED", "APPROVED", "REJECTED", "ESCALATED")
			for _, row := range rows {
				fmt.Printf("%-30s %10s %10s %10s %10s\n",
					row.QueueName,
					humanize.Comma(int64(row.Reviewed)),
					humanize.Comma(int64(row.Approved)),
					humanize.Comma(int64(row.Rejected)),
					humanize.Comma(int64(row.Escalated)),
				)
			}

			return nil
		},
	}

	periodFlags(cmd, &from, &to)

	return cmd
}

func cmdDashboardAnalysts(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "analysts",
		Short: "Decisions per analyst over the period",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := parsePeriod(from, to)
			if err != nil {
				return err
			}

			dir, err := a.resolveDirectory(cmd)
			if err != nil {
				return err
			}

			s, err := dashboard.NewService(a.factory, dir, a.logs)
			if err != nil {
				return err
			}

			rows, err := s.GetAnalystPerformance(cmd.Context(), period)
			if err != nil {
				return err
			}

			header := color.New(color.Bold)
			header.Printf("%-30s %10s %10s %10s\n", "ANALYST", "REVIEWED", "APPROVED", "REJECTED")
			for _, row := range rows {
				name := row.AnalystID
				if row.Analyst != nil {
					name = row.Analyst.Name
				}
				fmt.Printf("%-30s %10s %10s %10s\n",
					name,
					humanize.Comma(int64(row.Reviewed)),
					humanize.Comma(int64(row.Approved)),
					humanize.Comma(int64(row.Rejected)),
				)
			}

			return nil
		},
	}

	periodFlags(cmd, &from, &to)

	return cmd
}
