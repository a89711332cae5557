package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rajasatyajit/supplychain-go/supplychain"
)

var (
	tsBucket string
	tsStart  string
	tsEnd    string
)

// usageCmd represents the usage command
var usageCmd = &cobra.Command{
	Use:     "usage",
	Short:   "Show current-period API usage",
	PreRunE: initializeApp,
	RunE:    runUsage,
}

func init() {
	rootCmd.AddCommand(usageCmd)
}

func runUsage(cmd *cobra.Command, args []string) error {
	summary, err := client.GetUsage(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Usage for account %s\n", summary.AccountID)
	fmt.Printf("Period: %s – %s\n",
		summary.PeriodStart.Format("2006-01-02"),
		summary.PeriodEnd.Format("2006-01-02"))
	fmt.Printf("Total requests: %d\n", summary.Total)

	if len(summary.PerEndpoint) > 0 {
		fmt.Println("\nPer endpoint:")
		endpoints := make([]string, 0, len(summary.PerEndpoint))
		for endpoint := range summary.PerEndpoint {
			endpoints = append(endpoints, endpoint)
		}
		sort.Strings(endpoints)
		for _, endpoint := range endpoints {
			fmt.Printf("  %-40s %d\n", endpoint, summary.PerEndpoint[endpoint])
		}
	}

	return nil
}

// timeseriesCmd represents the timeseries command
var timeseriesCmd = &cobra.Command{
	Use:     "timeseries",
	Short:   "Show bucketed API usage over a time window",
	PreRunE: initializeApp,
	RunE:    runTimeseries,
}

func init() {
	rootCmd.AddCommand(timeseriesCmd)

	timeseriesCmd.Flags().StringVar(&tsBucket, "bucket", supplychain.BucketDay, "bucket width (hour|day)")
	timeseriesCmd.Flags().StringVar(&tsStart, "start", "", "window start (RFC3339 or YYYY-MM-DD, server default when omitted)")
	timeseriesCmd.Flags().StringVar(&tsEnd, "end", "", "window end (RFC3339 or YYYY-MM-DD, server default when omitted)")
}

func runTimeseries(cmd *cobra.Command, args []string) error {
	opts := supplychain.TimeseriesOptions{Bucket: tsBucket}

	var err error
	if opts.Start, err = parseTimeFlag("start", tsStart); err != nil {
		return err
	}
	if opts.End, err = parseTimeFlag("end", tsEnd); err != nil {
		return err
	}

	series, err := client.GetUsageTimeseries(context.Background(), opts)
	if err != nil {
		return err
	}

	if len(series.Data) == 0 {
		fmt.Println("No usage recorded in this window.")
		return nil
	}

	layout := "2006-01-02"
	if series.Bucket == supplychain.BucketHour {
		layout = "2006-01-02 15:04"
	}

	fmt.Printf("Usage per %s (%s – %s):\n", series.Bucket,
		series.Start.Format(layout), series.End.Format(layout))
	for _, point := range series.Data {
		fmt.Printf("  %s  %d\n", point.Timestamp.Format(layout), point.Total)
	}

	return nil
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show account, usage and quota in one view",
	PreRunE: initializeApp,
	RunE:    runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	var (
		info    *supplychain.AccountInfo
		summary *supplychain.UsageSummary
		limits  *supplychain.Limits
	)

	// The three endpoints are independent; fetch them concurrently.
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		info, err = client.Me(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = client.GetUsage(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		limits, err = client.GetLimits(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Account %s\n", info.AccountID)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Plan:            %s", info.Plan)
	if info.OverageEnabled {
		fmt.Printf(" (overage enabled)")
	}
	fmt.Println()
	fmt.Printf("Period:          %s – %s\n",
		info.PeriodStart.Format("2006-01-02"),
		info.PeriodEnd.Format("2006-01-02"))
	fmt.Printf("Requests used:   %d", summary.Total)
	if limits.MonthlyQuota > 0 {
		fmt.Printf(" / %d (%.1f%%)", limits.MonthlyQuota,
			float64(summary.Total)/float64(limits.MonthlyQuota)*100)
	}
	fmt.Println()

	return nil
}
