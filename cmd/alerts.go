package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rajasatyajit/supplychain-go/filter"
	"github.com/rajasatyajit/supplychain-go/supplychain"
)

var (
	listSeverities  []string
	listSources     []string
	listDisruptions []string
	listRegions     []string
	listCountries   []string
	listSince       string
	listUntil       string
	listLimit       int
	listOffset      int
	showDetails     bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List alerts matching the filter criteria",
	Long: `List supply chain disruption alerts. Exact-value filters (severity,
source, region, country, disruption, time window) are applied server-side;
an optional expression (--filter or --preset) is evaluated client-side on
the returned alerts.`,
	PreRunE: initializeApp,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringSliceVar(&listSeverities, "severity", nil, "filter by severity (low|medium|high|critical, repeatable)")
	listCmd.Flags().StringSliceVar(&listSources, "source", nil, "filter by source (repeatable)")
	listCmd.Flags().StringSliceVar(&listDisruptions, "disruption", nil, "filter by disruption type (repeatable)")
	listCmd.Flags().StringSliceVar(&listRegions, "region", nil, "filter by region (repeatable)")
	listCmd.Flags().StringSliceVar(&listCountries, "country", nil, "filter by country (repeatable)")
	listCmd.Flags().StringVar(&listSince, "since", "", "only alerts detected at or after this RFC3339 timestamp")
	listCmd.Flags().StringVar(&listUntil, "until", "", "only alerts detected at or before this RFC3339 timestamp")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of alerts to return")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "number of alerts to skip")
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	listCmd.Flags().BoolVar(&showDetails, "details", false, "show summary, location and confidence per alert")
}

func runList(cmd *cobra.Command, args []string) error {
	opts := supplychain.AlertListOptions{
		Severities:  listSeverities,
		Sources:     listSources,
		Disruptions: listDisruptions,
		Regions:     listRegions,
		Countries:   listCountries,
		Limit:       listLimit,
		Offset:      listOffset,
	}

	var err error
	if opts.Since, err = parseTimeFlag("since", listSince); err != nil {
		return err
	}
	if opts.Until, err = parseTimeFlag("until", listUntil); err != nil {
		return err
	}

	// Compile the client-side filter before spending a request on a bad
	// expression.
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}
	var compiled *filter.Filter
	if expression != "" {
		compiled, err = filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Info().Str("filter", expression).Msg("Applying client-side filter")
	}

	ctx := context.Background()
	response, err := client.ListAlerts(ctx, opts)
	if err != nil {
		return err
	}

	alerts := response.Data
	if compiled != nil {
		alerts, err = compiled.Apply(alerts)
		if err != nil {
			return err
		}
	}

	if len(alerts) == 0 {
		fmt.Println("No alerts found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d alerts:\n", len(alerts))
	fmt.Println(strings.Repeat("-", 80))

	for _, alert := range alerts {
		fmt.Printf("• [%s] %s", strings.ToUpper(alert.Severity), alert.Title)
		if alert.Country != "" {
			fmt.Printf(" (%s)", alert.Country)
		}
		fmt.Println()
		if showDetails {
			if alert.Summary != "" {
				fmt.Printf("  %s\n", alert.Summary)
			}
			fmt.Printf("  Source: %s  Disruption: %s\n", alert.Source, alert.Disruption)
			if !alert.DetectedAt.IsZero() {
				fmt.Printf("  Detected: %s\n", alert.DetectedAt.Format("2006-01-02 15:04"))
			}
			if alert.Confidence > 0 {
				fmt.Printf("  Confidence: %.0f%%\n", alert.Confidence*100)
			}
		}
	}

	return nil
}

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:     "get <alert-id>",
	Short:   "Show a single alert",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	alert, err := client.GetAlert(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", alert.Title)
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("ID:         %s\n", alert.ID)
	fmt.Printf("Severity:   %s\n", alert.Severity)
	fmt.Printf("Disruption: %s\n", alert.Disruption)
	fmt.Printf("Source:     %s\n", alert.Source)
	if alert.Region != "" || alert.Country != "" {
		fmt.Printf("Where:      %s, %s\n", alert.Region, alert.Country)
	}
	if alert.HasCoordinates() {
		fmt.Printf("Position:   %.4f, %.4f\n", alert.Latitude, alert.Longitude)
	}
	fmt.Printf("Detected:   %s\n", alert.DetectedAt.Format(time.RFC3339))
	if alert.Summary != "" {
		fmt.Printf("\n%s\n", alert.Summary)
	}
	if alert.URL != "" {
		fmt.Printf("\n%s\n", alert.URL)
	}

	return nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test connection to the SupplyChain API",
	PreRunE: initializeApp,
	RunE:    runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s...\n", client.BaseURL())

	health, err := client.Health(context.Background())
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("- Status: %s\n", health.Status)
	if health.Version != "" {
		fmt.Printf("- Server version: %s\n", health.Version)
	}

	return nil
}

// parseTimeFlag parses a time flag accepting RFC3339 or a plain date.
func parseTimeFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --%s value %q (want RFC3339 or YYYY-MM-DD)", name, value)
}
