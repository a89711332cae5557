package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajasatyajit/supplychain-go/supplychain"
)

var (
	checkoutPlan     string
	checkoutInterval string
	checkoutOverage  bool
)

// checkoutCmd represents the checkout command
var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Create a checkout session for a plan",
	Long: `Create a hosted checkout session for the given plan and print its URL.
Open the URL in a browser to complete payment.`,
	PreRunE: initializeApp,
	RunE:    runCheckout,
}

func init() {
	rootCmd.AddCommand(checkoutCmd)

	checkoutCmd.Flags().StringVar(&checkoutPlan, "plan", "", "plan code to subscribe to (required)")
	checkoutCmd.Flags().StringVar(&checkoutInterval, "interval", supplychain.IntervalMonth, "billing interval (month|year)")
	checkoutCmd.Flags().BoolVar(&checkoutOverage, "overage", false, "enable metered overage billing")
	checkoutCmd.MarkFlagRequired("plan")
}

func runCheckout(cmd *cobra.Command, args []string) error {
	url, err := client.CreateCheckoutSession(context.Background(), supplychain.CheckoutRequest{
		PlanCode:       checkoutPlan,
		Interval:       checkoutInterval,
		OverageEnabled: checkoutOverage,
	})
	if err != nil {
		return err
	}
	if url == "" {
		return fmt.Errorf("server did not return a checkout URL")
	}

	fmt.Println("Open this URL to complete checkout:")
	fmt.Println(url)
	return nil
}

// portalCmd represents the portal command
var portalCmd = &cobra.Command{
	Use:     "portal",
	Short:   "Open the billing portal for the current account",
	Long:    `Create a billing portal session and print its URL. The portal manages the subscription, payment methods and invoices.`,
	PreRunE: initializeApp,
	RunE:    runPortal,
}

func init() {
	rootCmd.AddCommand(portalCmd)
}

func runPortal(cmd *cobra.Command, args []string) error {
	url, err := client.CreatePortalSession(context.Background())
	if err != nil {
		return err
	}
	if url == "" {
		return fmt.Errorf("server did not return a portal URL")
	}

	fmt.Println("Open this URL to manage billing:")
	fmt.Println(url)
	return nil
}
