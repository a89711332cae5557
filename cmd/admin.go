package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajasatyajit/supplychain-go/supplychain"
)

var (
	createAccountEmail  string
	createKeyClientType string
	createKeyLabel      string
	createKeyEnv        string
)

// adminCmd groups operations that require an admin API key.
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative operations (admin key required)",
}

var createAccountCmd = &cobra.Command{
	Use:     "create-account <name>",
	Short:   "Create a new account",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runCreateAccount,
}

var createKeyCmd = &cobra.Command{
	Use:     "create-key <account-id>",
	Short:   "Issue an API key for an account",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runCreateKey,
}

var revokeKeyCmd = &cobra.Command{
	Use:     "revoke-key <key-id>",
	Short:   "Revoke an API key",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runRevokeKey,
}

var adminUsageCmd = &cobra.Command{
	Use:     "usage",
	Short:   "Show usage across all accounts",
	PreRunE: initializeApp,
	RunE:    runAdminUsage,
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(createAccountCmd)
	adminCmd.AddCommand(createKeyCmd)
	adminCmd.AddCommand(revokeKeyCmd)
	adminCmd.AddCommand(adminUsageCmd)

	createAccountCmd.Flags().StringVar(&createAccountEmail, "email", "", "contact email for the account")

	createKeyCmd.Flags().StringVar(&createKeyClientType, "client-type", supplychain.ClientTypeAgent, "client type for the key (agent|human)")
	createKeyCmd.Flags().StringVar(&createKeyLabel, "label", "", "human-readable label for the key")
	createKeyCmd.Flags().StringVar(&createKeyEnv, "env", "", "environment tag for the key (e.g. prod, staging)")
}

func runCreateAccount(cmd *cobra.Command, args []string) error {
	account, err := client.CreateAccount(context.Background(), supplychain.CreateAccountRequest{
		Name:  args[0],
		Email: createAccountEmail,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created account %s (%s)\n", account.AccountID, args[0])
	return nil
}

func runCreateKey(cmd *cobra.Command, args []string) error {
	key, err := client.CreateAPIKey(context.Background(), args[0], supplychain.CreateAPIKeyRequest{
		ClientType: createKeyClientType,
		Label:      createKeyLabel,
		Env:        createKeyEnv,
	})
	if err != nil {
		return err
	}

	// The plaintext key is only returned once.
	fmt.Printf("Key ID:  %s\n", key.KeyID)
	fmt.Printf("API key: %s\n", key.APIKey)
	fmt.Println("\nStore the API key now; it cannot be retrieved again.")
	return nil
}

func runRevokeKey(cmd *cobra.Command, args []string) error {
	result, err := client.RevokeAPIKey(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Revoked key %s\n", result.KeyID)
	return nil
}

func runAdminUsage(cmd *cobra.Command, args []string) error {
	usage, err := client.GetAdminUsage(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Accounts: %d\n", usage.TotalAccounts)
	fmt.Printf("Total requests this period: %d\n", usage.TotalUsage)

	if len(usage.ByAccount) > 0 {
		fmt.Println("\nPer account:")
		for _, row := range usage.ByAccount {
			fmt.Printf("  %v  %v\n", row["account_id"], row["total"])
		}
	}

	return nil
}
