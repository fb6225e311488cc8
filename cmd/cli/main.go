package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finvault-cli",
		Short: "FinVault CLI tool",
		Long:  `A command line interface for interacting with the FinVault statement API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FinVault API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User directory operations",
	}

	createUserCmd := &cobra.Command{
		Use:   "create <name> <email>",
		Short: "Register a new user",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/users", map[string]string{
				"name":  args[0],
				"email": args[1],
			})
		},
	}

	getUserCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a user by id",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/users/" + args[0])
		},
	}

	userCmd.AddCommand(createUserCmd, getUserCmd)
	rootCmd.AddCommand(userCmd)

	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account ledger operations",
	}

	depositCmd := &cobra.Command{
		Use:   "deposit <account-id> <amount>",
		Short: "Credit an account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			description, _ := cmd.Flags().GetString("description")
			post("/api/v1/accounts/"+args[0]+"/deposits", map[string]string{
				"amount":      args[1],
				"description": description,
			})
		},
	}
	depositCmd.Flags().String("description", "", "Operation description")

	withdrawCmd := &cobra.Command{
		Use:   "withdraw <account-id> <amount>",
		Short: "Debit an account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			description, _ := cmd.Flags().GetString("description")
			post("/api/v1/accounts/"+args[0]+"/withdrawals", map[string]string{
				"amount":      args[1],
				"description": description,
			})
		},
	}
	withdrawCmd.Flags().String("description", "", "Operation description")

	transferCmd := &cobra.Command{
		Use:   "transfer <payer-id> <recipient-id> <amount>",
		Short: "Move funds between two accounts",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			description, _ := cmd.Flags().GetString("description")
			post("/api/v1/accounts/"+args[0]+"/transfers", map[string]string{
				"recipient_id": args[1],
				"amount":       args[2],
				"description":  description,
			})
		},
	}
	transferCmd.Flags().String("description", "", "Operation description")

	balanceCmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show the derived balance of an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/" + args[0] + "/balance")
		},
	}

	statementCmd := &cobra.Command{
		Use:   "statement <account-id>",
		Short: "Show the balance with the full operation history",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/" + args[0] + "/balance?statement=true")
		},
	}

	accountCmd.AddCommand(depositCmd, withdrawCmd, transferCmd, balanceCmd, statementCmd)
	rootCmd.AddCommand(accountCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func post(path string, payload map[string]string) {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func get(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}

	fmt.Println(pretty.String())
}
