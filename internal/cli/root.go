package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

var client *Client

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var (
		serverURL string
		username  string
		password  string
		timeout   time.Duration
	)

	rootCmd := &cobra.Command{
		Use:   "ligactl",
		Short: "CLI for the league registration portal",
		Long: `ligactl talks to the registration portal API: it checks health,
prints the published fixture, and downloads the Excel, Word, and PDF
reports with their standard filenames.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(serverURL, username, password, timeout)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Portal URL")
	rootCmd.PersistentFlags().StringVarP(&username, "user", "u", "", "Username for privileged calls")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "Password for privileged calls")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Request timeout")

	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newFixtureCmd())
	rootCmd.AddCommand(newReportCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
