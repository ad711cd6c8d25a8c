package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/SscSPs/banks_etl/pkg/config"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	runCmd := newRunCmd()

	rootCmd := &cobra.Command{
		Use:           "banks-etl",
		Short:         "Largest banks ETL pipeline",
		Long:          "Extracts the largest banks by market capitalization, converts it to GBP, EUR and INR, and loads it into a CSV file and a database table.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCmd.RunE,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newRunsCmd())
	rootCmd.AddCommand(newCSVCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
