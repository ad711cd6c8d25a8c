package cli

import "github.com/spf13/cobra"

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "query <sql>",
		Short:   "Run a read query against the loaded table",
		Example: `  banks-etl query "SELECT Name, MC_EUR_Billion FROM Largest_banks"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			_, err = a.services.Query.RunQuery(cmd.Context(), args[0])
			return err
		},
	}
}
