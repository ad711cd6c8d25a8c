package cli

import (
	"time"

	"github.com/SscSPs/banks_etl/internal/core/domain"
	"github.com/SscSPs/banks_etl/internal/core/services"
	"github.com/spf13/cobra"
)

func newRunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent pipeline runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			runs, err := a.services.Runs.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return services.PrintResult(cmd.OutOrStdout(), runsResult(runs))
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of runs to show")
	return cmd
}

func runsResult(runs []domain.Run) *domain.QueryResult {
	result := &domain.QueryResult{
		Columns: []string{"RUN ID", "STARTED", "STATUS", "EXTRACTED", "LOADED", "DURATION", "ERROR"},
		Rows:    make([][]any, 0, len(runs)),
	}
	for _, r := range runs {
		result.Rows = append(result.Rows, []any{
			r.RunID,
			r.StartedAt.Local().Format(time.DateTime),
			string(r.Status),
			r.RowsExtracted,
			r.RowsLoaded,
			r.Duration().Round(time.Millisecond).String(),
			r.Error,
		})
	}
	return result
}
