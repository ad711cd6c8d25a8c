package cli

import (
	"github.com/SscSPs/banks_etl/internal/adapters/csvfile"
	"github.com/SscSPs/banks_etl/internal/core/domain"
	"github.com/SscSPs/banks_etl/internal/core/services"
	"github.com/SscSPs/banks_etl/pkg/config"
	"github.com/spf13/cobra"
)

func newCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "csv",
		Short: "Print the CSV file written by the last run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			dataset, err := csvfile.ReadDataset(cfg.CSVPath)
			if err != nil {
				return err
			}
			return services.PrintResult(cmd.OutOrStdout(), datasetResult(dataset))
		},
	}
}

func datasetResult(dataset *domain.Dataset) *domain.QueryResult {
	result := &domain.QueryResult{
		Columns: dataset.Columns(),
		Rows:    make([][]any, 0, dataset.Len()),
	}
	for _, bank := range dataset.Banks {
		row := []any{bank.Name, bank.MarketCapUSD.String()}
		for _, c := range dataset.Currencies {
			if v := bank.MarketCapIn(c); v.Valid {
				row = append(row, v.Decimal.String())
			} else {
				row = append(row, nil)
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result
}
