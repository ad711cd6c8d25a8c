package cli

import (
	"github.com/SscSPs/banks_etl/internal/core/services"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full extract, transform and load pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			pipeline := services.NewPipeline(a.services, services.PipelineOptions{
				SourceURL: a.cfg.SourceURL,
				CSVPath:   a.cfg.CSVPath,
				TableName: a.cfg.TableName,
			}, a.logger)

			_, err = pipeline.Run(cmd.Context())
			return err
		},
	}
}
