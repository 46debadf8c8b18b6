package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	fxmodules "valorant-analytics/internal/fx"
	"valorant-analytics/internal/domain"
	"valorant-analytics/internal/service"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var errAllFailed = errors.New("no file could be imported")

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "importer",
		Short:         "Import match dumps into the analytics database",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(scanCmd(), fileCmd())
	return root
}

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [dir]",
		Short: "Import every match file in a directory, replacing stored copies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}

			return withScanner(cmd.Context(), func(ctx context.Context, scanner *service.ScanService) error {
				results, summary, err := scanner.ImportDirectory(ctx, dir)
				if err != nil {
					return err
				}
				return report(cmd.OutOrStdout(), results, summary)
			})
		},
	}
}

func fileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file <path>...",
		Short: "Import the given match files, replacing stored copies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withScanner(cmd.Context(), func(ctx context.Context, scanner *service.ScanService) error {
				results, summary := scanner.ImportFiles(ctx, args)
				return report(cmd.OutOrStdout(), results, summary)
			})
		},
	}
}

// withScanner starts the dependency graph without the HTTP server and hands
// the scan service to fn.
func withScanner(ctx context.Context, fn func(context.Context, *service.ScanService) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var scanner *service.ScanService
	var sqlDB *sql.DB

	app := fx.New(
		fxmodules.CoreModule,
		fx.Populate(&scanner, &sqlDB),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		return fmt.Errorf("failed to build importer: %w", err)
	}
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start importer: %w", err)
	}
	defer func() {
		_ = app.Stop(context.Background())
		_ = sqlDB.Close()
	}()

	return fn(ctx, scanner)
}

// report prints one row per file. It fails only when every file failed.
func report(w io.Writer, results []domain.FileImportResult, summary domain.ImportSummary) error {
	table := tablewriter.NewTable(w)
	table.Header("File", "Status", "Match", "Detail")

	for _, r := range results {
		detail := r.Reason
		if r.Failed() {
			detail = r.Error
		}
		if err := table.Append([]string{r.File, string(r.Status), r.MatchID, detail}); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	fmt.Fprintf(w, "imported %d, skipped %d, failed %d\n", summary.Imported, summary.Skipped, summary.Failed)

	if len(results) > 0 && summary.Failed == len(results) {
		return errAllFailed
	}
	return nil
}

func init() {
	if os.Getenv("LOG_LEVEL") == "" {
		os.Setenv("LOG_LEVEL", "warn")
	}
}
