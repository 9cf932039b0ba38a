package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/assistravel/casetrack/modules/cases/importer"
	"github.com/assistravel/casetrack/modules/cases/infrastructure/persistence"
	"github.com/assistravel/casetrack/modules/cases/services"
	"github.com/assistravel/casetrack/pkg/composables"
	"github.com/assistravel/casetrack/pkg/configuration"
	"github.com/assistravel/casetrack/pkg/eventbus"
)

type importOptions struct {
	file string
	dsn  string
}

func newImportCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import cases from an Excel spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Path to the .xlsx file (required)")
	cmd.Flags().StringVar(&opts.dsn, "dsn", "", "Postgres connection string (default: environment)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(ctx context.Context, opts importOptions) error {
	pool, err := openPool(ctx, opts.dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	file, err := os.Open(opts.file)
	if err != nil {
		return withCode(exitUsage, fmt.Errorf("open %s: %w", opts.file, err))
	}
	defer file.Close()

	conf := configuration.Use()
	svc := services.NewImportService(
		persistence.NewCaseRepository(),
		persistence.NewCorrespondentRepository(),
		importer.NewNormalizer(importer.DefaultConfig()),
		eventbus.NewEventPublisher(conf.Logger()),
	)

	result, err := svc.ImportFile(composables.WithPool(ctx, pool), file)
	if err != nil {
		var structural *importer.StructuralError
		if errors.As(err, &structural) {
			return withCode(exitValidation, structural)
		}
		return withCode(exitDB, err)
	}

	printResult(result)
	if !result.Success {
		return withCode(exitValidation, fmt.Errorf("%d row(s) failed", result.Failed))
	}
	return nil
}

func openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if strings.TrimSpace(dsn) == "" {
		dsn = configuration.Use().Database.ConnectionString()
	}
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(connectCtx, dsn)
	if err != nil {
		return nil, withCode(exitDB, fmt.Errorf("connect: %w", err))
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, withCode(exitDB, fmt.Errorf("ping: %w", err))
	}
	return pool, nil
}

func printResult(result *importer.Result) {
	for _, line := range result.Log {
		fmt.Println(line)
	}
	for _, line := range result.Errors {
		fmt.Fprintln(os.Stderr, line)
	}
	for _, line := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning: "+line)
	}
	fmt.Printf(
		"processed=%d created=%d updated=%d skipped=%d failed=%d\n",
		result.Processed, result.Created, result.Updated, result.Skipped, result.Failed,
	)
}
