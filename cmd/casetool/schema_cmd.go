package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/assistravel/casetrack/modules/cases/infrastructure/persistence"
)

func newSchemaCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := openPool(ctx, dsn)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := persistence.ApplySchema(ctx, pool); err != nil {
				return withCode(exitDB, fmt.Errorf("apply schema: %w", err))
			}
			fmt.Println("schema applied")
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "Postgres connection string (default: environment)")
	return cmd
}
