package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/wadjakorntonsri/go-job-board/pkg/adapters/repository/sqlstore"
	"github.com/wadjakorntonsri/go-job-board/pkg/config"
	"github.com/wadjakorntonsri/go-job-board/pkg/core/services"
	"github.com/wadjakorntonsri/go-job-board/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dbURL string

	rootCmd := &cobra.Command{
		Use:          "jobboard",
		Short:        "Maintenance commands for the job board database",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "database URL (defaults to DATABASE_URL)")

	open := func() (*sqlstore.SQLRepository, error) {
		cfg := config.Load()
		if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
			return nil, err
		}
		logging.SetOutput(os.Stderr)
		if dbURL == "" {
			dbURL = cfg.DatabaseURL
		}
		repo, err := sqlstore.NewSQLRepository(dbURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		return repo, nil
	}

	rootCmd.AddCommand(
		newSeedCommand(open),
		newExportCommand(open),
		newImportCommand(open),
	)
	return rootCmd
}

type opener func() (*sqlstore.SQLRepository, error)

func newSeedCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Args:  cobra.NoArgs,
		Short: "Insert the sample jobs into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := open()
			if err != nil {
				return err
			}
			defer repo.Close()

			n, err := services.NewJobService(repo).SeedSampleJobs(cmd.Context())
			if err != nil {
				return err
			}
			logging.Logger().Infof("Seeded %d sample jobs", n)
			return nil
		},
	}
}

func newExportCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Args:  cobra.NoArgs,
		Short: "Write every job and application as JSON to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := open()
			if err != nil {
				return err
			}
			defer repo.Close()
			return exportSnapshot(cmd.Context(), repo, cmd.OutOrStdout())
		},
	}
}

func newImportCommand(open opener) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import",
		Args:  cobra.NoArgs,
		Short: "Load jobs and applications from an export file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			repo, err := open()
			if err != nil {
				return err
			}
			defer repo.Close()

			stats, err := importSnapshot(cmd.Context(), repo, f)
			if err != nil {
				return err
			}
			logging.Logger().Infof("Imported %d jobs and %d applications (%d skipped)",
				stats.Jobs, stats.Applications, stats.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file to import")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
