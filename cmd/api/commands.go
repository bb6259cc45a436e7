package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"socialdots/internal/adapter/http/routes"
	"socialdots/internal/adapter/persistence/repository"
	"socialdots/internal/bootstrap"
	"socialdots/internal/domain/entities"
	"socialdots/internal/infrastructure/config"
	"socialdots/internal/infrastructure/database"
	"socialdots/internal/infrastructure/logger"
	"socialdots/internal/infrastructure/queue"
	"socialdots/internal/usecase"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// withApp loads the configuration, builds the application and hands it to fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Format, cfg.IsProduction())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(ctx, app)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site, the webhooks and the APIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(_ context.Context, app *bootstrap.App) error {
				return routes.Run(app)
			})
		},
	}
}

func workersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workers",
		Short: "Process queued side effects (needs REDIS_URL)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(_ context.Context, app *bootstrap.App) error {
				if app.Config.Redis.URL == "" {
					return errors.New("REDIS_URL is not set, side effects run inline in the server")
				}
				opt, err := queue.ParseRedisURL(app.Config.Redis.URL)
				if err != nil {
					return err
				}
				srv := queue.NewWorkerServer(opt, app.Config.Redis.Concurrency)
				logrus.WithField("concurrency", app.Config.Redis.Concurrency).Info("[side-effect][worker] starting")
				// Run blocks until SIGTERM or SIGINT and then shuts down gracefully.
				return srv.Run(queue.NewWorkerMux(app.Runner))
			})
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing DynamoDB tables and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				created, err := repository.EnsureTables(ctx, app.DynamoDB, repository.Schemas(app.Tables))
				if err != nil {
					return err
				}
				logrus.WithField("created", created).Info("[migrate] tables ready")
				return nil
			})
		},
	}
}

func exportCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the content catalog to a fixture file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				bundle, err := app.UseCases.Fixtures.Export(ctx)
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(bundle, "", "  ")
				if err != nil {
					return errors.Wrap(err, "encode bundle")
				}
				if file == "" || file == "-" {
					_, err = cmd.OutOrStdout().Write(append(data, '\n'))
					return err
				}
				if err := os.WriteFile(file, data, 0o644); err != nil {
					return errors.Wrapf(err, "write %s", file)
				}
				logrus.WithField("file", file).Info("[fixtures] exported")
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "output file, stdout when empty")
	return cmd
}

func importCmd() *cobra.Command {
	var (
		file string
		opts usecase.ImportOptions
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a fixture file into the content catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return errors.Wrapf(err, "read %s", file)
			}
			var bundle entities.FixtureBundle
			if err := json.Unmarshal(data, &bundle); err != nil {
				return errors.Wrapf(err, "decode %s", file)
			}
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				report, err := app.UseCases.Fixtures.Import(ctx, bundle, opts)
				if err != nil {
					return err
				}
				return printReport(cmd, report)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "fixture file")
	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "replace records that already exist")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "count changes without writing")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func syncCmd() *cobra.Command {
	var (
		source string
		opts   usecase.ImportOptions
	)
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Copy the content catalog from another DynamoDB endpoint",
		Long: `Copy the content catalog from another DynamoDB endpoint into the configured one.

Both sides use the same table names. Records are matched by natural key.

Examples:
  socialdots sync --source-endpoint http://localhost:8000
  socialdots sync --source-endpoint http://localhost:8000 --overwrite --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				srcCfg := app.Config.DynamoDB
				srcCfg.Endpoint = source
				src, err := database.ConnectDynamoDB(ctx, srcCfg)
				if err != nil {
					return errors.Wrap(err, "connect source")
				}
				from := usecase.NewFixtureUseCase(bootstrap.NewContentRepositories(src, app.Tables), nil)
				report, err := usecase.SyncFixtures(ctx, from, app.UseCases.Fixtures, opts)
				if err != nil {
					return err
				}
				return printReport(cmd, report)
			})
		},
	}
	cmd.Flags().StringVar(&source, "source-endpoint", "", "DynamoDB endpoint to read from")
	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "replace records that already exist")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "count changes without writing")
	_ = cmd.MarkFlagRequired("source-endpoint")
	return cmd
}

func printReport(cmd *cobra.Command, report entities.FixtureReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
