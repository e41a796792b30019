package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"progress/cmd"
	"progress/internal/adapters/in/fileimport"
	httpin "progress/internal/adapters/in/http"
	"progress/internal/adapters/out/postgres"
	"progress/internal/adapters/out/rabbitmq"
	"progress/internal/core/application/usecases/commands"
	"progress/internal/core/ports"
	"progress/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API and the scheduled jobs",
		Action: func(c *cli.Context) error {
			cfg, db, err := setup()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			publisher, closePublisher, err := openPublisher(cfg)
			if err != nil {
				return err
			}
			defer closePublisher()

			app := cmd.NewCompositionRoot(cfg, db, publisher, logger)

			if cfg.ProcessesFile != "" {
				if err = seedProcesses(c.Context, app, cfg.ProcessesFile); err != nil {
					return err
				}
			}

			doc, err := httpin.LoadOpenAPI(c.Context)
			if err != nil {
				return err
			}

			e := echo.New()
			e.HideBanner = true
			e.Use(middleware.Recover(), httpin.RequestLogger(logger))
			if err = httpin.RegisterHandlers(e, httpin.NewServer(app.CreateHTTPHandlers(), logger), doc); err != nil {
				return err
			}

			jobManager := jobs.NewJobManager(app.CreateGetDashboardQueryHandler(), cfg.DashboardSnapshotCron, logger)
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info("HTTP server started", "port", cfg.HTTPPort)
				if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return e.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create or update the database schema",
		Action: func(_ *cli.Context) error {
			cfg, db, err := setup()
			if err != nil {
				return err
			}
			if err = postgres.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			newLogger(cfg).Info("Schema is up to date")
			return nil
		},
	}
}

func seedProcessesCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed-processes",
		Usage: "create or reorder processes from a YAML file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "YAML list of processes with name and order",
				EnvVars:  []string{"PROCESSES_FILE"},
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, db, err := setup()
			if err != nil {
				return err
			}
			app := cmd.NewCompositionRoot(cfg, db, nil, newLogger(cfg))
			return seedProcesses(c.Context, app, c.String("file"))
		},
	}
}

func importOrdersCommand() *cli.Command {
	return &cli.Command{
		Name:  "import-orders",
		Usage: "register orders from a CSV file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "CSV with order_no, product_name, quantity and due_date columns",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, db, err := setup()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			f, err := os.Open(c.String("file"))
			if err != nil {
				return err
			}
			defer f.Close()

			rows, parseFailures, err := fileimport.ReadOrders(f)
			if err != nil {
				return err
			}

			app := cmd.NewCompositionRoot(cfg, db, nil, logger)
			handler := app.CreateBulkRegisterOrdersCommandHandler()
			result, err := handler.Handle(c.Context, commands.NewBulkRegisterOrdersCommand(rows))
			if err != nil {
				return err
			}
			result = result.WithFailures(parseFailures)

			for _, failure := range result.Failures {
				logger.Warn("Order was not imported", "row", failure.Row, "order_no", failure.OrderNo, "error", failure.Err)
			}
			logger.Info("Orders imported", "succeeded", result.Succeeded, "failed", len(result.Failures))
			return nil
		},
	}
}

func setup() (cmd.Config, *gorm.DB, error) {
	cfg, err := getConfigs()
	if err != nil {
		return cmd.Config{}, nil, err
	}
	db, err := cmd.OpenDatabase(cfg)
	if err != nil {
		return cmd.Config{}, nil, err
	}
	return cfg, db, nil
}

func seedProcesses(ctx context.Context, app cmd.CompositionRoot, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	seeds, err := fileimport.ReadProcessSeeds(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	seedCmd, err := commands.NewSeedProcessesCommand(seeds)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	handler := app.CreateSeedProcessesCommandHandler()
	result, err := handler.Handle(ctx, seedCmd)
	if err != nil {
		return err
	}
	slog.Default().Info("Processes seeded",
		"created", result.Created,
		"reordered", result.Reordered,
		"unchanged", result.Unchanged,
	)
	return nil
}

// openPublisher connects to RabbitMQ when AMQP_URL is set. Without it the
// returned publisher is nil and transitions are not published.
func openPublisher(cfg cmd.Config) (ports.TransitionPublisher, func(), error) {
	if cfg.AMQPURL == "" {
		return nil, func() {}, nil
	}

	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	publisher, err := rabbitmq.NewTransitionPublisher(conn, cfg.AMQPExchange)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return publisher, func() {
		_ = publisher.Close()
		_ = conn.Close()
	}, nil
}
