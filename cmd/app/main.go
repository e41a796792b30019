package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"progress/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "progress",
		Usage: "track production orders through the manufacturing process sequence",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			seedProcessesCommand(),
			importOrdersCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// getConfigs loads .env when present, then reads the environment.
func getConfigs() (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cmd.Config{}, err
	}
	return cmd.LoadConfig()
}

func newLogger(cfg cmd.Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return logger
}
