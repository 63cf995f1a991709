// Package cli provides the command-line interface for skillmart.
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/skillmart/skillmart/internal/config"
	"github.com/skillmart/skillmart/internal/logging"
	"github.com/skillmart/skillmart/internal/ui"
)

var (
	// Version is the current version of the application.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// BuildDate is the date and time of the build.
	BuildDate = "unknown"
)

// Run executes the CLI application with the given context and arguments.
func Run(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:    "skillmart",
		Usage:   "Install and manage agent skills from marketplace repositories",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output (info level logging)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug output (debug level logging, implies verbose)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&cli.StringFlag{
				Name:  "skills-dir",
				Usage: "Override the skills directory",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return ctx, err
			}
			configureColors(cmd, cfg)
			return ctx, configureLogging(cmd)
		},
		Commands: []*cli.Command{
			installCommand(),
			removeCommand(),
			listCommand(),
			searchCommand(),
			availableCommand(),
			useCommand(),
			currentCommand(),
			deactivateCommand(),
			configCommand(),
			versionCommand(),
		},
	}
	return app.Run(ctx, args)
}

// loadConfig loads the configuration, applying the --skills-dir override.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir := cmd.String("skills-dir"); dir != "" {
		cfg.Skills.Dir = dir
	}
	return cfg, nil
}

// configureColors sets up color output based on CLI flags and config.
func configureColors(cmd *cli.Command, cfg *config.Config) {
	if cmd.Bool("no-color") {
		ui.DisableColors()
		return
	}
	ui.ConfigureColors(cfg.Output.Color)
}

// configureLogging sets up the logging level based on CLI flags.
func configureLogging(cmd *cli.Command) error {
	opts := logging.DefaultOptions()

	if cmd.Bool("debug") {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	} else if cmd.Bool("verbose") {
		opts.Level = slog.LevelInfo
	}

	logger := logging.New(opts)
	logging.SetDefault(logger)

	logging.Debug("logging configured", slog.String("level", opts.Level.String()))

	return nil
}
