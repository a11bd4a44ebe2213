package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/tmather/daybook/internal"
	"github.com/tmather/daybook/internal/index"
	"github.com/tmather/daybook/internal/journal"
	"github.com/tmather/daybook/internal/logbook"
	"github.com/tmather/daybook/internal/storage"
	"github.com/tmather/daybook/internal/template"
	pkgconfig "github.com/tmather/daybook/pkg/config"
)

// loadConfig builds the effective configuration: defaults, then the config
// file when present, then the --root flag override.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadIfExists(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if root := cmd.String("root"); root != "" {
		cfg.Root.Path = root
	}
	return cfg, nil
}

// services bundles everything the local commands need.
type services struct {
	cfg   *internal.Config
	store storage.Provider
	prov  *journal.Provisioner
	logs  *logbook.Store
}

func newServices(cmd *cli.Command) (*services, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Root.Path, 0o755); err != nil {
		return nil, fmt.Errorf("create root dir: %w", err)
	}
	store, err := storage.NewFS(cfg.Root.Path)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	engine := template.New(template.FileResolver(store))
	return &services{
		cfg:   cfg,
		store: store,
		prov:  journal.NewProvisioner(store, engine, cfg.Journal.WeekendMinimal),
		logs:  logbook.NewStore(store, nil),
	}, nil
}

// openIndex opens the SQLite search index for commands that need it.
func (s *services) openIndex() (*index.DB, error) {
	db, err := index.Open(s.cfg.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("init index: %w", err)
	}
	return db, nil
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "daybook",
		Usage: "Journal, notes, and activity logging over a plain Markdown directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("DAYBOOK_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "root",
				Usage:   "Override the daybook root directory",
				Sources: cli.EnvVars("DAYBOOK_ROOT"),
			},
		},
		Commands: append(append([]*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP API server",
				Action: serveAction,
			},
		}, journalCommands()...), logCommands()...),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
