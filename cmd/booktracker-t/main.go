// booktracker-t is a terminal reading tracker: record the books you finish
// and see how many pages you have read. Nothing is saved between sessions.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justyntemme/booktracker-t/internal/config"
	"github.com/justyntemme/booktracker-t/internal/logger"
	"github.com/justyntemme/booktracker-t/internal/tracker"
	"github.com/justyntemme/booktracker-t/internal/ui"
	"github.com/justyntemme/booktracker-t/internal/ui/styles"
	"github.com/justyntemme/booktracker-t/internal/ui/terminal"
	"github.com/urfave/cli/v2"
)

var version = "dev" // Set during build

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:    "booktracker-t",
		Usage:   "Record the books you read and track your page statistics",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE` (default: ~/.config/booktracker-t/config.yaml)",
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "Colour theme to start with",
			},
			&cli.StringFlag{
				Name:  "banner",
				Usage: "Image `FILE` to show above the title (Kitty, iTerm2 or Sixel terminals)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error, disabled)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write logs to `FILE`",
			},
		},
		Action: runTUI,
		Commands: []*cli.Command{
			{
				Name:   "themes",
				Usage:  "List the available colour themes",
				Action: listThemes,
			},
			{
				Name:   "config",
				Usage:  "Print the effective configuration",
				Action: printConfig,
			},
		},
	}
}

// loadConfig loads the config file and applies command line overrides
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("could not locate config directory: %w", err)
		}
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}

	if c.IsSet("theme") {
		if _, err := styles.LookupTheme(c.String("theme")); err != nil {
			return nil, err
		}
		cfg.Theme = c.String("theme")
	}
	if c.IsSet("banner") {
		cfg.BannerImage = c.String("banner")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.Log.File = c.String("log-file")
	}

	return cfg, nil
}

// setupLogging points the global logger at the configured log file. The
// returned closer must be called on exit.
func setupLogging(cfg *config.Config) (*logger.Logger, io.Closer, error) {
	if cfg.Log.Level == "disabled" || cfg.Log.File == "" {
		logger.Setup(logger.Config{Level: "disabled", Output: io.Discard})
		return logger.Get(), io.NopCloser(nil), nil
	}

	f, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}

	logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: logger.ParseLogFormat(cfg.Log.Format),
		Output: f,
	})
	return logger.Get(), f, nil
}

func runTUI(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log, closer, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info("Starting booktracker-t", map[string]interface{}{
		"version": version,
		"config":  cfg.Path(),
		"theme":   cfg.Theme,
	})

	if err := styles.SetCurrentTheme(cfg.Theme); err != nil {
		log.Warn("Unknown theme in config, using default", map[string]interface{}{"error": err.Error()})
	}

	var opts []ui.Option
	if cfg.BannerImage != "" {
		protocol := terminal.DetectProtocol()
		log.Debug("Terminal image support", map[string]interface{}{"protocol": protocol.String()})
		opts = append(opts, ui.WithImageProtocol(protocol))
	}

	store := tracker.NewStore(log)
	app := ui.NewApp(cfg, store, log, opts...)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	final := store.State()
	log.Info("Session ended", map[string]interface{}{
		"books":       len(final.Books),
		"total_pages": final.TotalPagesRead,
	})
	return nil
}

func listThemes(c *cli.Context) error {
	for _, t := range styles.BuiltinThemes {
		fmt.Fprintf(c.App.Writer, "%-10s %s\n", t.Name, t.Description)
	}
	return nil
}

func printConfig(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	out, err := cfg.YAML()
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "# %s\n%s", cfg.Path(), out)
	return nil
}
