// Package cli implements the cabface command-line interface.
//
// The commands load cabinets from JSON, run them through the face editor and
// the takeoff calculators, and write the results as tables, JSON, Excel
// workbooks or DXF drawings.
//
// # Commands
//
//   - new: create a cabinet file with its default face
//   - layout: print the laid-out face leaves
//   - edit: apply a sequence of face edits and save the result
//   - validate: check a stored face config without repairing it
//   - takeoff: compute parts, hardware and metrics, with optional exports
//   - catalog: list styles, item types and accessories
//   - job: import cabinet schedules and manage estimating sections
//   - template: save face layouts and reuse them on new cabinets
//   - backup: export or restore preferences and templates
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Rejected edits
// are logged as warnings by the editor itself.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/CabFace/internal/catalog"
	"github.com/piwi3910/CabFace/internal/engine"
	"github.com/piwi3910/CabFace/internal/model"
	"github.com/piwi3910/CabFace/internal/project"
)

const (
	// appName is the application name used for display.
	appName = "cabface"

	// recentLimit caps the recent cabinet list in the app config.
	recentLimit = 10
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer

	configPath  string
	catalogPath string
}

// New creates a CLI that logs to logw and prints results to os.Stdout.
func New(logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "CabFace edits cabinet face layouts and computes takeoffs",
		Long:         `CabFace models the face of a cabinet as a tree of doors, drawer fronts and panels separated by reveals. It edits that tree and turns it into parts, hardware counts and shop exports.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "app config file (default: ~/.cabface/config.json)")
	root.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "YAML or TOML catalog (default: config catalog_path, else built-in)")

	root.AddCommand(c.newCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.takeoffCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.jobCommand())
	root.AddCommand(c.templateCommand())
	root.AddCommand(c.backupCommand())

	return root
}

// env is the configuration and catalog every command works against.
type env struct {
	configPath string
	config     model.AppConfig
	catalog    *catalog.Catalog
}

func (c *CLI) loadEnv() (env, error) {
	path := c.configPath
	if path == "" {
		path = project.DefaultConfigPath()
	}
	cfg, err := project.LoadAppConfig(path)
	if err != nil {
		return env{}, fmt.Errorf("load config %s: %w", path, err)
	}

	catPath := c.catalogPath
	if catPath == "" {
		catPath = cfg.CatalogPath
	}
	cat, err := catalog.Load(catPath)
	if err != nil {
		return env{}, fmt.Errorf("load catalog: %w", err)
	}
	c.Logger.Debug("environment loaded", "config", path, "catalog", catPath, "styles", len(cat.Styles), "types", len(cat.Types))
	return env{configPath: path, config: cfg, catalog: cat}, nil
}

func (e env) settings() model.EstimateSettings {
	s := model.DefaultEstimateSettings()
	e.config.ApplyToSettings(&s)
	return s
}

func (c *CLI) newEditor(e env, cab model.Cabinet) (*engine.Editor, error) {
	return engine.NewEditor(cab, e.catalog,
		engine.WithLogger(c.Logger),
		engine.WithAccessories(e.catalog),
		engine.WithDisplayScale(e.config.DisplayScale),
	)
}

// openCabinet loads a cabinet file into an editor.
func (c *CLI) openCabinet(e env, path string) (*engine.Editor, error) {
	cab, err := project.LoadCabinet(path)
	if err != nil {
		return nil, err
	}
	ed, err := c.newEditor(e, cab)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return ed, nil
}

// saveCabinet writes a cabinet and records it in the recent list.
func (c *CLI) saveCabinet(e env, path string, cab model.Cabinet) error {
	if err := project.SaveCabinet(path, cab); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	project.AddRecentCabinet(&e.config, path, recentLimit)
	if err := project.SaveAppConfig(e.configPath, e.config); err != nil {
		c.Logger.Warn("could not update recent cabinets", "err", err)
	}
	return nil
}
