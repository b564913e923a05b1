// Package cli implements the nametags command-line interface.
//
// # Commands
//
//   - serve: run the HTTP form and PDF endpoint
//   - render: turn a JSON form file into a PDF
//   - layout: print where every element of a form would be drawn
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// a charmbracelet/log logger, also installed as the slog handler so library
// and server logs share one sink.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/chtl/nametags"
	"github.com/chtl/nametags/assets"
	"github.com/chtl/nametags/internal/config"
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// globals holds the persistent flags shared by every command.
type globals struct {
	verbose    bool
	configPath string
	stderr     io.Writer
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Logs go to stderr.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	g := &globals{stderr: stderr}

	root := &cobra.Command{
		Use:          "nametags",
		Short:        "Print name tags onto a label sheet",
		Long:         `nametags lays out up to six name tags on a US Letter badge sheet and renders them as a PDF, from the command line or through a small web form.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("nametags %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "path to a TOML config file")

	root.AddCommand(newServeCmd(g))
	root.AddCommand(newRenderCmd(g))
	root.AddCommand(newLayoutCmd(g))
	return root
}

// setup loads configuration and builds the logger and generator every
// command needs.
func (g *globals) setup() (config.Config, *slog.Logger, *nametags.Generator, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	level, err := charmlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = charmlog.InfoLevel
	}
	if g.verbose {
		level = charmlog.DebugLevel
	}
	logger := slog.New(newLogger(g.stderr, level))
	slog.SetDefault(logger)

	gen, err := newGenerator(cfg, logger)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, logger, gen, nil
}

func newGenerator(cfg config.Config, logger *slog.Logger) (*nametags.Generator, error) {
	bundle, err := assets.Load(assets.Paths{
		Logo:     cfg.Assets.Logo,
		Regular:  cfg.Assets.Regular,
		Semibold: cfg.Assets.Semibold,
	})
	if err != nil {
		return nil, err
	}

	opts := []nametags.Option{
		nametags.WithGeometry(cfg.Geometry),
		nametags.WithAssets(bundle),
		nametags.WithLogger(logger),
	}
	if cfg.Assets.Template != "" {
		tpl, err := os.ReadFile(cfg.Assets.Template)
		if err != nil {
			return nil, fmt.Errorf("reading template: %w", err)
		}
		opts = append(opts, nametags.WithTemplate(tpl))
	}
	return nametags.New(opts...), nil
}
