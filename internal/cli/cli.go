// Package cli implements the ppinet command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ppinet/config"
	"github.com/katalvlaran/ppinet/linalg"
	"github.com/katalvlaran/ppinet/pipeline"
	"github.com/katalvlaran/ppinet/stringdb"
)

// Version is reported by --version; set at build time with -ldflags.
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "ppinet",
		Short:        "ppinet scores protein interaction networks by centrality",
		Long:         `ppinet fetches protein interaction networks from STRING (or reads them from TSV), scores every protein under one of eleven centrality measures, and renders the network coloured by score.`,
		Version:      Version,
		SilenceUsage: true,
	}

	root.AddCommand(c.variantsCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// newRunner wires a pipeline runner to the STRING client and backend named by cfg.
func (c *CLI) newRunner(cfg *config.Config) (*pipeline.Runner, error) {
	b, err := linalg.ByName(cfg.Analysis.Backend)
	if err != nil {
		return nil, err
	}
	client := stringdb.NewClient(cfg.String.BaseURL, cfg.String.Species, stringdb.WithCaller(cfg.String.Caller))

	return pipeline.NewRunner(client, c.Logger, b), nil
}
