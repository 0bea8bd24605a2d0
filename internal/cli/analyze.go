package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ppinet/builder"
	"github.com/katalvlaran/ppinet/centrality"
	"github.com/katalvlaran/ppinet/config"
	"github.com/katalvlaran/ppinet/pipeline"
	"github.com/katalvlaran/ppinet/render"
	"github.com/katalvlaran/ppinet/stringdb"
)

type analyzeFlags struct {
	configPath  string
	variant     string
	backend     string
	input       string
	proteins    []string
	minScore    float64
	unitWeights bool
	svgPath     string
	dotPath     string
}

func (c *CLI) analyzeCommand() *cobra.Command {
	var f analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score every protein of an interaction network",
		Long: `Score every protein of an interaction network.

The network is read from a STRING TSV export (--input) or fetched from the
STRING API for the given proteins (--protein, repeatable or comma-separated).
Without either, the configured protein list is fetched.

Scores are printed as a ranked table. --dot and --svg write the network
coloured by score.`,
		Example: `  ppinet analyze --variant Betweenness
  ppinet analyze --protein TPH1,COMT,HTR2C --svg network.svg
  ppinet analyze --input string_interactions.tsv --variant Harmonic --unit-weights`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(f.configPath)
			if err != nil {
				return err
			}
			if err := f.apply(cmd, cfg); err != nil {
				return err
			}
			return c.runAnalyze(cmd, cfg, f)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVar(&f.variant, "variant", "", "centrality measure (see 'ppinet variants')")
	cmd.Flags().StringVar(&f.backend, "backend", "", "numeric backend: native, gonum")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "STRING TSV file instead of the API")
	cmd.Flags().StringSliceVarP(&f.proteins, "protein", "p", nil, "protein identifier to query")
	cmd.Flags().Float64Var(&f.minScore, "min-score", 0, "drop interactions scoring below this")
	cmd.Flags().BoolVar(&f.unitWeights, "unit-weights", false, "ignore interaction scores")
	cmd.Flags().StringVar(&f.svgPath, "svg", "", "write the rendered network to this SVG file")
	cmd.Flags().StringVar(&f.dotPath, "dot", "", "write the Graphviz source to this file")
	cmd.MarkFlagsMutuallyExclusive("input", "protein")

	return cmd
}

// apply lets explicitly set flags override the resolved configuration.
func (f *analyzeFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("variant") {
		cfg.Analysis.Variant = f.variant
	}
	if fl.Changed("backend") {
		cfg.Analysis.Backend = f.backend
	}
	if fl.Changed("protein") {
		cfg.String.Proteins = f.proteins
	}
	if fl.Changed("min-score") {
		cfg.String.MinScore = f.minScore
	}
	if fl.Changed("unit-weights") {
		cfg.Analysis.UnitWeights = f.unitWeights
	}

	return cfg.Validate()
}

func (c *CLI) runAnalyze(cmd *cobra.Command, cfg *config.Config, f analyzeFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	variant, err := centrality.ParseVariant(cfg.Analysis.Variant)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(cfg)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	opts := pipeline.Options{
		Proteins:      cfg.String.Proteins,
		Variant:       variant,
		MinScore:      cfg.String.MinScore,
		UnitWeights:   cfg.Analysis.UnitWeights,
		Render:        f.svgPath != "" || f.dotPath != "",
		MaxIter:       cfg.Analysis.MaxIter,
		Tolerance:     cfg.Analysis.Tolerance,
		MaxDenseNodes: cfg.Analysis.MaxDenseNodes,
	}
	if f.input != "" {
		if opts.Records, err = readRecords(f.input); err != nil {
			return err
		}
		printInfo(out, "read %d interactions from %s", len(opts.Records), f.input)
	} else {
		printInfo(out, "querying STRING for %d proteins", len(opts.Proteins))
	}

	res, err := runner.Run(ctx, opts)
	if err != nil {
		return err
	}
	printReport(out, res)

	if f.dotPath != "" {
		if err := os.WriteFile(f.dotPath, []byte(res.DOT), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.dotPath, err)
		}
		printSuccess(out, "wrote Graphviz source")
		printFile(out, f.dotPath)
	}
	if f.svgPath != "" {
		svg, err := render.SVG(ctx, res.DOT)
		if err != nil {
			return err
		}
		if err := os.WriteFile(f.svgPath, svg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.svgPath, err)
		}
		printSuccess(out, "rendered network")
		printFile(out, f.svgPath)
	}

	return nil
}

func readRecords(path string) ([]builder.Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	records, err := stringdb.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return records, nil
}
