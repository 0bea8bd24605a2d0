// Package pipeline runs the fetch → build → compute → render sequence shared
// by the CLI and the HTTP server.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/ppinet/builder"
	"github.com/katalvlaran/ppinet/centrality"
	"github.com/katalvlaran/ppinet/graph"
	"github.com/katalvlaran/ppinet/linalg"
	"github.com/katalvlaran/ppinet/render"
)

var (
	// ErrNoInput indicates a run with neither records nor proteins.
	ErrNoInput = errors.New("pipeline: no records and no proteins")

	// ErrNoFetcher indicates a protein query on a Runner without a Fetcher.
	ErrNoFetcher = errors.New("pipeline: no fetcher configured")

	// ErrFetch wraps every failure to obtain records from the Fetcher.
	ErrFetch = errors.New("pipeline: fetch failed")
)

// Fetcher obtains interaction records for a protein list.
// *stringdb.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, proteins []string) ([]builder.Record, error)
}

// Options selects the input and the analysis of one run.
// Records, when non-nil, take precedence over Proteins.
type Options struct {
	Proteins []string
	Records  []builder.Record
	Variant  centrality.Variant

	MinScore    float64 // records below are dropped; 0 keeps all
	UnitWeights bool    // hop distances and 0/1 adjacency
	Render      bool    // produce Result.DOT

	// Zero values leave the engine defaults in place.
	MaxIter       int
	Tolerance     float64
	MaxDenseNodes int
}

// Score is one ranked entry.
type Score struct {
	Node  string  `json:"node"`
	Score float64 `json:"score"`
}

// Stats reports sizes and stage timings of a run.
type Stats struct {
	Nodes       int
	Edges       int
	FetchTime   time.Duration
	BuildTime   time.Duration
	ComputeTime time.Duration
}

// Result is everything one run produced.
type Result struct {
	RunID   uuid.UUID
	Variant centrality.Variant
	Graph   *graph.Graph
	Scores  centrality.ScoreMap
	Ranked  []Score
	DOT     string
	Stats   Stats
}

// Runner executes runs. It keeps no per-run state, so one Runner may serve
// concurrent callers.
type Runner struct {
	Fetcher Fetcher
	Logger  *log.Logger
	Backend linalg.Backend
}

// NewRunner returns a Runner. A nil logger falls back to log.Default and a
// nil backend to the native one.
func NewRunner(f Fetcher, logger *log.Logger, b linalg.Backend) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if b == nil {
		b = linalg.NewNative()
	}
	return &Runner{Fetcher: f, Logger: logger, Backend: b}
}

// Run executes one analysis.
//
// Blueprint:
//
//	Stage 1 (Fetch):   use opts.Records, or ask the Fetcher for opts.Proteins.
//	Stage 2 (Build):   records → graph, applying MinScore.
//	Stage 3 (Compute): score every node under opts.Variant.
//	Stage 4 (Render):  optional DOT source coloured by score.
//
// Errors keep their package sentinels reachable through errors.Is.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if !opts.Variant.Valid() {
		return nil, fmt.Errorf("Run: %s: %w", opts.Variant, centrality.ErrUnknownVariant)
	}
	res := &Result{RunID: uuid.New(), Variant: opts.Variant}
	logger := r.logger().With("run", res.RunID.String())

	// Stage 1: Fetch
	start := time.Now()
	records, err := r.records(ctx, opts)
	if err != nil {
		return nil, err
	}
	res.Stats.FetchTime = time.Since(start)
	logger.Debug("obtained records", "records", len(records), "duration", res.Stats.FetchTime)

	// Stage 2: Build
	start = time.Now()
	var bopts []builder.Option
	if opts.MinScore > 0 {
		bopts = append(bopts, builder.WithMinScore(opts.MinScore))
	}
	g, err := builder.Build(records, bopts...)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	res.Graph = g
	res.Stats.BuildTime = time.Since(start)
	res.Stats.Nodes = g.NodeCount()
	res.Stats.Edges = g.EdgeCount()
	logger.Info("built graph",
		"nodes", res.Stats.Nodes,
		"edges", res.Stats.Edges,
		"duration", res.Stats.BuildTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Compute
	start = time.Now()
	scores, err := centrality.Compute(g, opts.Variant, r.centralityOptions(opts)...)
	if err != nil {
		logger.Warn("centrality failed", "variant", opts.Variant, "err", err)
		return nil, fmt.Errorf("compute: %w", err)
	}
	res.Scores = scores
	res.Ranked = Rank(scores)
	res.Stats.ComputeTime = time.Since(start)
	logger.Info("computed centrality",
		"variant", opts.Variant,
		"duration", res.Stats.ComputeTime)

	// Stage 4: Render
	if opts.Render {
		res.DOT = render.DOT(g, scores, render.Options{Label: opts.Variant.Label()})
	}

	return res, nil
}

func (r *Runner) records(ctx context.Context, opts Options) ([]builder.Record, error) {
	if opts.Records != nil {
		return opts.Records, nil
	}
	if len(opts.Proteins) == 0 {
		return nil, ErrNoInput
	}
	if r.Fetcher == nil {
		return nil, ErrNoFetcher
	}
	recs, err := r.Fetcher.Fetch(ctx, opts.Proteins)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	return recs, nil
}

func (r *Runner) centralityOptions(opts Options) []centrality.Option {
	var out []centrality.Option
	if r.Backend != nil {
		out = append(out, centrality.WithBackend(r.Backend))
	}
	if opts.MaxIter > 0 {
		out = append(out, centrality.WithMaxIter(opts.MaxIter))
	}
	if opts.Tolerance > 0 {
		out = append(out, centrality.WithTolerance(opts.Tolerance))
	}
	if opts.MaxDenseNodes > 0 {
		out = append(out, centrality.WithMaxDenseNodes(opts.MaxDenseNodes))
	}
	if opts.UnitWeights {
		out = append(out, centrality.WithUnitWeights())
	}

	return out
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}

// Rank orders scores by descending score, ties broken by ascending node ID.
func Rank(scores centrality.ScoreMap) []Score {
	out := make([]Score, 0, len(scores))
	for id, s := range scores {
		out = append(out, Score{Node: id, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Node < out[j].Node
	})

	return out
}
