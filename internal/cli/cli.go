package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/eulergraph/builder"
	"github.com/katalvlaran/eulergraph/core"
	"github.com/katalvlaran/eulergraph/matrix"
)

// =============================================================================
// Constants
// =============================================================================

const (
	appName = "eulercheck"

	flagVertices = "vertices"
	flagEdges    = "edges"
	flagSeed     = "seed"
	flagTimeout  = "timeout"
	flagDense    = "dense"
	flagConfig   = "config"
	flagVerbose  = "verbose"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrInvalidParameters is returned when vertices <= 0 or edges < 0.
var ErrInvalidParameters = errors.New("invalid parameters")

var version = "dev"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) {
	version = v
}

// =============================================================================
// Parameters
// =============================================================================

// params holds the resolved command parameters.
type params struct {
	vertices int
	edges    int
	seed     int64
	timeout  time.Duration // 0 = no deadline
	dense    bool
	config   string
}

// validate enforces vertices > 0 and edges >= 0.
func (p params) validate() error {
	if p.vertices <= 0 || p.edges < 0 {
		return fmt.Errorf("%w: the number of vertices must be positive, and the number of edges must be 0 or more (vertices=%d, edges=%d)",
			ErrInvalidParameters, p.vertices, p.edges)
	}
	return nil
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command tree.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the eulercheck command. It writes its two result
// lines to cmd.OutOrStdout().
func (c *CLI) RootCommand() *cobra.Command {
	var (
		p       params
		verbose bool
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "Generate a random graph and test it for an Eulerian cycle",
		Long: `eulercheck draws a simple undirected graph with the given number of
vertices and edges from a seeded generator, then reports whether the graph
has a closed walk that uses every edge exactly once.

The same seed always yields the same graph. Asking for more edges than a
simple graph can hold, n(n-1)/2, never finishes; use --timeout to bound it.`,
		Example: `  eulercheck -v 5 -e 4 -s 42
  eulercheck --config run.toml --seed 7`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if p.config != "" {
				fc, err := loadConfig(ctx, p.config)
				if err != nil {
					return err
				}
				if err = fc.applyTo(cmd, &p); err != nil {
					return err
				}
			}
			return run(ctx, cmd.OutOrStdout(), p)
		},
	}

	f := root.Flags()
	f.IntVarP(&p.vertices, flagVertices, "v", 0, "number of vertices (must be > 0)")
	f.IntVarP(&p.edges, flagEdges, "e", 0, "number of edges (must be >= 0)")
	f.Int64VarP(&p.seed, flagSeed, "s", 0, "generator seed")
	f.DurationVar(&p.timeout, flagTimeout, 0, "give up generating after this long (0 = never)")
	f.BoolVar(&p.dense, flagDense, false, "store the graph as a dense adjacency matrix")
	f.StringVarP(&p.config, flagConfig, "c", "", "TOML file with default parameters")
	root.PersistentFlags().BoolVar(&verbose, flagVerbose, false, "enable verbose logging")

	return root
}

// =============================================================================
// Run
// =============================================================================

// verdictGraph is what run needs from either representation.
type verdictGraph interface {
	core.GraphLike
	HasEulerianCycle() bool
	IsConnected() bool
}

// run validates p, generates the graph and prints the result.
func run(ctx context.Context, out io.Writer, p params) error {
	logger := loggerFromContext(ctx)

	if err := p.validate(); err != nil {
		return err
	}
	if limit := builder.MaxSimpleEdges(p.vertices); p.edges > limit {
		logger.Warn("more edges requested than a simple graph can hold; generation will not finish on its own",
			"edges", p.edges, "max", limit, "timeout", p.timeout)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	prog := newProgress(logger)
	g, err := generate(ctx, p, func(attempts, inserted int) {
		logger.Debug("sampling", "draws", attempts, "edges", inserted, "target", p.edges)
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	prog.done(fmt.Sprintf("Generated %d edges", g.EdgeCount()))

	has := g.HasEulerianCycle()
	if !has {
		explain(logger, g)
	}

	pr := newPrinter(out)
	pr.summary(p.vertices, p.edges, p.seed)
	pr.verdict(has)

	return nil
}

// generate builds the graph in the requested representation. Both share the
// sampling procedure, so a seed produces the same edge set either way.
func generate(ctx context.Context, p params, onProgress func(attempts, inserted int)) (verdictGraph, error) {
	if !p.dense {
		g, err := builder.RandomGraph(ctx, p.vertices, p.edges, p.seed, builder.WithProgress(onProgress))
		if err != nil {
			return nil, err
		}
		return g, nil
	}

	d, err := matrix.NewDense(p.vertices)
	if err != nil {
		return nil, err
	}
	err = builder.Build(d, []builder.BuilderOption{
		builder.WithSeed(p.seed),
		builder.WithContext(ctx),
		builder.WithProgress(onProgress),
	}, builder.Random(p.edges))
	if err != nil {
		return nil, err
	}
	return d, nil
}

// explain logs at debug level why g has no Eulerian cycle.
func explain(logger *log.Logger, g verdictGraph) {
	odd, err := core.OddDegreeVertices(g)
	if err != nil {
		logger.Debug("odd-degree scan failed", "err", err)
		return
	}
	components, err := core.ComponentCount(g)
	if err != nil {
		logger.Debug("component count failed", "err", err)
		return
	}
	logger.Debug("no Eulerian cycle",
		"connected", g.IsConnected(),
		"components", components,
		"odd_vertices", len(odd))
}
