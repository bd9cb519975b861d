package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig mirrors the TOML file accepted by --config. Every key is
// optional; a nil field leaves the flag value untouched.
//
//	vertices = 10
//	edges    = 12
//	seed     = 42
//	timeout  = "5s"
type fileConfig struct {
	Vertices *int    `toml:"vertices"`
	Edges    *int    `toml:"edges"`
	Seed     *int64  `toml:"seed"`
	Timeout  *string `toml:"timeout"`
	Dense    *bool   `toml:"dense"`
}

// loadConfig decodes the TOML file at path. Unknown keys are logged and
// otherwise ignored.
func loadConfig(ctx context.Context, path string) (fileConfig, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fileConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		loggerFromContext(ctx).Warn("ignoring unknown config keys", "file", path, "keys", extra)
	}
	return fc, nil
}

// applyTo copies file values into p for every flag the user did not set
// explicitly on the command line.
func (fc fileConfig) applyTo(cmd *cobra.Command, p *params) error {
	changed := cmd.Flags().Changed
	if fc.Vertices != nil && !changed(flagVertices) {
		p.vertices = *fc.Vertices
	}
	if fc.Edges != nil && !changed(flagEdges) {
		p.edges = *fc.Edges
	}
	if fc.Seed != nil && !changed(flagSeed) {
		p.seed = *fc.Seed
	}
	if fc.Dense != nil && !changed(flagDense) {
		p.dense = *fc.Dense
	}
	if fc.Timeout != nil && !changed(flagTimeout) {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return fmt.Errorf("config timeout %q: %w", *fc.Timeout, err)
		}
		p.timeout = d
	}
	return nil
}
