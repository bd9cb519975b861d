// Package builder_test provides benchmarks for the graph constructors.
package builder_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/eulergraph/builder"
)

// BenchmarkRandomGraph_Sparse measures sampling far from saturation.
func BenchmarkRandomGraph_Sparse(b *testing.B) {
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = builder.RandomGraph(ctx, 1000, 2000, int64(i))
	}
}

// BenchmarkRandomGraph_Dense measures sampling up to K_n, the worst case for rejections.
func BenchmarkRandomGraph_Dense(b *testing.B) {
	const n = 60
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = builder.RandomGraph(ctx, n, builder.MaxSimpleEdges(n), int64(i))
	}
}

// BenchmarkComplete measures the deterministic K_n constructor.
func BenchmarkComplete(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = builder.BuildGraph(200, nil, nil, builder.Complete(200))
	}
}
