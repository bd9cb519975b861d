// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodRandom         = "Random"
	methodRandomGraph    = "RandomGraph"
	methodCycle          = "Cycle"
	methodPath           = "Path"
	methodComplete       = "Complete"
	methodDisjointCycles = "DisjointCycles"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

const (
	// A cycle with fewer than 3 nodes cannot form a ring without loops or multi-edges.
	minCycleNodes = 3
	// A path of fewer than 2 nodes has no edges.
	minPathNodes = 2
	// K_1 is a single isolated vertex.
	minCompleteNodes = 1
	// DisjointCycles needs at least one ring.
	minCycleCount = 1
	// RandomGraph needs something to draw from.
	minRandomGraphVertices = 1
)

//-----------------------------------------------------------------------------
// Sampling cadence
//-----------------------------------------------------------------------------

const (
	// ctxCheckInterval is how many draws Random makes between ctx polls.
	ctxCheckInterval = 1 << 10
	// progressInterval is how many draws Random makes between progress reports.
	progressInterval = 1 << 16
)
