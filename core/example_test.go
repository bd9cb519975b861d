package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eulergraph/core"
)

// ExampleGraph demonstrates construction, insertion and the Eulerian verdict.
func ExampleGraph() {
	// 1) Create a graph with four isolated vertices:
	g, _ := core.NewGraph(4)

	// 2) Add the square 0-1-2-3-0:
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 0)

	// 3) Query:
	has, _ := g.HasEdge(1, 0)
	fmt.Println("Edge 1-0 exists?", has)
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Eulerian cycle?", g.HasEulerianCycle())

	// 4) A chord makes 0 and 2 odd:
	_ = g.AddEdge(0, 2)
	fmt.Println("After chord:", g.HasEulerianCycle(), g.OddVertices())

	// Output:
	// Edge 1-0 exists? true
	// Edges: 4
	// Eulerian cycle? true
	// After chord: false [0 2]
}

// ExampleGraph_AddEdge shows the out-of-range sentinel.
func ExampleGraph_AddEdge() {
	g, _ := core.NewGraph(3)
	err := g.AddEdge(0, 3)
	fmt.Println(errors.Is(err, core.ErrVertexOutOfRange))
	fmt.Println(err)

	// Output:
	// true
	// AddEdge(0,3): vertex 3 not in [0,3): core: vertex index out of range
}

// ExampleGraph_Components shows that isolated vertices do not count.
func ExampleGraph_Components() {
	g, _ := core.NewGraph(6)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(3, 4)
	fmt.Println(g.Components(), g.IsConnected())

	// Output:
	// 2 false
}
