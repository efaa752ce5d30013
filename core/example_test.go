package core_test

import (
	"fmt"

	"github.com/katalvlaran/maxflow/core"
)

// ExampleGraph_Augment shows how a forward arc and its reverse move together.
func ExampleGraph_Augment() {
	g, _ := core.NewGraph(2)
	id, _ := g.AddEdge(0, 1, 5)

	_ = g.Augment(id, 2)
	fmt.Println(g.ResidualCapacity(id), g.ResidualCapacity(g.Reverse(id)))
	fmt.Println(g.FlowEdges())
	// Output:
	// 3 2
	// [{0 1 2}]
}
