// Package maxflow computes maximum flows of directed capacitated networks
// with the Edmonds–Karp algorithm.
//
// The module is organized in small packages:
//
//	core/            - residual graph arena: arcs paired with their reverses, flow bookkeeping
//	bfs/             - breadth-first search over arcs with spare residual capacity
//	flow/            - Edmonds–Karp driver, min-cut extraction and flow verification
//	edgelist/        - binary edge-list codec, file I/O and random network generation
//	report/          - text and table reports of a solved network
//	metrics/         - Prometheus collectors for solver runs
//	mainboilerplate/ - command-line configuration, logging and metrics output
//	cmd/maxflow/     - the maxflow command: solve, generate, print-config
//
// Quick start:
//
//	g, _ := core.NewGraph(4)
//	_, _ = g.AddEdge(0, 1, 3)
//	_, _ = g.AddEdge(0, 2, 2)
//	_, _ = g.AddEdge(1, 3, 2)
//	_, _ = g.AddEdge(2, 3, 3)
//	res, _ := flow.EdmondsKarp(g, 0, 3)
//	fmt.Println(res.MaxFlow) // 4
//
// Every arc carries its flow in place, so after a run the graph itself is
// the flow assignment: Graph.FlowEdges lists it and flow.Verify checks it.
package maxflow
