// SPDX-License-Identifier: MIT
// Package core_test contains small fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/core"
)

// mustGraph builds an n-vertex graph or fails the test.
func mustGraph(t testing.TB, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	require.NoError(t, err)

	return g
}

// mustEdge adds from→to or fails the test.
func mustEdge(t testing.TB, g *core.Graph, from, to int, capacity int64) core.EdgeID {
	t.Helper()
	id, err := g.AddEdge(from, to, capacity)
	require.NoError(t, err)

	return id
}
