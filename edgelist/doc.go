// Package edgelist reads and writes the binary edge-list format consumed by
// the maxflow tool, and builds residual graphs from it.
//
// Layout (all fields little-endian int16):
//
//	+-------------+----------------------------------+----
//	| numVertices | origin | destination | capacity  | ...
//	+-------------+----------------------------------+----
//	    2 bytes              6 bytes per record
//
// A stream ends cleanly at a record boundary. A partial trailing record, a
// negative vertex count or capacity, and an endpoint outside
// [0, numVertices) are all rejected, so a decoded EdgeList can always be
// built into a core.Graph.
package edgelist
