// Package graph turns the connection topology of a rack into executable
// order. Discovery walks connections in both directions from seed blocks
// and freezes the result into dense indices; ordering then linearizes the
// graph, breaking feedback cycles deterministically so that every block
// updates exactly once per tick.
package graph
