// Package graphview projects a brep.Mesh's vertex adjacency onto a
// github.com/dominikbraun/graph graph, so callers can run that
// library's traversal and connectivity algorithms (BFS, strongly
// connected components) over mesh topology without brep itself
// depending on a graph-theory package. It reads the mesh only through
// its public query surface (Vertices, NeighborEdges, OtherVertex).
package graphview

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"
	"github.com/sksmith/brep/brep"
)

// MeshGraph is the vertex-adjacency projection: vertex keys are indices
// into the mesh's vertex list at the time Adjacency was called, values
// are the same index, and edges carry no payload.
type MeshGraph = graph.MemoryGraph[int, int, any]

// Adjacency builds a directed graph with both directions of every mesh
// edge present, since brep edges are inherently undirected but the
// library's traversal and component algorithms operate on directed
// graphs. Vertex keys are stable only for the lifetime of the returned
// graph — they do not survive further mutation of m.
func Adjacency(m *brep.Mesh) (*MeshGraph, error) {
	verts := m.Vertices()
	index := make(map[*brep.Vertex]int, len(verts))
	for i, v := range verts {
		index[v] = i
	}

	g := graph.NewMemoryGraph[int, int, any](graph.IntHash, graph.Directed())
	for i := range verts {
		if err := g.AddVertex(i); err != nil {
			return nil, fmt.Errorf("graphview: adding vertex %d: %w", i, err)
		}
	}
	for _, v := range verts {
		src := index[v]
		for _, e := range v.NeighborEdges() {
			dst, ok := index[e.OtherVertex(v)]
			if !ok {
				continue
			}
			if err := g.AddEdge(src, dst); err != nil {
				if isDuplicateEdgeErr(err) {
					continue
				}
				return nil, fmt.Errorf("graphview: adding edge %d->%d: %w", src, dst, err)
			}
		}
	}
	return g, nil
}

func isDuplicateEdgeErr(err error) bool {
	var dup *graph.EdgeAlreadyExistsError[int]
	return errors.As(err, &dup)
}

// BFSOrder returns the vertex indices reachable from start, in
// breadth-first order, by draining graph.BFS's iterator.
func BFSOrder(g *MeshGraph, start int) ([]int, error) {
	var out []int
	for k, err := range graph.BFS[int, int, any](g, start) {
		if err != nil {
			return nil, fmt.Errorf("graphview: BFS: %w", err)
		}
		out = append(out, k)
	}
	return out, nil
}

// ConnectedComponents returns the mesh's connectivity components (via
// strongly connected components on the doubled-edge directed graph,
// which coincides with ordinary connectivity since every edge has both
// directions present).
func ConnectedComponents(g *MeshGraph) ([][]int, error) {
	comps, err := graph.StronglyConnectedComponents[int, int, any](g)
	if err != nil {
		return nil, fmt.Errorf("graphview: strongly connected components: %w", err)
	}
	return comps, nil
}
