package operators

import "github.com/sksmith/brep/brep"

// AmboOp builds the "ambo" (rectified) mesh: one vertex per original
// edge (at its midpoint), one face per original face (its corners the
// midpoints of that face's boundary edges, in order), and one new face
// per original vertex of degree >= 3 (its corners the midpoints of the
// edges around that vertex, in order) — the vertex figure.
type AmboOp struct{}

func (AmboOp) Symbol() string { return "a" }
func (AmboOp) Name() string   { return "ambo" }

func (AmboOp) Apply(m *brep.Mesh) *brep.Mesh {
	return Ambo(m)
}

// Ambo is AmboOp.Apply as a plain function.
func Ambo(m *brep.Mesh) *brep.Mesh {
	out := brep.NewMesh()

	edgeVerts := make(map[*brep.Edge]*brep.Vertex, m.EdgeCount())
	for _, e := range m.Edges() {
		c := e.Center()
		edgeVerts[e] = out.AddVertex(c.X, c.Y, c.Z)
	}

	for _, f := range m.Faces() {
		edges := f.NeighborEdges()
		corners := make([]*brep.Vertex, len(edges))
		for i, e := range edges {
			corners[i] = edgeVerts[e]
		}
		out.AddFace(corners...)
	}

	for _, v := range m.Vertices() {
		ordered := orderedEdgesAroundVertex(v)
		if len(ordered) < 3 {
			continue
		}
		corners := make([]*brep.Vertex, len(ordered))
		for i, e := range ordered {
			corners[i] = edgeVerts[e]
		}
		out.AddFace(corners...)
	}

	return out
}
