package operators

import "github.com/sksmith/brep/brep"

// defaultTruncateFactor is the standard truncation factor (1/3 of the
// way along each edge from either endpoint).
const defaultTruncateFactor = 1.0 / 3.0

// TruncateOp cuts a small corner off every vertex of the mesh: each
// edge gets two new vertices near its endpoints, each original face is
// rebuilt from those edge-vertices, and each original vertex of degree
// >= 3 becomes a new small face connecting the near-vertex points of
// its incident edges.
type TruncateOp struct{}

func (TruncateOp) Symbol() string { return "t" }
func (TruncateOp) Name() string   { return "truncate" }

func (TruncateOp) Apply(m *brep.Mesh) *brep.Mesh {
	return Truncate(m)
}

type edgeVertexKey struct {
	e *brep.Edge
	v *brep.Vertex
}

// Truncate is TruncateOp.Apply as a plain function.
func Truncate(m *brep.Mesh) *brep.Mesh {
	out := brep.NewMesh()

	near := make(map[edgeVertexKey]*brep.Vertex, m.EdgeCount()*2)
	for _, e := range m.Edges() {
		p1, p2 := e.V1.Position, e.V2.Position
		dir := p2.Sub(p1)
		near1 := p1.Add(dir.Scale(defaultTruncateFactor))
		near2 := p1.Add(dir.Scale(1 - defaultTruncateFactor))
		near[edgeVertexKey{e, e.V1}] = out.AddVertex(near1.X, near1.Y, near1.Z)
		near[edgeVertexKey{e, e.V2}] = out.AddVertex(near2.X, near2.Y, near2.Z)
	}

	for _, f := range m.Faces() {
		verts := f.NeighborVertices()
		edges := f.NeighborEdges()
		n := len(verts)
		corners := make([]*brep.Vertex, 0, n*2)
		for i, v := range verts {
			prevEdge := edges[(i-1+n)%n]
			nextEdge := edges[i]
			corners = append(corners, near[edgeVertexKey{prevEdge, v}], near[edgeVertexKey{nextEdge, v}])
		}
		if len(corners) >= 3 {
			out.AddFace(corners...)
		}
	}

	for _, v := range m.Vertices() {
		ordered := orderedEdgesAroundVertex(v)
		if len(ordered) < 3 {
			continue
		}
		corners := make([]*brep.Vertex, len(ordered))
		for i, e := range ordered {
			corners[i] = near[edgeVertexKey{e, v}]
		}
		out.AddFace(corners...)
	}

	return out
}
