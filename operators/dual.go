package operators

import "github.com/sksmith/brep/brep"

// DualOp builds the dual of a mesh: one vertex per original face (at
// its centroid), one edge per original edge shared by two faces, and
// one new face per original vertex of degree >= 3, its corners visiting
// the dual vertices of the faces around that original vertex in order.
type DualOp struct{}

func (DualOp) Symbol() string { return "d" }
func (DualOp) Name() string   { return "dual" }

func (DualOp) Apply(m *brep.Mesh) *brep.Mesh {
	return Dual(m)
}

// Dual is DualOp.Apply as a plain function, for direct use by the
// compound operators below.
func Dual(m *brep.Mesh) *brep.Mesh {
	out := brep.NewMesh()

	faceVerts := make(map[*brep.Face]*brep.Vertex, m.FaceCount())
	for _, f := range m.Faces() {
		c := f.Center()
		faceVerts[f] = out.AddVertex(c.X, c.Y, c.Z)
	}

	for _, e := range m.Edges() {
		faces := e.NeighborFaces()
		if len(faces) != 2 {
			continue
		}
		out.AddEdge(faceVerts[faces[0]], faceVerts[faces[1]])
	}

	for _, v := range m.Vertices() {
		ordered := orderedFacesAroundVertex(v)
		if len(ordered) < 3 {
			continue
		}
		corners := make([]*brep.Vertex, len(ordered))
		for i, f := range ordered {
			corners[i] = faceVerts[f]
		}
		out.AddFace(corners...)
	}

	return out
}
