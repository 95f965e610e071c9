package operators

import "github.com/sksmith/brep/brep"

// pyramidHeight is the distance the kis apex is raised above each
// face's plane along its normal.
const pyramidHeight = 0.5

// KisOp raises a pyramid on every face: each original face is replaced
// by N triangles (N = face's corner count) fanning from a new apex
// vertex above the face's centroid to each of its boundary edges.
type KisOp struct{}

func (KisOp) Symbol() string { return "k" }
func (KisOp) Name() string   { return "kis" }

func (KisOp) Apply(m *brep.Mesh) *brep.Mesh {
	return Kis(m)
}

// Kis is KisOp.Apply as a plain function.
func Kis(m *brep.Mesh) *brep.Mesh {
	out := brep.NewMesh()

	vertMap := make(map[*brep.Vertex]*brep.Vertex, m.VertexCount())
	for _, v := range m.Vertices() {
		vertMap[v] = out.AddVertex(v.Position.X, v.Position.Y, v.Position.Z)
	}

	for _, f := range m.Faces() {
		centroid := f.Center()
		normal := f.Normal()
		apexPos := centroid.Add(normal.Scale(pyramidHeight))
		apex := out.AddVertex(apexPos.X, apexPos.Y, apexPos.Z)

		verts := f.NeighborVertices()
		n := len(verts)
		for i := 0; i < n; i++ {
			v1 := vertMap[verts[i]]
			v2 := vertMap[verts[(i+1)%n]]
			out.AddFace(v1, v2, apex)
		}
	}

	return out
}
