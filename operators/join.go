package operators

import "github.com/sksmith/brep/brep"

// JoinOp builds the "join" mesh as ambo(dual(m)): one vertex per
// original edge shared by two faces (the midpoint between those faces'
// centroids), and one face per original vertex and per original face.
type JoinOp struct{}

func (JoinOp) Symbol() string { return "j" }
func (JoinOp) Name() string   { return "join" }

func (JoinOp) Apply(m *brep.Mesh) *brep.Mesh {
	return Join(m)
}

// Join is JoinOp.Apply as a plain function.
func Join(m *brep.Mesh) *brep.Mesh {
	return Ambo(Dual(m))
}
