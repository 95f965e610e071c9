// Package operators implements the Conway-notation mesh operators as an
// external collaborator of brep: every function here is built purely
// from brep's public interface (AddVertex, AddFace, NeighborFaces,
// NeighborEdges, Center, ...). None of it reaches into brep's
// unexported fields.
package operators

import "github.com/sksmith/brep/brep"

// Operation is a named, symbol-tagged mesh transform.
type Operation interface {
	Apply(m *brep.Mesh) *brep.Mesh
	Symbol() string
	Name() string
}
