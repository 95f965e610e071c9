package operators

import (
	"testing"

	"github.com/sksmith/brep/brep"
	"github.com/stretchr/testify/assert"
)

func TestAmboVertexCountMatchesEdgeCount(t *testing.T) {
	seed := brep.Cube()
	ambo := Ambo(seed)

	assert.Equal(t, seed.EdgeCount(), ambo.VertexCount())
	assert.Empty(t, brep.CheckInvariants(ambo))
}

func TestOrderedEdgesAroundVertexMatchesDegree(t *testing.T) {
	m := brep.Octahedron()
	for _, v := range m.Vertices() {
		edges := orderedEdgesAroundVertex(v)
		assert.Len(t, edges, v.Degree())
	}
}

func TestOrderedFacesAroundVertexOnTetrahedron(t *testing.T) {
	m := brep.Tetrahedron()
	for _, v := range m.Vertices() {
		faces := orderedFacesAroundVertex(v)
		// Every vertex of a tetrahedron touches exactly 3 faces.
		assert.Len(t, faces, 3)
	}
}
