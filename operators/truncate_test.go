package operators

import (
	"testing"

	"github.com/sksmith/brep/brep"
	"github.com/stretchr/testify/assert"
)

func TestTruncateDoublesVertexCountPerEdge(t *testing.T) {
	seed := brep.Tetrahedron()
	trunc := Truncate(seed)

	assert.Equal(t, seed.EdgeCount()*2, trunc.VertexCount())
	// one truncated face per original face + one small face per vertex
	assert.Equal(t, seed.FaceCount()+seed.VertexCount(), trunc.FaceCount())
	assert.Empty(t, brep.CheckInvariants(trunc))
}
