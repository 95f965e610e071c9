package brep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveFaceKeepsEdgesAndVertices(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)
	c := m.AddVertex(0, 1, 0)

	f := m.AddFace(a, b, c)
	require.Equal(t, 1, m.FaceCount())
	require.Equal(t, 3, m.EdgeCount())

	m.RemoveFace(f)

	assert.Equal(t, 0, m.FaceCount())
	assert.Equal(t, 0, m.LoopCount())
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, 3, m.VertexCount())
	assert.Empty(t, a.NeighborFaces())
	assert.NotNil(t, m.FindEdge(a, b)) // still findable
}

func TestRemoveEdgeCascadesToFaces(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)
	c := m.AddVertex(0, 1, 0)
	d := m.AddVertex(0, 0, 1)

	fA := m.AddFace(a, b, c)
	fB := m.AddFace(a, b, d)
	shared := m.FindEdge(a, b)
	require.NotNil(t, shared)
	require.Equal(t, 2, shared.RadialDegree())

	m.RemoveEdge(shared)

	assert.Equal(t, 0, m.FaceCount())
	assert.Nil(t, m.FindEdge(a, b))
	assert.Equal(t, 4, m.VertexCount())
	_ = fA
	_ = fB
}

func TestRemoveVertexCascadesToEdgesAndFaces(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)
	c := m.AddVertex(0, 1, 0)

	m.AddFace(a, b, c)
	require.Equal(t, 1, m.FaceCount())

	m.RemoveVertex(a)

	assert.Equal(t, 0, m.FaceCount())
	assert.Equal(t, 2, m.VertexCount())
	// the b-c edge survives; only edges touching a are gone
	assert.NotNil(t, m.FindEdge(b, c))
	assert.True(t, b.Degree() == 1)
}

func TestRemoveVertexIsolatedNoOp(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	m.AddVertex(1, 0, 0)

	m.RemoveVertex(a)

	assert.Equal(t, 1, m.VertexCount())
}

func TestRemoveNilIsNoOp(t *testing.T) {
	m := NewMesh()
	assert.NotPanics(t, func() {
		m.RemoveVertex(nil)
		m.RemoveEdge(nil)
		m.RemoveFace(nil)
	})
}

func TestSwapRemoveArenaKeepsOthersIntact(t *testing.T) {
	m := NewMesh()
	v1 := m.AddVertex(0, 0, 0)
	v2 := m.AddVertex(1, 0, 0)
	v3 := m.AddVertex(2, 0, 0)

	m.RemoveVertex(v1)

	assert.Equal(t, 2, m.VertexCount())
	remaining := m.Vertices()
	assert.ElementsMatch(t, []*Vertex{v2, v3}, remaining)
}

func TestCascadeRemovalOnSeedMesh(t *testing.T) {
	m := Tetrahedron()
	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 6, m.EdgeCount())
	require.Equal(t, 4, m.FaceCount())

	v := m.Vertices()[0]
	m.RemoveVertex(v)

	assert.Equal(t, 3, m.VertexCount())
	// removing one vertex of a tetrahedron removes its 3 incident edges
	// and all 3 faces that used any of them.
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, 1, m.FaceCount())
	assert.Empty(t, CheckInvariants(m))
}

func TestMeshLoggerDefaultsWhenNil(t *testing.T) {
	m := NewMesh()
	assert.NotPanics(t, func() { m.SetLogger(nil) })
}
