package brep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFaceTriangle(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)
	c := m.AddVertex(0, 1, 0)

	f := m.AddFace(a, b, c)
	require.NotNil(t, f)

	assert.Equal(t, 3, f.VertCount)
	assert.Equal(t, []*Vertex{a, b, c}, f.NeighborVertices())
	assert.Len(t, f.NeighborEdges(), 3)
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, 1, m.FaceCount())
	assert.Equal(t, 3, m.LoopCount())
}

func TestAddFaceEmptyReturnsNil(t *testing.T) {
	m := NewMesh()
	assert.Nil(t, m.AddFace())
}

func TestAddFaceNilVertexPanics(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)

	assert.Panics(t, func() { m.AddFace(a, b, nil) })
}

func TestAddFaceReusesExistingEdges(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)
	c := m.AddVertex(0, 1, 0)

	shared := m.AddEdge(a, b)
	m.AddFace(a, b, c)

	assert.Same(t, shared, m.FindEdge(a, b))
	assert.Equal(t, 3, m.EdgeCount())
}

func TestFaceLoopOf(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)
	c := m.AddVertex(0, 1, 0)
	d := m.AddVertex(1, 1, 0)

	f := m.AddFace(a, b, d, c)

	lA := f.LoopOf(a)
	require.NotNil(t, lA)
	assert.Equal(t, a, lA.Vert)
	assert.Equal(t, f, lA.Face)

	assert.Nil(t, f.LoopOf(nil))

	other := m.AddVertex(9, 9, 9)
	assert.Nil(t, f.LoopOf(other))
}

func TestFaceCenter(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(2, 0, 0)
	c := m.AddVertex(0, 2, 0)

	f := m.AddFace(a, b, c)
	center := f.Center()
	assert.InDelta(t, 2.0/3.0, center.X, 1e-9)
	assert.InDelta(t, 2.0/3.0, center.Y, 1e-9)
	assert.InDelta(t, 0.0, center.Z, 1e-9)
}

func TestFaceNormalAxisAligned(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)
	c := m.AddVertex(1, 1, 0)
	d := m.AddVertex(0, 1, 0)

	f := m.AddFace(a, b, c, d)
	n := f.Normal()
	assert.InDelta(t, 0.0, n.X, 1e-9)
	assert.InDelta(t, 0.0, n.Y, 1e-9)
	assert.InDelta(t, 1.0, n.Z, 1e-9)
}
