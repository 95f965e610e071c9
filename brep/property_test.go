package brep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPropertyCascadeCorrectness is P7: after remove_vertex(v), no
// surviving edge has v as an endpoint, no surviving loop references a
// deleted edge, and no surviving face references a deleted loop.
func TestPropertyCascadeCorrectness(t *testing.T) {
	m := Icosahedron()
	victim := m.Vertices()[0]
	incidentEdges := make(map[*Edge]struct{})
	for _, e := range victim.NeighborEdges() {
		incidentEdges[e] = struct{}{}
	}
	incidentFaces := make(map[*Face]struct{})
	for _, f := range victim.NeighborFaces() {
		incidentFaces[f] = struct{}{}
	}

	m.RemoveVertex(victim)

	for _, e := range m.Edges() {
		assert.NotSame(t, victim, e.V1)
		assert.NotSame(t, victim, e.V2)
	}
	for _, f := range m.Faces() {
		_, wasIncident := incidentFaces[f]
		assert.False(t, wasIncident, "a face incident to the removed vertex survived")
		for _, e := range f.NeighborEdges() {
			_, wasDeleted := incidentEdges[e]
			assert.False(t, wasDeleted, "a surviving face references a deleted edge")
		}
	}
	assert.Empty(t, CheckInvariants(m))
}

// TestPropertyAttributeIndependence is P9: mutating one entity's
// attribute does not affect another's, and mutating a registered
// default after the fact does not retro-mutate already-created entities.
func TestPropertyAttributeIndependence(t *testing.T) {
	m := NewMesh()
	def := m.AddVertexAttribute(AttributeDef{Name: "w", Type: Float, Dimensions: 1, Default: FloatAttr(1)})

	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)

	a.Attrs["w"] = FloatAttr(99)
	assert.Equal(t, float32(1), b.Attrs["w"].Floats[0])

	// The returned AttributeDef's Default shares its backing array with
	// the registry's stored default, so this write changes the default
	// that later vertices receive. It must not retro-mutate b, whose
	// value was cloned when b was created.
	def.Default.Floats[0] = -1
	assert.Equal(t, float32(1), b.Attrs["w"].Floats[0])
}

// TestPropertyFindEdgeSoundAndComplete is P10.
func TestPropertyFindEdgeSoundAndComplete(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)
	c := m.AddVertex(0, 1, 0)
	m.AddEdge(a, b)

	if e := m.FindEdge(a, b); assert.NotNil(t, e) {
		assert.True(t, e.ContainsVertex(a))
		assert.True(t, e.ContainsVertex(b))
	}
	assert.Nil(t, m.FindEdge(a, c))
	assert.Nil(t, m.FindEdge(b, c))
}

// TestPropertyNoSelfEdges is P5.
func TestPropertyNoSelfEdges(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	assert.Panics(t, func() { m.AddEdge(a, a) })
}

// TestPropertyDiskClosureMatchesDegree is P1, exercised directly rather
// than only through CheckInvariants, to pin the exact "exactly deg(v)
// steps" wording.
func TestPropertyDiskClosureMatchesDegree(t *testing.T) {
	m := Octahedron()
	for _, v := range m.Vertices() {
		steps := 0
		start := v.edge
		cur := start
		for {
			steps++
			cur = cur.next(v)
			if cur == start {
				break
			}
		}
		assert.Equal(t, v.Degree(), steps)
	}
}
