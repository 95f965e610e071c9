package brep

// Edge is an unordered pair of distinct endpoint vertices. It is a node
// in two disk cycles at once (one per endpoint) and, if used by any
// face, the head of a radial cycle of loops.
//
// The two endpoints play symmetric topological roles; next1/prev1 and
// next2/prev2 are asymmetric only in field name. Every disk-cycle walk
// must pick the (next, prev) pair by comparing the probing vertex's
// identity against V1/V2 — never by field index — since a caller cannot
// know in advance which slot "belongs" to the vertex it holds.
type Edge struct {
	V1, V2 *Vertex

	next1, prev1 *Edge // V1's disk-cycle neighbors
	next2, prev2 *Edge // V2's disk-cycle neighbors

	loop *Loop // entry point into the radial cycle; nil if wireframe

	// ID is user scratch space. The core never reads or assigns it.
	ID int
	// Attrs holds this edge's attribute values, created lazily.
	Attrs map[string]AttrValue

	idx int // position in mesh.edges, for swap-remove
}

// next returns e's successor in v's disk cycle.
func (e *Edge) next(v *Vertex) *Edge {
	assertf(e.ContainsVertex(v), "edge disk-cycle walk: vertex is not an endpoint of this edge")
	if v == e.V1 {
		return e.next1
	}
	return e.next2
}

// prev returns e's predecessor in v's disk cycle.
func (e *Edge) prev(v *Vertex) *Edge {
	assertf(e.ContainsVertex(v), "edge disk-cycle walk: vertex is not an endpoint of this edge")
	if v == e.V1 {
		return e.prev1
	}
	return e.prev2
}

func (e *Edge) setNext(v *Vertex, x *Edge) {
	if v == e.V1 {
		e.next1 = x
	} else {
		e.next2 = x
	}
}

func (e *Edge) setPrev(v *Vertex, x *Edge) {
	if v == e.V1 {
		e.prev1 = x
	} else {
		e.prev2 = x
	}
}

// ContainsVertex reports whether v is one of e's two endpoints.
func (e *Edge) ContainsVertex(v *Vertex) bool {
	return v == e.V1 || v == e.V2
}

// OtherVertex returns the endpoint of e that is not v.
func (e *Edge) OtherVertex(v *Vertex) *Vertex {
	assertf(e.ContainsVertex(v), "OtherVertex: vertex is not an endpoint of this edge")
	if v == e.V1 {
		return e.V2
	}
	return e.V1
}

// Center returns the midpoint of e's two endpoints.
func (e *Edge) Center() Vector3 {
	return e.V1.Position.Add(e.V2.Position).Scale(0.5)
}

// Length returns the Euclidean distance between e's endpoints.
func (e *Edge) Length() float64 {
	return e.V1.Position.Distance(e.V2.Position)
}

// NeighborFaces returns every face that uses e, in radial-cycle order.
// Empty if no face uses e.
func (e *Edge) NeighborFaces() []*Face {
	if e.loop == nil {
		return nil
	}
	out := make([]*Face, 0, 2)
	start := e.loop
	cur := start
	for {
		out = append(out, cur.Face)
		cur = cur.radialNext
		if cur == start {
			break
		}
	}
	return out
}

// RadialDegree returns the number of faces sharing e.
func (e *Edge) RadialDegree() int {
	return len(e.NeighborFaces())
}
