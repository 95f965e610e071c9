package brep

// Vertex is a point in 3-space and the anchor of a disk cycle of
// incident edges.
type Vertex struct {
	// Position is the vertex's location.
	Position Vector3
	// ID is user scratch space. The core never reads or assigns it.
	ID int

	// Attrs holds this vertex's attribute values, created lazily on
	// first need (either the first registered vertex attribute, or an
	// ad-hoc value set directly by caller code).
	Attrs map[string]AttrValue

	edge *Edge // entry point into the disk cycle; nil if isolated
	idx  int   // position in mesh.vertices, for swap-remove
}

// NeighborEdges returns every edge incident to v, in disk-cycle order
// starting from v.edge. The result is empty if v is isolated.
func (v *Vertex) NeighborEdges() []*Edge {
	if v.edge == nil {
		return nil
	}
	out := make([]*Edge, 0, 4)
	start := v.edge
	cur := start
	for {
		out = append(out, cur)
		cur = cur.next(v)
		if cur == start {
			break
		}
	}
	return out
}

// NeighborFaces returns the set of faces that use any edge incident to
// v, each appearing once regardless of how many incident edges or loops
// reference it.
func (v *Vertex) NeighborFaces() []*Face {
	var out []*Face
	seen := make(map[*Face]struct{})
	for _, e := range v.NeighborEdges() {
		for _, f := range e.NeighborFaces() {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}

// Degree returns the number of edges incident to v.
func (v *Vertex) Degree() int {
	return len(v.NeighborEdges())
}

// Isolated reports whether v has no incident edges.
func (v *Vertex) Isolated() bool {
	return v.edge == nil
}
