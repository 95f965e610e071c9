package brep

// Face is a polygon represented by its cycle of loops. VertCount is
// cached at construction time and is never recomputed: nothing in this
// package mutates a face's loop cycle in place after AddFace returns, so
// code that needs a face with a different corner count must build a new
// one rather than edit this one.
type Face struct {
	// ID is user scratch space. The core never reads or assigns it.
	ID int
	// VertCount is the number of corners, fixed at construction.
	VertCount int
	// Attrs holds this face's attribute values, created lazily.
	Attrs map[string]AttrValue

	loop *Loop // entry point into the face cycle; nil only mid-teardown
	idx  int   // position in mesh.faces, for swap-remove
}

// NeighborVertices returns the face's corner vertices in polygon order.
func (f *Face) NeighborVertices() []*Vertex {
	if f.loop == nil {
		return nil
	}
	out := make([]*Vertex, 0, f.VertCount)
	start := f.loop
	cur := start
	for {
		out = append(out, cur.Vert)
		cur = cur.next
		if cur == start {
			break
		}
	}
	return out
}

// NeighborEdges returns the face's boundary edges in polygon order. The
// result is index-aligned with NeighborVertices: edge i connects vertex
// i to vertex (i+1)%n.
func (f *Face) NeighborEdges() []*Edge {
	if f.loop == nil {
		return nil
	}
	out := make([]*Edge, 0, f.VertCount)
	start := f.loop
	cur := start
	for {
		out = append(out, cur.Edge)
		cur = cur.next
		if cur == start {
			break
		}
	}
	return out
}

// LoopOf returns the loop of f whose corner vertex is v, or nil if v is
// not a corner of f.
func (f *Face) LoopOf(v *Vertex) *Loop {
	if f.loop == nil {
		return nil
	}
	start := f.loop
	cur := start
	for {
		if cur.Vert == v {
			return cur
		}
		cur = cur.next
		if cur == start {
			return nil
		}
	}
}

// Center returns the arithmetic mean of f's corner vertex positions.
func (f *Face) Center() Vector3 {
	verts := f.NeighborVertices()
	if len(verts) == 0 {
		return Vector3{}
	}
	sum := Vector3{}
	for _, v := range verts {
		sum = sum.Add(v.Position)
	}
	return sum.Scale(1 / float64(len(verts)))
}

// Normal computes a face normal via Newell's method, robust to mild
// non-planarity. The zero vector is returned for degenerate faces (fewer
// than 3 corners, or corners that are collinear/coincident).
func (f *Face) Normal() Vector3 {
	verts := f.NeighborVertices()
	if len(verts) < 3 {
		return Vector3{}
	}
	n := len(verts)
	normal := Vector3{}
	for i := 0; i < n; i++ {
		a := verts[i].Position
		b := verts[(i+1)%n].Position
		normal.X += (a.Y - b.Y) * (a.Z + b.Z)
		normal.Y += (a.Z - b.Z) * (a.X + b.X)
		normal.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return normal.Normalize()
}
