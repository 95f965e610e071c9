package brep

import "log"

// Mesh owns every Vertex, Edge, Loop, and Face it has constructed, plus
// one attribute registry per entity kind. A Mesh is not safe for
// concurrent use; callers needing several independently-owned meshes
// addressable from multiple goroutines should look at the meshset
// package instead of adding locking here.
type Mesh struct {
	vertices []*Vertex
	edges    []*Edge
	loops    []*Loop
	faces    []*Face

	vertexAttrs *attributeRegistry
	edgeAttrs   *attributeRegistry
	loopAttrs   *attributeRegistry
	faceAttrs   *attributeRegistry

	// logger receives diagnostics for recoverable anomalies (attribute
	// type drift caught by ensure). Defaults to log.Default().
	logger *log.Logger
}

// NewMesh returns an empty mesh ready for construction.
func NewMesh() *Mesh {
	return &Mesh{
		vertexAttrs: newAttributeRegistry("vertex"),
		edgeAttrs:   newAttributeRegistry("edge"),
		loopAttrs:   newAttributeRegistry("loop"),
		faceAttrs:   newAttributeRegistry("face"),
		logger:      log.Default(),
	}
}

// SetLogger overrides the logger used for attribute-drift diagnostics.
func (m *Mesh) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	m.logger = l
}

// VertexCount, EdgeCount, LoopCount, FaceCount report the mesh's current
// live entity counts.
func (m *Mesh) VertexCount() int { return len(m.vertices) }
func (m *Mesh) EdgeCount() int   { return len(m.edges) }
func (m *Mesh) LoopCount() int   { return len(m.loops) }
func (m *Mesh) FaceCount() int   { return len(m.faces) }

// Vertices, Edges, Faces return the mesh's live entities. The returned
// slices are owned by the caller (a fresh copy each call) so iterating
// while mutating the mesh is safe for the snapshot itself, though the
// entities it points at may already reflect the mutation.
func (m *Mesh) Vertices() []*Vertex { return append([]*Vertex(nil), m.vertices...) }
func (m *Mesh) Edges() []*Edge      { return append([]*Edge(nil), m.edges...) }
func (m *Mesh) Faces() []*Face      { return append([]*Face(nil), m.faces...) }

// AddVertex creates a new isolated vertex at the given position.
func (m *Mesh) AddVertex(x, y, z float64) *Vertex {
	v := &Vertex{Position: Vector3{X: x, Y: y, Z: z}, idx: len(m.vertices)}
	m.vertexAttrs.ensure(&v.Attrs, m.logger)
	m.vertices = append(m.vertices, v)
	return v
}

// spliceDisk inserts e into v's disk cycle. If v is isolated, e becomes
// a singleton cycle referencing itself on both sides and becomes v.edge.
// Otherwise e is inserted right after v.edge, and v.edge is left as it
// was.
func spliceDisk(v *Vertex, e *Edge) {
	if v.edge == nil {
		e.setNext(v, e)
		e.setPrev(v, e)
		v.edge = e
		return
	}
	head := v.edge
	next := head.next(v)
	e.setNext(v, next)
	e.setPrev(v, head)
	head.setNext(v, e)
	next.setPrev(v, e)
}

// unspliceDisk removes e from v's disk cycle, fixing up v.edge if e was
// the entry point. Leaves e's own next/prev pointers on the v side
// untouched (callers overwrite or discard e immediately after).
func unspliceDisk(v *Vertex, e *Edge) {
	next := e.next(v)
	if next == e {
		v.edge = nil
		return
	}
	prev := e.prev(v)
	prev.setNext(v, next)
	next.setPrev(v, prev)
	if v.edge == e {
		v.edge = next
	}
}

// FindEdge returns the edge between a and b, or nil if none exists. It
// walks both vertices' disk cycles in lockstep, one step at a time, and
// stops as soon as either side completes a full lap — an edge between a
// and b must appear in both disk cycles (invariant I1), so exhausting
// the shorter cycle without a match proves none exists. This bounds the
// walk to O(2*min(deg(a), deg(b))).
func (m *Mesh) FindEdge(a, b *Vertex) *Edge {
	if a == nil || b == nil || a == b {
		return nil
	}
	if a.edge == nil || b.edge == nil {
		return nil
	}
	startA, startB := a.edge, b.edge
	curA, curB := startA, startB
	for {
		if curA.ContainsVertex(b) {
			return curA
		}
		if curB.ContainsVertex(a) {
			return curB
		}
		curA = curA.next(a)
		curB = curB.next(b)
		if curA == startA || curB == startB {
			return nil
		}
	}
}

// AddEdge returns the existing edge between a and b if one already
// exists (AddEdge is idempotent), otherwise constructs and splices a
// new one. Panics if a and b are nil or identical.
func (m *Mesh) AddEdge(a, b *Vertex) *Edge {
	assertf(a != nil && b != nil, "AddEdge: endpoints must not be nil")
	assertf(a != b, "AddEdge: self-edges are not permitted")
	if existing := m.FindEdge(a, b); existing != nil {
		return existing
	}
	e := &Edge{V1: a, V2: b, idx: len(m.edges)}
	m.edgeAttrs.ensure(&e.Attrs, m.logger)
	spliceDisk(a, e)
	spliceDisk(b, e)
	m.edges = append(m.edges, e)
	return e
}

// spliceFaceCycle inserts l into f's face cycle between f.loop and
// f.loop.next, always promoting l to f.loop (new loops are appended
// immediately after the current head so the head slot always reflects
// the most recently added corner, and the cycle's next direction keeps
// walking forward through the vertex order AddFace was given).
func spliceFaceCycle(f *Face, l *Loop) {
	if f.loop == nil {
		l.next, l.prev = l, l
		f.loop = l
		return
	}
	head := f.loop
	next := head.next
	l.prev = head
	l.next = next
	head.next = l
	next.prev = l
	f.loop = l
}

// spliceRadialCycle inserts l into e's radial cycle between e.loop and
// e.loop.radialNext, always promoting l to e.loop for the same reason as
// spliceFaceCycle.
func spliceRadialCycle(e *Edge, l *Loop) {
	if e.loop == nil {
		l.radialNext, l.radialPrev = l, l
		e.loop = l
		return
	}
	head := e.loop
	next := head.radialNext
	l.radialPrev = head
	l.radialNext = next
	head.radialNext = l
	next.radialPrev = l
	e.loop = l
}

// AddFace constructs a new face bounded by verts, in the order given,
// wrapping around from the last vertex back to the first. Returns nil
// if verts is empty. Panics if any vertex is nil.
func (m *Mesh) AddFace(verts ...*Vertex) *Face {
	if len(verts) == 0 {
		return nil
	}
	for _, v := range verts {
		assertf(v != nil, "AddFace: vertex must not be nil")
	}

	n := len(verts)
	f := &Face{VertCount: n, idx: len(m.faces)}
	m.faceAttrs.ensure(&f.Attrs, m.logger)

	loops := make([]*Loop, n)
	for i, v := range verts {
		next := verts[(i+1)%n]
		e := m.AddEdge(v, next)
		l := &Loop{Vert: v, Edge: e, Face: f, idx: len(m.loops)}
		m.loopAttrs.ensure(&l.Attrs, m.logger)
		loops[i] = l
		m.loops = append(m.loops, l)
	}
	for _, l := range loops {
		spliceFaceCycle(f, l)
		spliceRadialCycle(l.Edge, l)
	}
	// f.loop now points at the last-spliced loop (loops[n-1]); rewind to
	// the first corner so iteration starts where the caller specified.
	f.loop = loops[0]

	m.faces = append(m.faces, f)
	return f
}

// RemoveFace detaches f from every edge it used and deletes it, along
// with its loops. Vertices and edges that f referenced survive,
// possibly becoming lower-degree or wireframe-only as a result.
func (m *Mesh) RemoveFace(f *Face) {
	if f == nil {
		return
	}
	if start := f.loop; start != nil {
		cur := start
		for {
			next := cur.next
			m.detachLoop(cur)
			if next == start {
				break
			}
			cur = next
		}
	}
	f.loop = nil
	m.removeFaceFromArena(f)
}

// detachLoop removes l from its edge's radial cycle, clears all four of
// l's cycle pointers (next/prev and radialNext/radialPrev), and deletes
// l from the mesh's loop arena. The caller (RemoveFace) captures l.next
// before calling it, since the whole face cycle is torn down together.
func (m *Mesh) detachLoop(l *Loop) {
	e := l.Edge

	if l.radialNext == l {
		e.loop = nil
	} else {
		l.radialPrev.radialNext = l.radialNext
		l.radialNext.radialPrev = l.radialPrev
		if e.loop == l {
			e.loop = l.radialNext
		}
	}
	l.next, l.prev, l.radialNext, l.radialPrev = nil, nil, nil, nil
	m.removeLoopFromArena(l)
}

// RemoveEdge detaches e from both endpoints' disk cycles and deletes
// it, cascading first to every face that still uses it.
func (m *Mesh) RemoveEdge(e *Edge) {
	if e == nil {
		return
	}
	for e.loop != nil {
		m.RemoveFace(e.loop.Face)
	}
	unspliceDisk(e.V1, e)
	unspliceDisk(e.V2, e)
	m.removeEdgeFromArena(e)
}

// RemoveVertex detaches v and deletes it, cascading first to every edge
// incident to it (which in turn cascades to every face using those
// edges).
func (m *Mesh) RemoveVertex(v *Vertex) {
	if v == nil {
		return
	}
	for v.edge != nil {
		m.RemoveEdge(v.edge)
	}
	m.removeVertexFromArena(v)
}

// --- swap-remove arena helpers -------------------------------------

func (m *Mesh) removeVertexFromArena(v *Vertex) {
	last := len(m.vertices) - 1
	i := v.idx
	m.vertices[i] = m.vertices[last]
	m.vertices[i].idx = i
	m.vertices[last] = nil
	m.vertices = m.vertices[:last]
	v.idx = -1
}

func (m *Mesh) removeEdgeFromArena(e *Edge) {
	last := len(m.edges) - 1
	i := e.idx
	m.edges[i] = m.edges[last]
	m.edges[i].idx = i
	m.edges[last] = nil
	m.edges = m.edges[:last]
	e.idx = -1
}

func (m *Mesh) removeLoopFromArena(l *Loop) {
	last := len(m.loops) - 1
	i := l.idx
	m.loops[i] = m.loops[last]
	m.loops[i].idx = i
	m.loops[last] = nil
	m.loops = m.loops[:last]
	l.idx = -1
}

func (m *Mesh) removeFaceFromArena(f *Face) {
	last := len(m.faces) - 1
	i := f.idx
	m.faces[i] = m.faces[last]
	m.faces[i].idx = i
	m.faces[last] = nil
	m.faces = m.faces[:last]
	f.idx = -1
}

// --- attribute registry wrappers ------------------------------------

// HasVertexAttribute reports whether name is registered for vertices.
func (m *Mesh) HasVertexAttribute(name string) bool { return m.vertexAttrs.has(name) }

// AddVertexAttribute registers def for vertices, back-filling its
// default onto every existing vertex. If def.Name is already
// registered, the existing definition is returned unmodified (see
// SPEC_FULL.md 9.5).
func (m *Mesh) AddVertexAttribute(def AttributeDef) AttributeDef {
	maps := make([]*map[string]AttrValue, len(m.vertices))
	for i, v := range m.vertices {
		maps[i] = &v.Attrs
	}
	return m.vertexAttrs.add(def, maps)
}

// HasEdgeAttribute reports whether name is registered for edges.
func (m *Mesh) HasEdgeAttribute(name string) bool { return m.edgeAttrs.has(name) }

// AddEdgeAttribute registers def for edges. See AddVertexAttribute.
func (m *Mesh) AddEdgeAttribute(def AttributeDef) AttributeDef {
	maps := make([]*map[string]AttrValue, len(m.edges))
	for i, e := range m.edges {
		maps[i] = &e.Attrs
	}
	return m.edgeAttrs.add(def, maps)
}

// HasLoopAttribute reports whether name is registered for loops.
func (m *Mesh) HasLoopAttribute(name string) bool { return m.loopAttrs.has(name) }

// AddLoopAttribute registers def for loops. See AddVertexAttribute.
func (m *Mesh) AddLoopAttribute(def AttributeDef) AttributeDef {
	maps := make([]*map[string]AttrValue, len(m.loops))
	for i, l := range m.loops {
		maps[i] = &l.Attrs
	}
	return m.loopAttrs.add(def, maps)
}

// HasFaceAttribute reports whether name is registered for faces.
func (m *Mesh) HasFaceAttribute(name string) bool { return m.faceAttrs.has(name) }

// AddFaceAttribute registers def for faces. See AddVertexAttribute.
func (m *Mesh) AddFaceAttribute(def AttributeDef) AttributeDef {
	maps := make([]*map[string]AttrValue, len(m.faces))
	for i, f := range m.faces {
		maps[i] = &f.Attrs
	}
	return m.faceAttrs.add(def, maps)
}
