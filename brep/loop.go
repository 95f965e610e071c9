package brep

// Loop is a face-corner: the (vertex, edge, face) triple that links one
// polygon corner of one face into place. A loop is a node in exactly two
// cycles: the face cycle of its Face (ordered around the polygon) and
// the radial cycle of its Edge (the unordered set of face-usages of that
// edge).
type Loop struct {
	Vert *Vertex
	Edge *Edge
	Face *Face

	next, prev             *Loop // face-cycle neighbors
	radialNext, radialPrev *Loop // radial-cycle neighbors

	// Attrs holds this loop's attribute values, created lazily. Loop
	// attributes are the natural home for per-corner data that differs
	// between the faces meeting at a shared vertex or edge (UVs, vertex
	// normals under hard edges, and so on).
	Attrs map[string]AttrValue

	idx int // position in mesh.loops, for swap-remove
}
