package operators

import "github.com/sksmith/brep/brep"

// orderedFacesAroundVertex returns the faces using v, ordered so that
// consecutive entries share an edge incident to v. It walks the edges
// from orderedEdgesAroundVertex, so the face between two consecutive
// edges only needs a set-intersection, not a search.
func orderedFacesAroundVertex(v *brep.Vertex) []*brep.Face {
	edges := orderedEdgesAroundVertex(v)
	if len(edges) < 3 {
		return nil
	}
	n := len(edges)
	out := make([]*brep.Face, 0, n)
	var prev *brep.Face
	for i := 0; i < n; i++ {
		cur, next := edges[i], edges[(i+1)%n]
		shared := commonFace(cur, next, prev)
		if shared == nil {
			return nil
		}
		out = append(out, shared)
		prev = shared
	}
	return out
}

// orderedEdgesAroundVertex returns v's incident edges ordered so that
// consecutive entries share a face. brep's disk cycle keeps edges in
// insertion order, not in rotational order, so the disk-cycle edges are
// reordered here; an edge with no face shared with the previous one
// stays where the disk cycle put it.
func orderedEdgesAroundVertex(v *brep.Vertex) []*brep.Edge {
	edges := v.NeighborEdges()
	for i := 1; i < len(edges); i++ {
		for j := i; j < len(edges); j++ {
			if commonFace(edges[i-1], edges[j], nil) != nil {
				edges[i], edges[j] = edges[j], edges[i]
				break
			}
		}
	}
	return edges
}

// commonFace returns the face shared by both a and b's NeighborFaces,
// skipping exclude (used to avoid re-selecting the face from the
// previous wedge when a vertex has exactly 2 faces, which would
// otherwise alternate back and forth instead of progressing around).
func commonFace(a, b *brep.Edge, exclude *brep.Face) *brep.Face {
	bFaces := make(map[*brep.Face]struct{}, 2)
	for _, f := range b.NeighborFaces() {
		bFaces[f] = struct{}{}
	}
	for _, f := range a.NeighborFaces() {
		if f == exclude {
			continue
		}
		if _, ok := bFaces[f]; ok {
			return f
		}
	}
	// Fall back to allowing the excluded face, for the 2-face wedge case
	// where exclude legitimately recurs (e.g. a single fold of two
	// triangles sharing both a vertex-adjacent edges).
	for _, f := range a.NeighborFaces() {
		if _, ok := bFaces[f]; ok {
			return f
		}
	}
	return nil
}
