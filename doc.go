// Package brep implements a non-manifold boundary representation for
// polygonal 3D meshes, built for procedural construction and in-place
// editing rather than for rendering.
//
// Topology is stored as a web of cyclic doubly-linked lists threaded
// through the incident entities: a disk cycle of edges around each
// vertex, a radial cycle of face-corners (loops) around each edge, and a
// face cycle of loops around each face. Edges may be shared by any
// number of faces; vertices may carry duplicate positions; nothing here
// enforces manifoldness.
//
// # Basic usage
//
//	m := brep.NewMesh()
//	v0 := m.AddVertex(0, 0, 0)
//	v1 := m.AddVertex(1, 0, 0)
//	v2 := m.AddVertex(0, 1, 0)
//	f := m.AddFace(v0, v1, v2)
//
// # Attributes
//
// Each entity kind (Vertex, Edge, Loop, Face) has its own attribute
// registry. Declaring an attribute back-fills a deep copy of its default
// value onto every existing entity of that kind, and every newly
// constructed entity picks up the default automatically:
//
//	m.AddVertexAttribute(brep.AttributeDef{
//		Name: "uv", Type: brep.Float, Dimensions: 2,
//		Default: brep.FloatAttr(0, 0),
//	})
//
// # Cascade removal
//
// Removing a vertex removes its edges, which removes the faces that use
// them, unsplicing every surviving cycle along the way:
//
//	m.RemoveVertex(v0)
//
// # Scope
//
// This package is the topology core only: no rendering, no file I/O, no
// concurrent mutation of a single Mesh, no manifold enforcement. Higher
// level mesh operators (subdivision, dual/ambo/truncate-style
// transforms, mesh-to-mesh merges) are external collaborators that
// consume only the exported API — see the sibling operators package for
// a concrete instance of that boundary.
package brep
