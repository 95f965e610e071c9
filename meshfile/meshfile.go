// Package meshfile defines a YAML mesh description format and a loader
// that builds a mesh by calling only brep's public constructors. This
// lives outside the brep package on purpose: brep's core has no file
// I/O, by design.
package meshfile

import (
	"fmt"
	"io"
	"log"

	"github.com/sksmith/brep/brep"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a mesh description.
type Document struct {
	Vertices   []VertexDoc    `yaml:"vertices"`
	Faces      [][]int        `yaml:"faces"`
	Attributes []AttributeDoc `yaml:"attributes,omitempty"`
}

// VertexDoc is one vertex's position.
type VertexDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// AttributeDoc declares one attribute registration to apply after the
// mesh is built from Vertices/Faces.
type AttributeDoc struct {
	Entity     string    `yaml:"entity"` // "vertex", "edge", "loop", "face"
	Name       string    `yaml:"name"`
	Type       string    `yaml:"type"` // "int" or "float"
	Dimensions int       `yaml:"dimensions"`
	Default    []float64 `yaml:"default"`
}

// LoadOptions configures LoadMesh.
type LoadOptions struct {
	logger      *log.Logger
	strictAttrs bool
}

// LoadOption is a functional option for LoadMesh, in the style of
// klotho's graph.Traits option functions.
type LoadOption func(*LoadOptions)

// WithLogger overrides the logger installed on the built mesh.
func WithLogger(l *log.Logger) LoadOption {
	return func(o *LoadOptions) { o.logger = l }
}

// WithStrictAttributes causes LoadMesh to reject unknown attribute
// "type" strings instead of skipping them with a warning.
func WithStrictAttributes() LoadOption {
	return func(o *LoadOptions) { o.strictAttrs = true }
}

// LoadMesh parses a YAML mesh description from r and builds a mesh from
// it using only brep's public constructors.
func LoadMesh(r io.Reader, opts ...LoadOption) (*brep.Mesh, error) {
	options := &LoadOptions{logger: log.Default()}
	for _, opt := range opts {
		opt(options)
	}

	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("meshfile: decoding document: %w", err)
	}

	m := brep.NewMesh()
	m.SetLogger(options.logger)

	verts := make([]*brep.Vertex, len(doc.Vertices))
	for i, vd := range doc.Vertices {
		verts[i] = m.AddVertex(vd.X, vd.Y, vd.Z)
	}

	for fi, face := range doc.Faces {
		corners := make([]*brep.Vertex, len(face))
		for i, idx := range face {
			if idx < 0 || idx >= len(verts) {
				return nil, fmt.Errorf("meshfile: face %d references out-of-range vertex index %d", fi, idx)
			}
			corners[i] = verts[idx]
		}
		m.AddFace(corners...)
	}

	for _, ad := range doc.Attributes {
		def, err := attributeDefFromDoc(ad)
		if err != nil {
			if options.strictAttrs {
				return nil, err
			}
			options.logger.Printf("meshfile: skipping attribute %q: %v", ad.Name, err)
			continue
		}
		switch ad.Entity {
		case "vertex":
			m.AddVertexAttribute(def)
		case "edge":
			m.AddEdgeAttribute(def)
		case "loop":
			m.AddLoopAttribute(def)
		case "face":
			m.AddFaceAttribute(def)
		default:
			if options.strictAttrs {
				return nil, fmt.Errorf("meshfile: unknown entity kind %q for attribute %q", ad.Entity, ad.Name)
			}
			options.logger.Printf("meshfile: skipping attribute %q: unknown entity kind %q", ad.Name, ad.Entity)
		}
	}

	return m, nil
}

func attributeDefFromDoc(ad AttributeDoc) (brep.AttributeDef, error) {
	switch ad.Type {
	case "int":
		ints := make([]int32, len(ad.Default))
		for i, f := range ad.Default {
			ints[i] = int32(f)
		}
		return brep.AttributeDef{Name: ad.Name, Type: brep.Int, Dimensions: ad.Dimensions, Default: brep.IntAttr(ints...)}, nil
	case "float":
		floats := make([]float32, len(ad.Default))
		for i, f := range ad.Default {
			floats[i] = float32(f)
		}
		return brep.AttributeDef{Name: ad.Name, Type: brep.Float, Dimensions: ad.Dimensions, Default: brep.FloatAttr(floats...)}, nil
	default:
		return brep.AttributeDef{}, fmt.Errorf("meshfile: unknown attribute type %q", ad.Type)
	}
}

// SaveMesh writes m out as a YAML mesh description. Attribute
// registrations are not round-tripped (the core does not expose a way
// to enumerate registered definitions independent of their entities),
// only vertex positions and face connectivity.
func SaveMesh(w io.Writer, m *brep.Mesh) error {
	verts := m.Vertices()
	index := make(map[*brep.Vertex]int, len(verts))
	doc := Document{Vertices: make([]VertexDoc, len(verts))}
	for i, v := range verts {
		index[v] = i
		doc.Vertices[i] = VertexDoc{X: v.Position.X, Y: v.Position.Y, Z: v.Position.Z}
	}
	for _, f := range m.Faces() {
		fv := f.NeighborVertices()
		idxs := make([]int, len(fv))
		for i, v := range fv {
			idxs[i] = index[v]
		}
		doc.Faces = append(doc.Faces, idxs)
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("meshfile: encoding document: %w", err)
	}
	return nil
}
