package brep

import (
	"fmt"
	"log"
	"math"
)

// BaseType is the scalar kind backing an attribute value.
type BaseType int

const (
	// Int values are arrays of 32-bit signed integers.
	Int BaseType = iota
	// Float values are arrays of IEEE-754 32-bit floats.
	Float
)

func (t BaseType) String() string {
	switch t {
	case Int:
		return "Int"
	case Float:
		return "Float"
	default:
		return fmt.Sprintf("BaseType(%d)", int(t))
	}
}

// AttrValue is a flat, fixed-dimension array of either ints or floats,
// tagged by BaseType. It is the value half of an (name -> AttrValue)
// entry on an entity's attribute map.
type AttrValue struct {
	Type   BaseType
	Ints   []int32
	Floats []float32
}

// IntAttr builds an Int-typed attribute value.
func IntAttr(values ...int32) AttrValue {
	return AttrValue{Type: Int, Ints: append([]int32(nil), values...)}
}

// FloatAttr builds a Float-typed attribute value.
func FloatAttr(values ...float32) AttrValue {
	return AttrValue{Type: Float, Floats: append([]float32(nil), values...)}
}

// Dimensions reports the element count of the value, regardless of type.
func (a AttrValue) Dimensions() int {
	if a.Type == Int {
		return len(a.Ints)
	}
	return len(a.Floats)
}

// Matches reports whether a has the given base type and dimension.
func (a AttrValue) Matches(t BaseType, dims int) bool {
	return a.Type == t && a.Dimensions() == dims
}

// Clone returns a deep copy of a; mutating the returned value never
// affects a, and vice versa.
func (a AttrValue) Clone() AttrValue {
	out := AttrValue{Type: a.Type}
	if a.Type == Int {
		out.Ints = append([]int32(nil), a.Ints...)
	} else {
		out.Floats = append([]float32(nil), a.Floats...)
	}
	return out
}

// Distance returns the Euclidean distance between a and b, treating each
// as a point in R^dimensions. If the two values disagree on base type or
// dimension, the distance is +Inf.
func (a AttrValue) Distance(b AttrValue) float64 {
	if a.Type != b.Type || a.Dimensions() != b.Dimensions() {
		return math.Inf(1)
	}
	sumSq := 0.0
	if a.Type == Int {
		for i := range a.Ints {
			d := float64(a.Ints[i] - b.Ints[i])
			sumSq += d * d
		}
	} else {
		for i := range a.Floats {
			d := float64(a.Floats[i] - b.Floats[i])
			sumSq += d * d
		}
	}
	return math.Sqrt(sumSq)
}

// AttributeDef names a registered attribute on one entity kind: its base
// type, its fixed dimension count, and the default value installed on
// every entity that doesn't already carry a conforming value under Name.
type AttributeDef struct {
	Name       string
	Type       BaseType
	Dimensions int
	Default    AttrValue
}

// attributeRegistry is the per-kind ordered list of attribute
// definitions shared by Vertex, Edge, Loop, and Face. The four public
// HasXAttribute/AddXAttribute method families on *Mesh are thin,
// kind-specific wrappers around one of these.
type attributeRegistry struct {
	kind string // used only in diagnostic messages ("vertex", "edge", ...)
	defs []AttributeDef
}

func newAttributeRegistry(kind string) *attributeRegistry {
	return &attributeRegistry{kind: kind}
}

func (r *attributeRegistry) has(name string) bool {
	for _, d := range r.defs {
		if d.Name == name {
			return true
		}
	}
	return false
}

func (r *attributeRegistry) find(name string) (AttributeDef, bool) {
	for _, d := range r.defs {
		if d.Name == name {
			return d, true
		}
	}
	return AttributeDef{}, false
}

// add registers def and back-fills its default onto every already-live
// attribute map in entities (the caller passes the live entity maps in
// entityMaps so this stays independent of the concrete entity type). If
// def.Name is already registered, the prior registration is returned
// unmodified and nothing else happens — this mirrors the upstream
// library's documented "known quirk" rather than silently overwriting
// an existing default out from under live entities.
func (r *attributeRegistry) add(def AttributeDef, entityMaps []*map[string]AttrValue) AttributeDef {
	if existing, ok := r.find(def.Name); ok {
		return existing
	}
	r.defs = append(r.defs, def)
	for _, m := range entityMaps {
		installDefault(m, def)
	}
	return def
}

func installDefault(m *map[string]AttrValue, def AttributeDef) {
	if *m == nil {
		*m = make(map[string]AttrValue, 1)
	}
	(*m)[def.Name] = def.Default.Clone()
}

// ensure installs a deep copy of every registered default onto m for
// names absent from m, and repairs any present-but-mismatched value by
// logging a diagnostic and overwriting it with a fresh default copy.
// Called once at entity construction and available to callers wanting
// to re-validate an entity whose attribute map was built or edited
// ad-hoc.
func (r *attributeRegistry) ensure(m *map[string]AttrValue, logger *log.Logger) {
	if len(r.defs) == 0 {
		return
	}
	if *m == nil {
		*m = make(map[string]AttrValue, len(r.defs))
	}
	for _, def := range r.defs {
		cur, present := (*m)[def.Name]
		if !present {
			(*m)[def.Name] = def.Default.Clone()
			continue
		}
		if !cur.Matches(def.Type, def.Dimensions) {
			logger.Printf("brep: %s attribute %q has type %s/dim %d, expected %s/dim %d; resetting to default",
				r.kind, def.Name, cur.Type, cur.Dimensions(), def.Type, def.Dimensions)
			(*m)[def.Name] = def.Default.Clone()
		}
	}
}
