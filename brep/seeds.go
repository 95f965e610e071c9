package brep

import "math"

// Golden-ratio constants shared by Dodecahedron and Icosahedron.
const (
	goldenRatioBase    = 5
	goldenRatioDivisor = 2.0
)

// Tetrahedron returns a new mesh containing a regular tetrahedron
// centered at the origin.
func Tetrahedron() *Mesh {
	m := NewMesh()
	a := 1.0 / math.Sqrt(3)
	v := [4]*Vertex{
		m.AddVertex(a, a, a),
		m.AddVertex(a, -a, -a),
		m.AddVertex(-a, a, -a),
		m.AddVertex(-a, -a, a),
	}
	m.AddFace(v[0], v[1], v[2])
	m.AddFace(v[0], v[1], v[3])
	m.AddFace(v[0], v[2], v[3])
	m.AddFace(v[1], v[2], v[3])
	return m
}

// Cube returns a new mesh containing a cube centered at the origin.
func Cube() *Mesh {
	m := NewMesh()
	v := [8]*Vertex{
		m.AddVertex(1, 1, 1),
		m.AddVertex(1, 1, -1),
		m.AddVertex(1, -1, 1),
		m.AddVertex(1, -1, -1),
		m.AddVertex(-1, 1, 1),
		m.AddVertex(-1, 1, -1),
		m.AddVertex(-1, -1, 1),
		m.AddVertex(-1, -1, -1),
	}
	m.AddFace(v[0], v[2], v[3], v[1])
	m.AddFace(v[4], v[5], v[7], v[6])
	m.AddFace(v[0], v[1], v[5], v[4])
	m.AddFace(v[2], v[6], v[7], v[3])
	m.AddFace(v[0], v[4], v[6], v[2])
	m.AddFace(v[1], v[3], v[7], v[5])
	return m
}

// Octahedron returns a new mesh containing an octahedron centered at
// the origin.
func Octahedron() *Mesh {
	m := NewMesh()
	v := [6]*Vertex{
		m.AddVertex(1, 0, 0),
		m.AddVertex(-1, 0, 0),
		m.AddVertex(0, 1, 0),
		m.AddVertex(0, -1, 0),
		m.AddVertex(0, 0, 1),
		m.AddVertex(0, 0, -1),
	}
	m.AddFace(v[0], v[2], v[4])
	m.AddFace(v[0], v[4], v[3])
	m.AddFace(v[0], v[3], v[5])
	m.AddFace(v[0], v[5], v[2])
	m.AddFace(v[1], v[4], v[2])
	m.AddFace(v[1], v[3], v[4])
	m.AddFace(v[1], v[5], v[3])
	m.AddFace(v[1], v[2], v[5])
	return m
}

// Dodecahedron returns a new mesh containing a regular dodecahedron
// centered at the origin.
func Dodecahedron() *Mesh {
	m := NewMesh()
	phi := (1.0 + math.Sqrt(goldenRatioBase)) / goldenRatioDivisor
	invPhi := 1.0 / phi

	v := [20]*Vertex{
		m.AddVertex(1, 1, 1),
		m.AddVertex(1, 1, -1),
		m.AddVertex(1, -1, 1),
		m.AddVertex(1, -1, -1),
		m.AddVertex(-1, 1, 1),
		m.AddVertex(-1, 1, -1),
		m.AddVertex(-1, -1, 1),
		m.AddVertex(-1, -1, -1),

		m.AddVertex(0, phi, invPhi),
		m.AddVertex(0, phi, -invPhi),
		m.AddVertex(0, -phi, invPhi),
		m.AddVertex(0, -phi, -invPhi),

		m.AddVertex(invPhi, 0, phi),
		m.AddVertex(invPhi, 0, -phi),
		m.AddVertex(-invPhi, 0, phi),
		m.AddVertex(-invPhi, 0, -phi),

		m.AddVertex(phi, invPhi, 0),
		m.AddVertex(phi, -invPhi, 0),
		m.AddVertex(-phi, invPhi, 0),
		m.AddVertex(-phi, -invPhi, 0),
	}

	m.AddFace(v[0], v[8], v[4], v[14], v[12])
	m.AddFace(v[0], v[12], v[2], v[17], v[16])
	m.AddFace(v[0], v[16], v[1], v[9], v[8])
	m.AddFace(v[1], v[16], v[17], v[3], v[13])
	m.AddFace(v[1], v[13], v[15], v[5], v[9])
	m.AddFace(v[2], v[12], v[14], v[6], v[10])
	m.AddFace(v[2], v[10], v[11], v[3], v[17])
	m.AddFace(v[3], v[11], v[7], v[15], v[13])
	m.AddFace(v[4], v[8], v[9], v[5], v[18])
	m.AddFace(v[4], v[18], v[19], v[6], v[14])
	m.AddFace(v[5], v[15], v[7], v[19], v[18])
	m.AddFace(v[6], v[19], v[7], v[11], v[10])
	return m
}

// Icosahedron returns a new mesh containing a regular icosahedron
// centered at the origin.
func Icosahedron() *Mesh {
	m := NewMesh()
	phi := (1.0 + math.Sqrt(goldenRatioBase)) / goldenRatioDivisor

	v := [12]*Vertex{
		m.AddVertex(0, 1, phi),
		m.AddVertex(0, 1, -phi),
		m.AddVertex(0, -1, phi),
		m.AddVertex(0, -1, -phi),

		m.AddVertex(1, phi, 0),
		m.AddVertex(1, -phi, 0),
		m.AddVertex(-1, phi, 0),
		m.AddVertex(-1, -phi, 0),

		m.AddVertex(phi, 0, 1),
		m.AddVertex(phi, 0, -1),
		m.AddVertex(-phi, 0, 1),
		m.AddVertex(-phi, 0, -1),
	}

	m.AddFace(v[0], v[2], v[8])
	m.AddFace(v[0], v[8], v[4])
	m.AddFace(v[0], v[4], v[6])
	m.AddFace(v[0], v[6], v[10])
	m.AddFace(v[0], v[10], v[2])

	m.AddFace(v[3], v[1], v[9])
	m.AddFace(v[3], v[9], v[5])
	m.AddFace(v[3], v[5], v[7])
	m.AddFace(v[3], v[7], v[11])
	m.AddFace(v[3], v[11], v[1])

	m.AddFace(v[2], v[10], v[7])
	m.AddFace(v[2], v[7], v[5])
	m.AddFace(v[2], v[5], v[8])

	m.AddFace(v[8], v[5], v[9])
	m.AddFace(v[8], v[9], v[4])

	m.AddFace(v[4], v[9], v[1])
	m.AddFace(v[4], v[1], v[6])

	m.AddFace(v[6], v[1], v[11])
	m.AddFace(v[6], v[11], v[10])

	m.AddFace(v[10], v[11], v[7])
	return m
}

// GetSeed returns the named Platonic seed mesh ("T", "C", "O", "D",
// "I"), or nil if symbol is unrecognized.
func GetSeed(symbol string) *Mesh {
	switch symbol {
	case "T":
		return Tetrahedron()
	case "C":
		return Cube()
	case "O":
		return Octahedron()
	case "D":
		return Dodecahedron()
	case "I":
		return Icosahedron()
	default:
		return nil
	}
}
