package operators

import "github.com/sksmith/brep/brep"

// OrthoOp is join(join(m)), i.e. ambo(dual(ambo(dual(m)))).
type OrthoOp struct{}

func (OrthoOp) Symbol() string { return "o" }
func (OrthoOp) Name() string   { return "ortho" }
func (OrthoOp) Apply(m *brep.Mesh) *brep.Mesh {
	return Ortho(m)
}

// Ortho is OrthoOp.Apply as a plain function.
func Ortho(m *brep.Mesh) *brep.Mesh {
	return Join(Join(m))
}

// ExpandOp is ambo(ambo(m)): separates every face and edge.
type ExpandOp struct{}

func (ExpandOp) Symbol() string { return "e" }
func (ExpandOp) Name() string   { return "expand" }
func (ExpandOp) Apply(m *brep.Mesh) *brep.Mesh {
	return Expand(m)
}

// Expand is ExpandOp.Apply as a plain function.
func Expand(m *brep.Mesh) *brep.Mesh {
	return Ambo(Ambo(m))
}

// GyroOp is dual(ambo(m)).
type GyroOp struct{}

func (GyroOp) Symbol() string { return "g" }
func (GyroOp) Name() string   { return "gyro" }
func (GyroOp) Apply(m *brep.Mesh) *brep.Mesh {
	return Gyro(m)
}

// Gyro is GyroOp.Apply as a plain function.
func Gyro(m *brep.Mesh) *brep.Mesh {
	return Dual(Ambo(m))
}

// SnubOp is dual(gyro(m)).
type SnubOp struct{}

func (SnubOp) Symbol() string { return "s" }
func (SnubOp) Name() string   { return "snub" }
func (SnubOp) Apply(m *brep.Mesh) *brep.Mesh {
	return Snub(m)
}

// Snub is SnubOp.Apply as a plain function.
func Snub(m *brep.Mesh) *brep.Mesh {
	return Dual(Gyro(m))
}
