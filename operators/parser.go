package operators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sksmith/brep/brep"
)

// Static errors for err113 compliance.
var (
	ErrEmptyNotation    = errors.New("empty notation string")
	ErrNoSeedMesh       = errors.New("no seed mesh found in notation")
	ErrUnknownSeedMesh  = errors.New("unknown seed mesh")
	ErrUnknownOperation = errors.New("unknown operation")
)

// Parser evaluates Conway-notation strings ("tI", "daC", ...) against
// the seed/operator catalog.
type Parser struct {
	operations map[string]Operation
}

// NewParser returns a parser with every built-in operator registered.
func NewParser() *Parser {
	p := &Parser{operations: make(map[string]Operation)}
	p.operations["d"] = DualOp{}
	p.operations["a"] = AmboOp{}
	p.operations["t"] = TruncateOp{}
	p.operations["k"] = KisOp{}
	p.operations["j"] = JoinOp{}
	p.operations["o"] = OrthoOp{}
	p.operations["e"] = ExpandOp{}
	p.operations["g"] = GyroOp{}
	p.operations["s"] = SnubOp{}
	return p
}

// Parse evaluates notation left-to-right to find a seed symbol, then
// applies the collected operator symbols right-to-left (the rightmost
// operator, the one closest to the seed letter, runs first) — matching
// the conventional reading of Conway notation ("tC" means "truncate the
// cube", i.e. apply truncate after identifying C as the seed).
func (p *Parser) Parse(notation string) (*brep.Mesh, error) {
	notation = strings.TrimSpace(notation)
	if notation == "" {
		return nil, ErrEmptyNotation
	}

	var seed *brep.Mesh
	var ops []Operation

	for i, char := range notation {
		symbol := string(char)

		if seed == nil {
			if s := brep.GetSeed(symbol); s != nil {
				seed = s
				continue
			}
		}

		if op, ok := p.operations[symbol]; ok {
			ops = append(ops, op)
			continue
		}

		if seed == nil && i == len(notation)-1 {
			s := brep.GetSeed(symbol)
			if s == nil {
				return nil, fmt.Errorf("%w: %s", ErrUnknownSeedMesh, symbol)
			}
			seed = s
			continue
		}

		return nil, fmt.Errorf("%w: %s at position %d", ErrUnknownOperation, symbol, i)
	}

	if seed == nil {
		return nil, ErrNoSeedMesh
	}

	result := seed
	for i := len(ops) - 1; i >= 0; i-- {
		result = ops[i].Apply(result)
	}
	return result, nil
}

// Validate reports whether notation parses without error.
func (p *Parser) Validate(notation string) error {
	_, err := p.Parse(notation)
	return err
}

// GetAvailableOperations returns symbol -> name for every registered
// operator.
func (p *Parser) GetAvailableOperations() map[string]string {
	out := make(map[string]string, len(p.operations))
	for symbol, op := range p.operations {
		out[symbol] = op.Name()
	}
	return out
}

// GetAvailableSeeds returns symbol -> name for every built-in seed.
func (p *Parser) GetAvailableSeeds() map[string]string {
	return map[string]string{
		"T": "Tetrahedron",
		"C": "Cube",
		"O": "Octahedron",
		"D": "Dodecahedron",
		"I": "Icosahedron",
	}
}

// Parse evaluates notation with a fresh default parser.
func Parse(notation string) (*brep.Mesh, error) {
	return NewParser().Parse(notation)
}

// MustParse is like Parse but panics on error.
func MustParse(notation string) *brep.Mesh {
	m, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return m
}
