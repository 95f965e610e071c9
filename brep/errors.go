package brep

import "fmt"

// assertf panics with a formatted message when cond is false. It is the
// mechanism behind every programmer-contract violation the core
// recognizes: a self-edge, a nil vertex passed to AddFace, a disk/radial
// walk landing on an entity that doesn't actually contain the vertex it
// was asked about, or any other internal invariant the core can cheaply
// check while it already holds the relevant pointers. These are bugs in
// the caller or in the core itself, not recoverable conditions — there
// is deliberately no error return for them.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
