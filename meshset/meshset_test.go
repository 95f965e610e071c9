package meshset

import (
	"sync"
	"testing"

	"github.com/sksmith/brep/brep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGet(t *testing.T) {
	r := New()
	m := brep.Tetrahedron()
	r.Put("t", m)

	got, ok := r.Get("t")
	require.True(t, ok)
	assert.Same(t, m, got)
}

func TestGetMissing(t *testing.T) {
	r := New()
	_, ok := r.Get("nope")
	assert.False(t, ok)

	_, err := r.MustGet("nope")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	r := New()
	r.Put("c", brep.Cube())
	r.Delete("c")

	_, ok := r.Get("c")
	assert.False(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "mesh"
			r.Put(name, brep.Tetrahedron())
			r.Get(name)
			r.Names()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, r.Len())
}
