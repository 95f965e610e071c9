package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCommandPrintsStats(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"seed", "T"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "vertices: 4")
	assert.Contains(t, buf.String(), "invariants: ok")
}

func TestSeedCommandRejectsUnknownSymbol(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"seed", "Z"})
	assert.Error(t, root.Execute())
}

func TestApplyCommandPrintsStats(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"apply", "dC"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "vertices: 6")
}
