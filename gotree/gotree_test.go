package gotree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	root := New("root")
	a := root.Add("a")
	a.Add("a1")
	a.Add("a2")
	b := New("b")
	b.Add("b1\nmore")
	root.AddTree(b)

	assert.Equal(t, `root
├── a
│   ├── a1
│   └── a2
└── b
    └── b1
        more
`, root.Print())
}

func TestPrintLeaf(t *testing.T) {
	leaf := New("leaf")
	assert.Empty(t, leaf.Items())
	assert.Equal(t, "leaf\n", leaf.Print())
}
