// Package preview renders a resolved file list as a directory tree.
package preview

import (
	"path/filepath"
	"strings"

	"github.com/disiqueira/gotree/v3"
)

// Tree is a directory tree of file paths below a root.
type Tree struct {
	root string
	tree gotree.Tree
	dirs map[string]gotree.Tree
}

// New creates an empty tree for files below root.
func New(root string) *Tree {
	return &Tree{
		root: filepath.Clean(root),
		tree: gotree.New(filepath.Clean(root)),
		dirs: make(map[string]gotree.Tree),
	}
}

func (t *Tree) dir(rel string) gotree.Tree {
	if rel == "." || rel == "" {
		return t.tree
	}
	if d, ok := t.dirs[rel]; ok {
		return d
	}
	parent := t.dir(filepath.Dir(rel))
	d := parent.Add(filepath.Base(rel) + string(filepath.Separator))
	t.dirs[rel] = d
	return d
}

// Insert adds an absolute path. Paths outside the root keep their
// relative "../" form as a single label below the root.
func (t *Tree) Insert(path string) {
	rel, err := filepath.Rel(t.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		if err != nil {
			rel = path
		}
		t.tree.Add(rel)
		return
	}
	t.dir(filepath.Dir(rel)).Add(filepath.Base(rel))
}

// Render returns the tree as text.
func (t *Tree) Render() string {
	return t.tree.Print()
}

// Render builds a tree of paths below root in one step.
func Render(root string, paths []string) string {
	t := New(root)
	for _, p := range paths {
		t.Insert(p)
	}
	return t.Render()
}
