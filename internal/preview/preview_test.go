package preview

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "proj")
	paths := []string{
		filepath.Join(root, "a.c"),
		filepath.Join(root, "sub", "b.c"),
		filepath.Join(root, "sub", "deep", "c.c"),
		filepath.Join(root, "sub", "d.c"),
	}

	out := Render(root, paths)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.Equal(t, root, lines[0])
	sep := string(filepath.Separator)
	for _, want := range []string{"a.c", "sub" + sep, "b.c", "deep" + sep, "c.c", "d.c"} {
		assert.Equal(t, 1, countSuffix(lines, " "+want), "entry %q", want)
	}
	// root + 6 entries; "sub/" appears once even though it holds three files.
	assert.Len(t, lines, 7)
}

func TestInsert_OutsideRoot(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "proj", "tools")
	tree := New(root)
	tree.Insert(filepath.Join(string(filepath.Separator), "proj", "src", "main.c"))

	assert.Contains(t, tree.Render(), filepath.Join("..", "src", "main.c"))
}

func TestRender_Empty(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "proj")
	assert.Equal(t, root, strings.TrimSpace(Render(root, nil)))
}

func countSuffix(lines []string, suffix string) int {
	n := 0
	for _, l := range lines {
		if strings.HasSuffix(l, suffix) {
			n++
		}
	}
	return n
}
