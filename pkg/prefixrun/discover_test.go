package prefixrun

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0o644))
}

func names(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Name
	}
	return out
}

func TestDiscover_NumericOrder(t *testing.T) {
	dir := t.TempDir()
	// Created out of order on purpose; lexicographic listing would put
	// "10-c.R" before "2-b.py".
	touch(t, dir, "10-c.R")
	touch(t, dir, "2-b.py")
	touch(t, dir, "1-a.sh")

	steps, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"1-a.sh", "2-b.py", "10-c.R"}, names(steps))
	assert.Equal(t, []int{1, 2, 10}, []int{steps[0].Order, steps[1].Order, steps[2].Order})
}

func TestDiscover_FiltersUnprefixed(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "1-transfer_data.sh")
	touch(t, dir, "myproject.py")
	touch(t, dir, "random.txt")
	touch(t, dir, "image.jpeg")

	steps, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"1-transfer_data.sh"}, names(steps))
}

func TestDiscover_ExcludesDirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "1-a.sh")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2-subdir"), 0o755))
	touch(t, filepath.Join(dir, "2-subdir"), "3-nested.py")

	steps, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"1-a.sh"}, names(steps), "directories and nested files excluded")
}

func TestDiscover_LeadingZerosAndTies(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "2-y.py")
	touch(t, dir, "02-x.py")
	touch(t, dir, "1-a.sh")

	steps, err := Discover(dir)
	require.NoError(t, err)
	// "02-x.py" and "2-y.py" both parse as 2; the tie breaks
	// lexicographically by filename.
	assert.Equal(t, []string{"1-a.sh", "02-x.py", "2-y.py"}, names(steps))
	assert.Equal(t, 2, steps[1].Order)
	assert.Equal(t, 2, steps[2].Order)
}

func TestDiscover_Separators(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "1-dash.sh")
	touch(t, dir, "2_underscore.py")
	touch(t, dir, "3.dot.R")

	steps, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"1-dash.sh", "2_underscore.py", "3.dot.R"}, names(steps))
}

func TestDiscover_EmptyDir(t *testing.T) {
	steps, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discover steps")
}

func TestDiscover_Deterministic(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"3-c.R", "1-a.sh", "2-b.py", "02-b2.py", "10-j.hql"} {
		touch(t, dir, name)
	}

	first, err := Discover(dir)
	require.NoError(t, err)
	second, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
