package labels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionkit/yolotools/internal/errs"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestResolveLabelsDir_Override(t *testing.T) {
	root := t.TempDir()
	override := filepath.Join(root, "my-labels")
	require.NoError(t, os.MkdirAll(override, 0o755))

	got, err := ResolveLabelsDir(root, override)
	require.NoError(t, err)
	assert.Equal(t, override, got)
}

func TestResolveLabelsDir_MissingOverrideIsFatal(t *testing.T) {
	_, err := ResolveLabelsDir(t.TempDir(), "/does/not/exist")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
	assert.True(t, errs.Fatal(err))
}

func TestResolveLabelsDir_DirectChild(t *testing.T) {
	root := t.TempDir()
	labels := filepath.Join(root, "labels")
	require.NoError(t, os.MkdirAll(labels, 0o755))

	got, err := ResolveLabelsDir(root, "")
	require.NoError(t, err)
	assert.Equal(t, labels, got)
}

func TestResolveLabelsDir_NestedLexicographicFirst(t *testing.T) {
	root := t.TempDir()
	// Two nested candidates: the lexicographically first parent wins.
	first := filepath.Join(root, "exp1", "labels")
	second := filepath.Join(root, "exp2", "labels")
	require.NoError(t, os.MkdirAll(first, 0o755))
	require.NoError(t, os.MkdirAll(second, 0o755))

	got, err := ResolveLabelsDir(root, "")
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestResolveLabelsDir_NoneFound(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0o755))

	_, err := ResolveLabelsDir(root, "")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestFindImageForLabel_RootCandidateExtensionOrder(t *testing.T) {
	root := t.TempDir()
	label := filepath.Join(root, "labels", "frame.txt")
	touch(t, label)
	// .jpg outranks .png in the fixed extension order.
	touch(t, filepath.Join(root, "frame.png"))
	touch(t, filepath.Join(root, "frame.jpg"))

	got, err := FindImageForLabel(root, label)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "frame.jpg"), got)
}

func TestFindImageForLabel_GrandparentOfLabelsDir(t *testing.T) {
	root := t.TempDir()
	label := filepath.Join(root, "runs", "exp", "labels", "shot.txt")
	touch(t, label)
	touch(t, filepath.Join(root, "runs", "exp", "shot.jpeg"))

	got, err := FindImageForLabel(root, label)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "runs", "exp", "shot.jpeg"), got)
}

func TestFindImageForLabel_RecursiveFallbackPrefersExtensionOrder(t *testing.T) {
	root := t.TempDir()
	label := filepath.Join(root, "labels", "deep.txt")
	touch(t, label)
	// Both candidates live in subdirectories that the direct lookups
	// never see. zz/.jpg must still beat aa/.png.
	touch(t, filepath.Join(root, "aa", "deep.png"))
	touch(t, filepath.Join(root, "zz", "deep.jpg"))

	got, err := FindImageForLabel(root, label)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "zz", "deep.jpg"), got)
}

func TestFindImageForLabel_MissReturnsResolutionError(t *testing.T) {
	root := t.TempDir()
	label := filepath.Join(root, "labels", "ghost.txt")
	touch(t, label)

	_, err := FindImageForLabel(root, label)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindResolution))
	// Resolution misses are skipped per file, never fatal.
	assert.False(t, errs.Fatal(err))
}

func TestListLabelFiles_SortedRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.txt"))
	touch(t, filepath.Join(dir, "sub", "a.txt"))
	touch(t, filepath.Join(dir, "a.txt"))
	touch(t, filepath.Join(dir, "notes.md"))
	touch(t, filepath.Join(dir, "UPPER.TXT"))

	got, err := ListLabelFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "sub", "a.txt"),
	}, got)
}
