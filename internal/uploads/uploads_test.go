package uploads

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "uploads")

	_, err := New(dir)
	require.NoError(t, err)
	_, err = New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSave(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	filename, err := s.Save("cat.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d+-cat\.png$`), filename)

	content, err := os.ReadFile(filepath.Join(s.Dir(), filename))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestSaveStripsPathComponents(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	filename, err := s.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, "-passwd"), "got %q", filename)
	assert.NotContains(t, filename, "/")
}

func TestSaveGeneratesNameWhenMissing(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	filename, err := s.Save("", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotEmpty(t, filename)

	_, err = os.Stat(filepath.Join(s.Dir(), filename))
	assert.NoError(t, err)
}

func TestRemove(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	filename, err := s.Save("cat.png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(filename))
	_, err = os.Stat(filepath.Join(s.Dir(), filename))
	assert.True(t, os.IsNotExist(err))
}
