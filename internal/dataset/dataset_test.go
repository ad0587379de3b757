package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadGlob_ConcatenatesFilesInNameOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("3\n4\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1\n2\n"), 0o644))

	samples, err := LoadGlob([]string{filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, samples)
}

func TestLoad_SkipsCommentsAndBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.txt")
	content := "# header\n1.5\n\n  \n-2.25\n# trailing comment\n3e2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	samples, err := Load([]string{path})
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, -2.25, 300}, samples)
}

func TestLoad_RejectsMalformedSample(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\nnot-a-number\n"), 0o644))

	_, err := Load([]string{path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.txt:2")
}

func TestLoadGlob_NoMatches(t *testing.T) {
	_, err := LoadGlob([]string{filepath.Join(t.TempDir(), "*.txt")})
	require.Error(t, err)
}

func TestFindFiles_DoubleStar(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "inner")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "b.txt"), []byte("2\n"), 0o644))

	files, err := FindFiles([]string{filepath.Join(dir, "**", "*.txt")})
	require.NoError(t, err)
	require.Len(t, files, 2)
}

func TestSine_LengthAndAmplitude(t *testing.T) {
	samples := Sine(16, 50.0, 8000.0, 2.0)
	require.Len(t, samples, 16)
	require.Zero(t, samples[0])
	for _, s := range samples {
		require.LessOrEqual(t, s, 2.0)
		require.GreaterOrEqual(t, s, -2.0)
	}
}
