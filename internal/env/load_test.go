package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	keys, err := Load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "# comment\n\nCUBEFIELD_TEST_A=1\nexport CUBEFIELD_TEST_B = \"two words\"\nCUBEFIELD_TEST_C='x'\nnot a pair\n=orphan\nCUBEFIELD_TEST_KEEP=file\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	t.Setenv("CUBEFIELD_TEST_KEEP", "env")
	for _, k := range []string{"CUBEFIELD_TEST_A", "CUBEFIELD_TEST_B", "CUBEFIELD_TEST_C"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	keys, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"CUBEFIELD_TEST_A", "CUBEFIELD_TEST_B", "CUBEFIELD_TEST_C"}, keys)
	assert.Equal(t, "1", os.Getenv("CUBEFIELD_TEST_A"))
	assert.Equal(t, "two words", os.Getenv("CUBEFIELD_TEST_B"))
	assert.Equal(t, "x", os.Getenv("CUBEFIELD_TEST_C"))
	assert.Equal(t, "env", os.Getenv("CUBEFIELD_TEST_KEEP"))
}
