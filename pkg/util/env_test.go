package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := "APP_PORT=9000\n# comment line\n\nAPP_NAME=\"echo voice\"\nBAD LINE\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(envFile), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("APP_PORT=9100\nEXTRA=1\n"), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(cwd) })

	t.Setenv("APP_PORT", "override")
	t.Setenv("APP_NAME", "")
	os.Unsetenv("APP_NAME")
	os.Unsetenv("EXTRA")

	require.NoError(t, LoadEnv("test"))

	// process environment wins over files
	assert.Equal(t, "override", os.Getenv("APP_PORT"))
	// quotes are stripped
	assert.Equal(t, "echo voice", os.Getenv("APP_NAME"))
	// the per-environment file is applied too
	assert.Equal(t, "1", os.Getenv("EXTRA"))

	// a missing file is not an error
	assert.NoError(t, LoadEnv("nonexistent"))
}

func TestEnvCoercion(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	assert.Equal(t, int64(42), GetIntEnv("SOME_INT"))
	assert.Equal(t, int64(0), GetIntEnv("SOME_INT_MISSING"))

	t.Setenv("SOME_BOOL", "true")
	assert.True(t, GetBoolEnv("SOME_BOOL"))
	assert.False(t, GetBoolEnv("SOME_BOOL_MISSING"))
}
