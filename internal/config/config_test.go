package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "CHANGELOG.md", cfg.Path)
	assert.Empty(t, cfg.Editor)
	assert.False(t, cfg.Remote.IsSet())
}

func TestLoad_ProjectFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yml := `path: docs/CHANGELOG.md
editor: nvim
remote:
  owner: acme
  repo: widgets
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte(yml), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "docs/CHANGELOG.md", cfg.Path)
	assert.Equal(t, "nvim", cfg.Editor)
	assert.Equal(t, Remote{Owner: "acme", Repo: "widgets"}, cfg.Remote)
	assert.True(t, cfg.Remote.IsSet())
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("path: NOTES.md\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "NOTES.md", cfg.Path)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("nope.yml")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.NotFound))
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("path: from-file.md\n"), 0o644))

	t.Setenv("CHLOG_PATH", "from-env.md")
	t.Setenv("CHLOG_REMOTE_OWNER", "acme")
	t.Setenv("CHLOG_REMOTE_REPO", "widgets")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-env.md", cfg.Path)
	assert.Equal(t, "acme", cfg.Remote.Owner)
	assert.Equal(t, "widgets", cfg.Remote.Repo)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte(":\n  - not yaml"), 0o644))

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.InvalidData))
}
