package diff

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

const before = `# Changelog

## [Unreleased]

### Added

- Existing feature

## [1.0.0] - 2025-01-01

### Added

- Initial release
`

const after = `# Changelog

## [Unreleased]

### Added

- Existing feature
- New feature

## [1.0.0] - 2025-01-01

### Added

- Initial release
`

func TestRelease_AddedLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Release(before, after, "", &buf))

	out := buf.String()
	assert.Contains(t, out, "+- New feature\n")
	assert.Contains(t, out, " - Existing feature\n")
	assert.NotContains(t, out, "Initial release")
}

func TestRelease_RemovedLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Release(after, before, "", &buf))

	assert.Contains(t, buf.String(), "-- New feature\n")
}

func TestRelease_NoChanges(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Release(before, before, "", &buf))

	assert.Empty(t, buf.String())
}

func TestRelease_UntouchedVersionSection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Release(before, after, "1.0.0", &buf))

	assert.Empty(t, buf.String())
}

func TestRelease_EmptyOldSide(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Release("", after, "", &buf))

	out := buf.String()
	assert.Contains(t, out, "+## [Unreleased]\n")
	assert.Contains(t, out, "+- New feature\n")
}
