package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/errors"
)

func TestBuildTemplate(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Category: changelog.CategoryAdded, Hash: "a1b2c3d", Description: "add config profiles"},
		{Category: changelog.CategoryFixed, Hash: "e4f5a6b", Description: "handle empty input"},
	}

	got := BuildTemplate(entries)

	assert.True(t, strings.HasPrefix(got, "added a1b2c3d add config profiles\nfixed e4f5a6b handle empty input\n"))
	assert.Contains(t, got, "# Review Changelog Entries")
}

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	input := `added a1b2c3d add config profiles

f e4f5a6b handle empty input
# a comment line
changed c7d8e9f rework parser
incomplete line
`

	entries, err := ParseTemplate(input)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Category: changelog.CategoryAdded, Hash: "a1b2c3d", Description: "add config profiles"},
		{Category: changelog.CategoryFixed, Hash: "e4f5a6b", Description: "handle empty input"},
		{Category: changelog.CategoryChanged, Hash: "c7d8e9f", Description: "rework parser"},
	}, entries)
}

func TestParseTemplate_RoundTrip(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Category: changelog.CategorySecurity, Hash: "a1b2c3d", Description: "patch injection"},
	}

	parsed, err := ParseTemplate(BuildTemplate(entries))
	require.NoError(t, err)
	assert.Equal(t, entries, parsed)
}

func TestParseTemplate_Empty(t *testing.T) {
	t.Parallel()

	entries, err := ParseTemplate("# everything deleted\n\n")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseTemplate_InvalidCategory(t *testing.T) {
	t.Parallel()

	_, err := ParseTemplate("bogus a1b2c3d something\n")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.InvalidInput))
}
