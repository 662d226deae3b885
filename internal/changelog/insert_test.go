package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/errors"
)

func TestAddEntry_ExistingSection(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	require.NoError(t, doc.AddEntry("", CategoryAdded, "Another feature"))

	unreleased, _ := doc.Get(UnreleasedKey)
	assert.Equal(t, "### Added\n\n- New feature\n- Another feature\n", unreleased.Notes)
}

func TestAddEntry_NewSection(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	require.NoError(t, doc.AddEntry("", CategoryFixed, "Edge case"))

	unreleased, _ := doc.Get(UnreleasedKey)
	assert.Equal(t, "### Fixed\n\n- Edge case\n\n### Added\n\n- New feature", unreleased.Notes)
}

func TestAddEntry_EmptySection(t *testing.T) {
	t.Parallel()

	doc, err := Parse("## [Unreleased]\n\n### Added\n\n### Changed\n")
	require.NoError(t, err)

	require.NoError(t, doc.AddEntry("", CategoryAdded, "First entry"))

	unreleased, _ := doc.Get(UnreleasedKey)
	assert.Equal(t, "### Added\n- First entry\n\n### Changed", unreleased.Notes)
}

func TestAddEntry_TargetsVersion(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	require.NoError(t, doc.AddEntry("1.0.0", CategoryAdded, "Backfilled"))

	rel, _ := doc.Get("1.0.0")
	assert.Contains(t, rel.Notes, "- Backfilled")

	unreleased, _ := doc.Get(UnreleasedKey)
	assert.NotContains(t, unreleased.Notes, "Backfilled")
}

func TestAddEntry_DescriptionIsLiteral(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	desc := "Handle `*.md` and [links](x)"
	require.NoError(t, doc.AddEntry("", CategoryChanged, desc))

	unreleased, _ := doc.Get(UnreleasedKey)
	assert.Contains(t, unreleased.Notes, "- "+desc)
}

func TestAddEntry_UnknownVersion(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	err = doc.AddEntry("9.9.9", CategoryAdded, "nope")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.NotFound))
	assert.Contains(t, err.Error(), "version 9.9.9 not found")
}
