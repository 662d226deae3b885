package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/errors"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  Category
	}{
		"full name":       {input: "added", want: CategoryAdded},
		"title case":      {input: "Fixed", want: CategoryFixed},
		"upper case":      {input: "SECURITY", want: CategorySecurity},
		"alias a":         {input: "a", want: CategoryAdded},
		"alias c":         {input: "c", want: CategoryChanged},
		"alias d":         {input: "d", want: CategoryDeprecated},
		"alias r":         {input: "r", want: CategoryRemoved},
		"alias f":         {input: "f", want: CategoryFixed},
		"alias s":         {input: "s", want: CategorySecurity},
		"padded":          {input: "  changed  ", want: CategoryChanged},
		"alias uppercase": {input: "F", want: CategoryFixed},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCategory(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategory_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseCategory("bogus")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.InvalidInput))
	assert.Contains(t, err.Error(), "invalid change type: bogus")
}

func TestCategoryMarker(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "### Added", CategoryAdded.Marker())
	assert.Equal(t, "### Security", CategorySecurity.Marker())
}
