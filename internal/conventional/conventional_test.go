package conventional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		subject string
		want    Commit
		wantOK  bool
	}{
		"plain feat": {
			subject: "feat: add config profiles",
			want:    Commit{Type: "feat", Description: "add config profiles"},
			wantOK:  true,
		},
		"scoped fix": {
			subject: "fix(parser): handle empty input",
			want:    Commit{Type: "fix", Scope: "parser", Description: "handle empty input"},
			wantOK:  true,
		},
		"breaking change": {
			subject: "feat(api)!: drop v1 endpoints",
			want:    Commit{Type: "feat", Scope: "api", Description: "drop v1 endpoints", Breaking: true},
			wantOK:  true,
		},
		"uppercase type normalized": {
			subject: "Fix: typo",
			want:    Commit{Type: "fix", Description: "typo"},
			wantOK:  true,
		},
		"chore": {
			subject: "chore: bump deps",
			want:    Commit{Type: "chore", Description: "bump deps"},
			wantOK:  true,
		},
		"no colon": {
			subject: "update readme",
			wantOK:  false,
		},
		"missing description": {
			subject: "feat:",
			wantOK:  false,
		},
		"colon without space": {
			subject: "feat:tight",
			wantOK:  false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := Parse(tt.subject)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCommitCategory(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		commitType string
		want       changelog.Category
	}{
		"feat maps to added":     {commitType: "feat", want: changelog.CategoryAdded},
		"fix maps to fixed":      {commitType: "fix", want: changelog.CategoryFixed},
		"chore maps to changed":  {commitType: "chore", want: changelog.CategoryChanged},
		"docs maps to changed":   {commitType: "docs", want: changelog.CategoryChanged},
		"refactor maps changed":  {commitType: "refactor", want: changelog.CategoryChanged},
		"unknown maps to change": {commitType: "wip", want: changelog.CategoryChanged},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := Commit{Type: tt.commitType}
			assert.Equal(t, tt.want, c.Category())
		})
	}
}

func TestCommitPreselected(t *testing.T) {
	t.Parallel()

	assert.True(t, Commit{Type: "feat"}.Preselected())
	assert.True(t, Commit{Type: "fix"}.Preselected())
	assert.False(t, Commit{Type: "chore"}.Preselected())
	assert.False(t, Commit{Type: "docs"}.Preselected())
}
