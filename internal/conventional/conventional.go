// Package conventional classifies commit subjects following the
// Conventional Commits convention into changelog categories.
package conventional

import (
	"regexp"
	"strings"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

var subjectRe = regexp.MustCompile(`^([a-zA-Z]+)(\([^)]*\))?(!)?:\s+(.+)$`)

// Commit is a parsed conventional commit subject.
type Commit struct {
	Type        string
	Scope       string
	Description string
	Breaking    bool
}

// Parse interprets a commit subject line. ok is false when the subject
// does not follow the type(scope)!: description form.
func Parse(subject string) (Commit, bool) {
	m := subjectRe.FindStringSubmatch(subject)
	if m == nil {
		return Commit{}, false
	}
	return Commit{
		Type:        strings.ToLower(m[1]),
		Scope:       strings.Trim(m[2], "()"),
		Description: m[4],
		Breaking:    m[3] == "!",
	}, true
}

// Category maps the commit type to its changelog category: feat becomes
// Added, fix becomes Fixed, everything else Changed.
func (c Commit) Category() changelog.Category {
	switch c.Type {
	case "feat":
		return changelog.CategoryAdded
	case "fix":
		return changelog.CategoryFixed
	default:
		return changelog.CategoryChanged
	}
}

// Preselected reports whether the commit should start selected in the
// review picker. Features and fixes are user-visible by default; chores,
// refactors and unclassified commits are not.
func (c Commit) Preselected() bool {
	return c.Type == "feat" || c.Type == "fix"
}
