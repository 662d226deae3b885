package changelog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ariel-frischer/chlog/internal/errors"
)

// AddEntry inserts one bullet line under the given category inside the
// release keyed by key (Unreleased when key is empty). The description is
// carried literally, with no markdown escaping. Returns a NotFound error
// when the key is absent.
func (d *Document) AddEntry(key string, category Category, description string) error {
	if key == "" {
		key = UnreleasedKey
	}
	rel, ok := d.Get(key)
	if !ok {
		return errors.NewNotFoundError(fmt.Sprintf("version %s not found in changelog", key))
	}
	rel.Notes = insertBullet(rel.Notes, category, description)
	return nil
}

// insertBullet places "- description" inside the category's section of
// notes, creating the section when missing.
func insertBullet(notes string, category Category, description string) string {
	marker := category.Marker()
	lines := splitLines(notes)

	idx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == marker {
			idx = i
			break
		}
	}

	if idx >= 0 {
		// Walk past blank and bullet lines to the end of the section.
		insert := idx + 1
		for insert < len(lines) {
			t := strings.TrimSpace(lines[insert])
			if t == "" || strings.HasPrefix(t, "-") {
				insert++
			} else {
				break
			}
		}
		// Collapse the blank run before the insertion point so the new
		// bullet sits flush with the prior ones.
		for insert > idx+1 && strings.TrimSpace(lines[insert-1]) == "" {
			lines = append(lines[:insert-1], lines[insert:]...)
			insert--
		}
		lines = slices.Insert(lines, insert, "- "+description, "")
	} else {
		// No such section: create it before the first existing section,
		// separated from adjacent content by blank lines.
		insert := 0
		for insert < len(lines) && !strings.HasPrefix(lines[insert], "### ") {
			insert++
		}
		lines = slices.Insert(lines, insert, marker, "", "- "+description, "")
	}

	return strings.Join(lines, "\n")
}
