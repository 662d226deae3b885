package review

import (
	"fmt"
	"strings"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

// Entry is one proposed changelog line in the review template.
type Entry struct {
	Category    changelog.Category
	Hash        string
	Description string
}

// templateGuide is appended to the editor buffer, mirroring the comment
// block of a git-rebase-todo file.
const templateGuide = `
# Review Changelog Entries
#
# Each line becomes one changelog bullet:
#   <type> <commit> <description>
#
# Types:
#  a, added       new features
#  c, changed     changes in existing functionality
#  d, deprecated  soon-to-be removed features
#  r, removed     now removed features
#  f, fixed       bug fixes
#  s, security    fixes for vulnerabilities
#
# Edit types and descriptions freely. Delete a line to drop its entry.
# Lines starting with '#' and blank lines are ignored.
# If you remove everything, the review is aborted.
`

// BuildTemplate renders the editor buffer for the given entries.
func BuildTemplate(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s %s\n", strings.ToLower(string(e.Category)), e.Hash, e.Description)
	}
	b.WriteString(templateGuide)
	return b.String()
}

// ParseTemplate reads the edited buffer back into entries. Comment and
// blank lines are skipped, as are lines without all three fields; category
// aliases are expanded. An invalid category aborts with an error.
func ParseTemplate(text string) ([]Entry, error) {
	var entries []Entry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, " ", 3)
		if len(parts) != 3 {
			continue
		}
		category, err := changelog.ParseCategory(parts[0])
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			Category:    category,
			Hash:        parts[1],
			Description: strings.TrimSpace(parts[2]),
		})
	}
	return entries, nil
}
