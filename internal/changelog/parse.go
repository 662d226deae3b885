package changelog

import (
	"fmt"
	"strings"

	"github.com/ariel-frischer/chlog/internal/errors"
)

// Parse reads a markdown changelog into a Document. Releases are split on
// "## " heading lines; the key is the heading's leading version token with
// link brackets and any date suffix stripped ("unreleased" in any case
// normalizes to "Unreleased"). Everything before the first release heading
// becomes the header. Returns an InvalidData error when the text contains
// no release heading or duplicate release keys.
func Parse(raw string) (*Document, error) {
	lines := splitLines(raw)

	first := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "## ") {
			first = i
			break
		}
	}
	if first < 0 {
		return nil, errors.NewInvalidDataError(
			"no release sections found in changelog",
			"add at least one '## [Unreleased]' heading",
		)
	}

	doc := NewDocument(strings.TrimRight(strings.Join(lines[:first], "\n"), " \t\n"))

	for i := first; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], "## ") {
			continue
		}
		title := strings.TrimSpace(strings.TrimPrefix(lines[i], "## "))
		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if strings.HasPrefix(lines[j], "## ") {
				end = j
				break
			}
		}

		key := releaseKey(title)
		if key == "" {
			return nil, errors.NewInvalidDataError(fmt.Sprintf("release heading %q has no version", title))
		}
		if doc.Contains(key) {
			return nil, errors.NewInvalidDataError(fmt.Sprintf("duplicate release %q", key))
		}

		notes := strings.TrimSpace(strings.Join(lines[i+1:end], "\n"))
		doc.Append(key, Release{Title: title, Notes: notes})
		i = end - 1
	}

	return doc, nil
}

// releaseKey derives the map key for a release title.
func releaseKey(title string) string {
	token := versionToken(title)
	if strings.EqualFold(token, UnreleasedKey) {
		return UnreleasedKey
	}
	return token
}

// ExtractHeader returns everything in raw before the first line beginning
// with "## ", trimmed of trailing whitespace. When no release heading
// exists the entire trimmed input is the header. This is always applied to
// the original on-disk text so user-authored preamble survives every
// round trip.
func ExtractHeader(raw string) string {
	if strings.HasPrefix(raw, "## ") {
		return ""
	}
	if idx := strings.Index(raw, "\n## "); idx >= 0 {
		return strings.TrimRight(raw[:idx], " \t\n")
	}
	return strings.TrimRight(raw, " \t\n")
}
