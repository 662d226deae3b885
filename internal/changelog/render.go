package changelog

import (
	"fmt"
	"strings"
)

// Render serializes the document back to markdown. The header is taken
// from the original on-disk text so user-authored preamble is preserved
// verbatim. remote controls link generation: when non-nil, version tokens
// in titles are bracketed and footnote link definitions are appended; when
// nil, all brackets are stripped and no links are emitted.
//
// Render is pure and idempotent: rendering the parse of a rendered
// document reproduces it byte for byte.
func Render(d *Document, original string, remote *Remote) string {
	header := ExtractHeader(original)
	if header == "" {
		header = "# Changelog"
	}
	output := header + "\n\n"

	known := d.versionTokens()
	var versions []string

	for _, key := range d.Keys() {
		rel, _ := d.Get(key)
		// A release whose notes still hold a document-level title is a
		// malformed parse that swallowed the whole body; omit it entirely.
		if containsTitleLine(rel.Notes) {
			continue
		}

		lines := splitLines(stripVersionLinkLines(rel.Notes, known))
		lines = stripEmbeddedHeading(lines)

		if !strings.HasSuffix(output, "\n\n") {
			output += "\n"
		}
		output += "## " + normalizeTitle(rel.Title, remote != nil) + "\n\n"

		if sections := pruneEmptySections(lines); len(sections) > 0 {
			output += strings.Join(sections, "\n") + "\n"
		}

		versions = append(versions, versionToken(rel.Title))
	}

	output = stripTrailingLinkLines(output)

	if remote != nil && len(versions) > 0 {
		if strings.HasSuffix(output, "\n") {
			output += "\n"
		} else {
			output += "\n\n"
		}
		for i, v := range versions {
			output += fmt.Sprintf("[%s]: %s\n", v, remote.compareURL(versions, i))
		}
	}

	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	return output
}

// normalizeTitle forces the leading version token into bracketed form when
// links are enabled (already-bracketed tokens pass through) and strips all
// brackets otherwise. Any " - <date>" suffix is kept as-is.
func normalizeTitle(title string, bracketed bool) string {
	if !bracketed {
		return strings.NewReplacer("[", "", "]", "").Replace(title)
	}

	version, rest, found := strings.Cut(title, " - ")
	if !strings.HasPrefix(version, "[") {
		version = "[" + version + "]"
	}
	if found {
		return version + " - " + rest
	}
	return version
}

// containsTitleLine reports whether notes contain a level-1 heading line.
func containsTitleLine(notes string) bool {
	for _, line := range splitLines(notes) {
		if strings.HasPrefix(strings.TrimSpace(line), "# ") {
			return true
		}
	}
	return false
}

// stripEmbeddedHeading drops a stray "## " heading line left inside notes
// by the parser, along with the blank lines that follow it.
func stripEmbeddedHeading(lines []string) []string {
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "## ") {
			j := i + 1
			for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
				j++
			}
			out := make([]string, 0, len(lines)-(j-i))
			out = append(out, lines[:i]...)
			return append(out, lines[j:]...)
		}
	}
	return lines
}

// pruneEmptySections re-chunks notes into ### sections and keeps only
// those with at least one line of real content. Lines before the first
// section heading are dropped.
func pruneEmptySections(lines []string) []string {
	hasContent := func(body []string) bool {
		for _, l := range body {
			t := strings.TrimSpace(l)
			if t != "" && !strings.HasPrefix(t, "#") {
				return true
			}
		}
		return false
	}

	var out []string
	var header string
	var body []string
	flush := func() {
		if header != "" && hasContent(body) {
			out = append(out, header)
			out = append(out, body...)
		}
	}

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "### ") {
			flush()
			header = line
			body = nil
		} else if header != "" {
			body = append(body, line)
		}
	}
	flush()
	return out
}

// stripVersionLinkLines removes footnote link definitions keyed by any
// known version token. Links are always regenerated from scratch, never
// merged; non-version link definitions are left alone.
func stripVersionLinkLines(notes string, versions map[string]bool) string {
	lines := splitLines(notes)
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		t := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(t, "[") {
			if name, _, ok := strings.Cut(t[1:], "]: "); ok && versions[name] {
				continue
			}
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// stripTrailingLinkLines discards trailing lines that look like link
// definitions so stale or hand-edited URLs never survive a render.
func stripTrailingLinkLines(output string) string {
	lines := splitLines(output)
	for len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "[") {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
