// Package diff renders a line-level unified-style diff of a single
// release section between two changelog revisions.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

// Release writes a colored line diff of one release section, comparing its
// rendered block in oldText against newText. versionKey selects the release
// (Unreleased when empty); a release absent from one side diffs against the
// empty string. Unchanged sections produce no output.
func Release(oldText, newText, versionKey string, w io.Writer) error {
	if versionKey == "" {
		versionKey = changelog.UnreleasedKey
	}

	oldBlock, err := releaseBlock(oldText, versionKey)
	if err != nil {
		return err
	}
	newBlock, err := releaseBlock(newText, versionKey)
	if err != nil {
		return err
	}
	if oldBlock == newBlock {
		return nil
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(oldBlock, newBlock)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lineArray)

	for _, d := range diffs {
		for _, line := range diffLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				fmt.Fprintln(w, color.RedString("-%s", line))
			case diffmatchpatch.DiffInsert:
				fmt.Fprintln(w, color.GreenString("+%s", line))
			default:
				fmt.Fprintf(w, " %s\n", line)
			}
		}
	}
	return nil
}

// releaseBlock returns the "## title\n\n<notes>" block for the keyed
// release, or "" when the document has no such release.
func releaseBlock(text, key string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	doc, err := changelog.Parse(text)
	if err != nil {
		return "", err
	}
	rel, ok := doc.Get(key)
	if !ok {
		return "", nil
	}
	return "## " + rel.Title + "\n\n" + strings.TrimSpace(rel.Notes), nil
}

// diffLines splits a diff chunk into lines, dropping the empty remainder
// after a trailing newline.
func diffLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\n")
	}
	return lines
}
