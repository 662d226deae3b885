// Package review drives the interactive commit review pipeline: walk the
// commits a release covers, pick the user-visible ones, shape them in the
// user's editor, and replay the result into the changelog.
package review

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/conventional"
	"github.com/ariel-frischer/chlog/internal/diff"
	"github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/git"
)

// Pipeline holds the inputs of one review session.
type Pipeline struct {
	// File is the changelog being amended.
	File *changelog.File
	// Version keys the release under review; empty means Unreleased.
	Version string
	// Editor overrides editor resolution when non-empty.
	Editor string
	// WorkDir locates the git repository.
	WorkDir string
	// Out receives progress and the final diff.
	Out io.Writer

	// isTerminal is swapped out in tests.
	isTerminal func() bool
}

// Run executes the full pipeline. It is a no-op (with a message) when the
// covered range holds no commits or the user selects none.
func (p *Pipeline) Run() error {
	if p.isTerminal == nil {
		p.isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	}
	if !p.isTerminal() {
		return errors.NewRuntimeError("interactive review requires a terminal")
	}

	oldContent, err := p.File.Read()
	if err != nil {
		return err
	}
	doc, err := changelog.Parse(oldContent)
	if err != nil {
		return err
	}
	if p.Version != "" && !doc.Contains(p.Version) {
		return errors.NewNotFoundError(
			fmt.Sprintf("version %s not found in changelog", p.Version))
	}

	start, end := doc.RevisionRange(p.Version)
	commits, err := p.walkCommits(start, end)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		fmt.Fprintln(p.Out, "No commits found in range")
		return nil
	}

	entries, err := p.pickEntries(commits)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(p.Out, "No commits selected")
		return nil
	}

	entries, err = p.editEntries(entries)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(p.Out, "Review aborted, changelog unchanged")
		return nil
	}

	for _, e := range entries {
		if err := p.File.Add(e.Description, string(e.Category), p.Version); err != nil {
			return err
		}
	}

	newContent, err := p.File.Read()
	if err != nil {
		return err
	}
	return diff.Release(oldContent, newContent, p.Version, p.Out)
}

func (p *Pipeline) walkCommits(start, end string) ([]git.Commit, error) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Collecting commits (%s..%s)", start, end)
	s.Start()
	commits, err := git.ListCommits(p.WorkDir, start, end)
	s.Stop()
	return commits, err
}

// pickEntries runs the picker over the walked commits and classifies the
// chosen ones. Conventional feat and fix commits start selected.
func (p *Pipeline) pickEntries(commits []git.Commit) ([]Entry, error) {
	labels := make([]string, len(commits))
	preselected := make([]bool, len(commits))
	for i, c := range commits {
		labels[i] = c.Hash + " " + c.Subject
		if cc, ok := conventional.Parse(c.Subject); ok {
			preselected[i] = cc.Preselected()
		}
	}

	chosen, err := selectCommits(labels, preselected)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, i := range chosen {
		c := commits[i]
		category := changelog.CategoryChanged
		description := c.Subject
		if cc, ok := conventional.Parse(c.Subject); ok {
			category = cc.Category()
			description = cc.Description
		}
		entries = append(entries, Entry{
			Category:    category,
			Hash:        c.Hash,
			Description: description,
		})
	}
	return entries, nil
}

// editEntries round-trips the entries through the user's editor. The
// buffer is named like a rebase todo file so editors apply familiar
// highlighting.
func (p *Pipeline) editEntries(entries []Entry) ([]Entry, error) {
	editor, err := ResolveEditor(p.Editor)
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "rebase-merge")
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Runtime, "creating temp dir")
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "git-rebase-todo")
	if err := os.WriteFile(path, []byte(BuildTemplate(entries)), 0o600); err != nil {
		return nil, errors.WrapWithMessage(err, errors.Runtime, "writing review template")
	}

	if err := InvokeEditor(editor, path); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Runtime, "reading review template")
	}
	return ParseTemplate(string(edited))
}
