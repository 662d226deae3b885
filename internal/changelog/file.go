package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ariel-frischer/chlog/internal/errors"
)

// DefaultPath is the conventional changelog file name.
const DefaultPath = "CHANGELOG.md"

// initialDocument seeds a brand-new changelog before its first render.
const initialDocument = "# Changelog\n## [Unreleased]"

// File binds the document model to one on-disk changelog. Every operation
// is a complete read-modify-render-write cycle; the file is the sole
// source of truth between invocations and the last writer wins.
type File struct {
	// Path of the changelog file.
	Path string
	// Remote enables version-compare links when non-nil.
	Remote *Remote
	// Out receives status messages (defaults to os.Stdout).
	Out io.Writer
	// ErrOut receives warnings (defaults to os.Stderr).
	ErrOut io.Writer
	// Now supplies the promotion date (defaults to time.Now).
	Now func() time.Time
}

// NewFile creates a File for path with the given remote.
func NewFile(path string, remote *Remote) *File {
	if path == "" {
		path = DefaultPath
	}
	return &File{
		Path:   path,
		Remote: remote,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		Now:    time.Now,
	}
}

// Read returns the raw file contents. Returns a NotFound error when the
// file does not exist.
func (f *File) Read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return "", errors.NewNotFoundError(
			fmt.Sprintf("%s does not exist", f.Path),
			"run 'chlog init' to create it",
		)
	}
	if err != nil {
		return "", errors.WrapWithMessage(err, errors.Runtime, "reading changelog")
	}
	return string(data), nil
}

func (f *File) write(content string) error {
	if err := os.WriteFile(f.Path, []byte(content), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "writing changelog")
	}
	return nil
}

// load reads and parses the changelog.
func (f *File) load() (*Document, string, error) {
	content, err := f.Read()
	if err != nil {
		return nil, "", err
	}
	doc, err := Parse(content)
	if err != nil {
		return nil, "", err
	}
	return doc, content, nil
}

// Init creates a new changelog with an empty Unreleased section. An
// existing file is left untouched: a warning is printed and Init succeeds.
func (f *File) Init() error {
	if _, err := os.Stat(f.Path); err == nil {
		fmt.Fprintf(f.ErrOut, "%s already exists\n", f.Path)
		return nil
	}

	doc, err := Parse(initialDocument)
	if err != nil {
		return err
	}
	if err := f.write(Render(doc, initialDocument, f.Remote)); err != nil {
		return err
	}
	fmt.Fprintf(f.Out, "Created %s\n", f.Path)
	return nil
}

// Add appends a changelog entry under the given change type to the release
// keyed by version (Unreleased when empty) and rewrites the file.
func (f *File) Add(description, changeType, version string) error {
	category, err := ParseCategory(changeType)
	if err != nil {
		return err
	}

	doc, content, err := f.load()
	if err != nil {
		return err
	}
	if err := doc.AddEntry(version, category, description); err != nil {
		return err
	}
	return f.write(Render(doc, content, f.Remote))
}

// Format re-renders the changelog in canonical form.
func (f *File) Format() error {
	doc, content, err := f.load()
	if err != nil {
		return err
	}
	if err := f.write(Render(doc, content, f.Remote)); err != nil {
		return err
	}
	fmt.Fprintf(f.Out, "Formatted %s\n", f.Path)
	return nil
}

// Release promotes Unreleased into a dated release and rewrites the file.
// Returns the resolved version.
func (f *File) Release(versionOrBump, date string) (string, error) {
	doc, content, err := f.load()
	if err != nil {
		return "", err
	}
	version, err := doc.Promote(versionOrBump, date, f.Now())
	if err != nil {
		return "", err
	}
	if err := f.write(Render(doc, content, f.Remote)); err != nil {
		return "", err
	}
	fmt.Fprintf(f.Out, "Released version %s\n", version)
	return version, nil
}

// Show returns the rendered block for one release. version accepts the
// keywords "latest" and "unreleased" alongside explicit versions.
func (f *File) Show(version string) (string, error) {
	doc, _, err := f.load()
	if err != nil {
		return "", err
	}

	key := version
	switch strings.ToLower(version) {
	case "latest":
		latest, ok := doc.LatestRelease()
		if !ok {
			return "", errors.NewNotFoundError("no released versions found")
		}
		key = latest
	case "unreleased":
		key = UnreleasedKey
	}

	rel, ok := doc.Get(key)
	if !ok {
		return "", errors.NewNotFoundError(fmt.Sprintf("version %s not found", version))
	}
	return fmt.Sprintf("## %s\n\n%s", rel.Title, strings.TrimSpace(rel.Notes)), nil
}

// LatestVersion returns the most recent released version.
func (f *File) LatestVersion() (string, error) {
	doc, _, err := f.load()
	if err != nil {
		return "", err
	}
	latest, ok := doc.LatestRelease()
	if !ok {
		return "", errors.NewNotFoundError("no released versions found")
	}
	return latest, nil
}

// Versions returns all released versions, newest first.
func (f *File) Versions() ([]string, error) {
	doc, _, err := f.load()
	if err != nil {
		return nil, err
	}
	return doc.ReleasedKeys(), nil
}

// Range returns the git revision range covering a version, formatted as
// "start..end" ("end" alone when no older release exists). A v-prefixed
// version argument is rejected.
func (f *File) Range(version string) (string, error) {
	if strings.HasPrefix(version, "v") {
		return "", errors.NewInvalidInputError(
			"version should not start with 'v' prefix. Use semantic version format (e.g. '1.0.0')")
	}

	doc, _, err := f.load()
	if err != nil {
		return "", err
	}

	start, end := doc.RevisionRange(version)
	if start == "" {
		return end, nil
	}
	return start + ".." + end, nil
}
