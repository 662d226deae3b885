package changelog

import "strings"

// UnreleasedKey is the canonical key for the unreleased section.
const UnreleasedKey = "Unreleased"

// Release is one ##-headed section of the changelog. Title is the raw
// heading text (e.g. "[1.0.0] - 2025-01-01" or "Unreleased"); Notes is the
// body between this heading and the next, including ### category headings
// and bullet lines.
type Release struct {
	Title string
	Notes string
}

// Document is an ordered mapping from release key to release, plus the
// header text that precedes the first release heading. Iteration order is
// document order: newest first, Unreleased conventionally first.
type Document struct {
	Header string

	keys     []string
	releases map[string]*Release
}

// NewDocument creates an empty document with the given header.
func NewDocument(header string) *Document {
	return &Document{
		Header:   header,
		releases: make(map[string]*Release),
	}
}

// Keys returns the release keys in document order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of releases.
func (d *Document) Len() int {
	return len(d.keys)
}

// Get returns the release for key. The returned pointer is live: mutations
// through it are visible in the document.
func (d *Document) Get(key string) (*Release, bool) {
	r, ok := d.releases[key]
	return r, ok
}

// Contains reports whether key exists in the document.
func (d *Document) Contains(key string) bool {
	_, ok := d.releases[key]
	return ok
}

// Append adds a release at the end of the document order.
// Existing keys are left untouched.
func (d *Document) Append(key string, r Release) {
	if d.Contains(key) {
		return
	}
	d.keys = append(d.keys, key)
	d.releases[key] = &r
}

// InsertFront adds a release at the front of the document order. It is used
// by promotion to keep Unreleased first and the promoted release second.
func (d *Document) InsertFront(key string, r Release) {
	if d.Contains(key) {
		return
	}
	d.keys = append([]string{key}, d.keys...)
	d.releases[key] = &r
}

// Remove deletes a release, preserving the order of the remaining entries.
func (d *Document) Remove(key string) (Release, bool) {
	r, ok := d.releases[key]
	if !ok {
		return Release{}, false
	}
	delete(d.releases, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return *r, true
}

// ReleasedKeys returns all keys except Unreleased, in document order
// (newest first).
func (d *Document) ReleasedKeys() []string {
	var out []string
	for _, k := range d.keys {
		if k != UnreleasedKey {
			out = append(out, k)
		}
	}
	return out
}

// LatestRelease returns the most recent released key (the first
// non-Unreleased key in document order).
func (d *Document) LatestRelease() (string, bool) {
	for _, k := range d.keys {
		if k != UnreleasedKey {
			return k, true
		}
	}
	return "", false
}

// RevisionRange resolves the git revision range covering a version. For an
// explicit version the range ends at its tag and starts at the next older
// release's tag; with no version it ends at HEAD and starts at the latest
// released tag. Start is empty when no older release exists.
func (d *Document) RevisionRange(version string) (start, end string) {
	if version == "" {
		end = "HEAD"
		if latest, ok := d.LatestRelease(); ok {
			start = "v" + latest
		}
		return start, end
	}

	end = "v" + version
	released := d.ReleasedKeys()
	for i, k := range released {
		if k == version && i+1 < len(released) {
			start = "v" + released[i+1]
			break
		}
	}
	return start, end
}

// versionToken extracts the leading version token of a release title,
// stripped of link brackets: "[1.0.0] - 2025-01-01" yields "1.0.0".
func versionToken(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], "[]")
}

// versionTokens returns the set of version tokens for all releases.
func (d *Document) versionTokens() map[string]bool {
	tokens := make(map[string]bool, len(d.keys))
	for _, k := range d.keys {
		tokens[versionToken(d.releases[k].Title)] = true
	}
	return tokens
}

// splitLines splits on newlines without producing a trailing empty element
// for a final newline, so joining with "\n" round-trips cleanly.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
