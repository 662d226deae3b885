package changelog

// Remote identifies the GitHub repository used for version-compare links.
// It is an explicit input to the renderer: a nil Remote disables link
// generation (and bracket normalization with it). Resolution, whether from
// a config override or origin-URL inference, happens once at the command
// boundary.
type Remote struct {
	Owner string
	Repo  string
}

// URL returns the base repository URL.
func (r *Remote) URL() string {
	return "https://github.com/" + r.Owner + "/" + r.Repo
}

// compareURL builds the link target for the version at index i of the
// emitted version list. The last (oldest) version links to its release
// tag; every other version compares against the next older one, except
// Unreleased which compares the latest release against HEAD.
func (r *Remote) compareURL(versions []string, i int) string {
	base := r.URL()
	v := versions[i]
	switch {
	case i+1 >= len(versions):
		return base + "/releases/tag/v" + v
	case v == UnreleasedKey:
		return base + "/compare/v" + versions[i+1] + "...HEAD"
	default:
		return base + "/compare/v" + versions[i+1] + "...v" + v
	}
}
