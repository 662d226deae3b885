package changelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/ariel-frischer/chlog/internal/errors"
)

// promotionTemplate is the body of a freshly reset Unreleased section:
// every standard category header, no bullets. Empty sections are pruned
// again at render time.
const promotionTemplate = `### Added

### Changed

### Deprecated

### Removed

### Fixed

### Security`

// Promote moves the Unreleased release into a dated, versioned release and
// resets Unreleased to the empty template. versionOrBump is either a bump
// keyword (major, minor, patch) applied to the latest released version, or
// an explicit semantic version. date overrides today's date when non-empty
// (YYYY-MM-DD). The resulting order is: empty Unreleased, the promoted
// release, then all prior releases unchanged. Returns the resolved version.
func (d *Document) Promote(versionOrBump, date string, today time.Time) (string, error) {
	version, err := d.resolveReleaseVersion(versionOrBump)
	if err != nil {
		return "", err
	}
	if d.Contains(version) {
		return "", errors.NewInvalidInputError(fmt.Sprintf("version %s already exists in changelog", version))
	}

	unreleased, ok := d.Remove(UnreleasedKey)
	if !ok {
		return "", errors.NewNotFoundError("no unreleased section found")
	}

	if date == "" {
		date = today.Format("2006-01-02")
	}

	d.InsertFront(version, Release{
		Title: fmt.Sprintf("[%s] - %s", version, date),
		Notes: unreleased.Notes,
	})
	d.InsertFront(UnreleasedKey, Release{
		Title: "[" + UnreleasedKey + "]",
		Notes: promotionTemplate,
	})

	return version, nil
}

// resolveReleaseVersion turns a bump keyword into the next version, or
// validates an explicit version string.
func (d *Document) resolveReleaseVersion(versionOrBump string) (string, error) {
	switch strings.ToLower(versionOrBump) {
	case "major", "minor", "patch":
		latest, ok := d.LatestRelease()
		if !ok {
			return "", errors.NewNotFoundError("no previous version found",
				"release an explicit version first, e.g. 'chlog release 0.1.0'")
		}
		return bumpVersion(latest, strings.ToLower(versionOrBump))
	}

	if _, err := semver.StrictNewVersion(versionOrBump); err != nil {
		return "", errors.NewInvalidInputError(
			"version must be a valid semver or one of: major, minor, patch")
	}
	return versionOrBump, nil
}

// bumpVersion increments the leading version token of the latest released
// key. Keys can carry a " - <date>" suffix once rendered; only the token
// before it is parsed.
func bumpVersion(latest, bump string) (string, error) {
	token, _, _ := strings.Cut(latest, " - ")
	token = strings.Trim(strings.TrimSpace(token), "[]")

	v, err := semver.StrictNewVersion(token)
	if err != nil {
		return "", errors.WrapWithMessage(err, errors.InvalidData,
			fmt.Sprintf("latest version %q is not a valid semver", token))
	}

	var next semver.Version
	switch bump {
	case "major":
		next = v.IncMajor()
	case "minor":
		next = v.IncMinor()
	case "patch":
		next = v.IncPatch()
	}
	return next.String(), nil
}
