// Package changelog implements the Keep a Changelog document model: an
// ordered map of releases parsed from CHANGELOG.md, entry insertion,
// release promotion, and idempotent markdown rendering with regenerated
// version-compare links.
package changelog
