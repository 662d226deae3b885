package changelog

import (
	"fmt"
	"strings"

	"github.com/ariel-frischer/chlog/internal/errors"
)

// Category is one of the six Keep a Changelog change classifications.
// The value is the Title-case section name used in ### headings.
type Category string

const (
	CategoryAdded      Category = "Added"
	CategoryChanged    Category = "Changed"
	CategoryDeprecated Category = "Deprecated"
	CategoryRemoved    Category = "Removed"
	CategoryFixed      Category = "Fixed"
	CategorySecurity   Category = "Security"
)

// Categories returns all categories in their standard rendering order.
func Categories() []Category {
	return []Category{
		CategoryAdded,
		CategoryChanged,
		CategoryDeprecated,
		CategoryRemoved,
		CategoryFixed,
		CategorySecurity,
	}
}

// Marker returns the canonical section heading for the category.
func (c Category) Marker() string {
	return "### " + string(c)
}

// Alias returns the single-letter alias for the category.
func (c Category) Alias() string {
	return strings.ToLower(string(c)[:1])
}

// ParseCategory matches a change type against the six category names and
// their single-letter aliases, case-insensitively. Returns an InvalidInput
// error for anything else.
func ParseCategory(s string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if needle == strings.ToLower(string(c)) || needle == c.Alias() {
			return c, nil
		}
	}
	return "", errors.NewInvalidInputError(fmt.Sprintf(
		"invalid change type: %s. Must be one of: added (a), changed (c), deprecated (d), removed (r), fixed (f), security (s)", s))
}
