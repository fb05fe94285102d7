// Package validate implements presence checks for parsed command-line
// options.
//
// Commands declare their required flags as Fields and run the checks
// after flag parsing but before any network call. Checks are pure
// functions over already-parsed values; they never touch the flag set
// itself.
package validate

import (
	"fmt"
	"strings"
)

// Field is a named option value to check. Name is the flag name as the
// user types it (without the leading dashes); Value is the parsed value.
type Field struct {
	Name  string
	Value string
}

// Group is a set of fields that must all be present for the group to
// be satisfied.
type Group []Field

// Error reports one or more missing options. Missing holds flag names
// for a plain requirement; Alternatives holds the flag-name groups for
// a one-of requirement (only one of the two is populated).
type Error struct {
	// Missing lists flags that are required but empty.
	Missing []string

	// Alternatives lists the flag-name groups of a one-of requirement,
	// none of which was fully satisfied.
	Alternatives [][]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Alternatives) > 0 {
		parts := make([]string, len(e.Alternatives))
		for i, group := range e.Alternatives {
			parts[i] = joinFlags(group, " and ")
		}
		return fmt.Sprintf("one of the following is required: %s", strings.Join(parts, ", or "))
	}

	if len(e.Missing) == 1 {
		return fmt.Sprintf("option --%s is required", e.Missing[0])
	}
	return fmt.Sprintf("options %s are required", joinFlags(e.Missing, ", "))
}

// Require fails unless every field has a non-empty value. The returned
// error names each missing flag.
func Require(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if f.Value == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &Error{Missing: missing}
	}
	return nil
}

// RequireAny fails unless at least one group has every field present.
// The returned error states each alternative in full.
func RequireAny(groups ...Group) error {
	names := make([][]string, len(groups))
	for i, group := range groups {
		if satisfied(group) {
			return nil
		}
		groupNames := make([]string, len(group))
		for j, f := range group {
			groupNames[j] = f.Name
		}
		names[i] = groupNames
	}
	return &Error{Alternatives: names}
}

func satisfied(group Group) bool {
	for _, f := range group {
		if f.Value == "" {
			return false
		}
	}
	return len(group) > 0
}

func joinFlags(names []string, sep string) string {
	flagged := make([]string, len(names))
	for i, n := range names {
		flagged[i] = "--" + n
	}
	return strings.Join(flagged, sep)
}
