package types

import (
	"regexp"
	"strconv"
	"strings"
)

// ID type aliases provide semantic meaning for the string identifiers used
// throughout the timeline domain.

// ProjectID identifies a project; the canonical form is proj<N>
type ProjectID string

// CanonicalPrefix is the prefix shared by every canonical project identifier
const CanonicalPrefix = "proj"

var (
	numericPattern   = regexp.MustCompile(`^\d+$`)
	canonicalPattern = regexp.MustCompile(`^proj\d+$`)
)

// IsNumeric reports whether s consists only of ASCII digits
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// IsCanonical reports whether s is already in proj<N> form
func IsCanonical(s string) bool {
	return canonicalPattern.MatchString(s)
}

// CanonicalProjectID builds the canonical identifier for project number n
func CanonicalProjectID(n int) ProjectID {
	return ProjectID(CanonicalPrefix + strconv.Itoa(n))
}

// CanonicalFromDigits builds proj<digits> without reparsing, so leading
// zeros survive exactly as typed
func CanonicalFromDigits(digits string) ProjectID {
	return ProjectID(CanonicalPrefix + digits)
}

// NormalizeProjectID converts raw identifiers to canonical form where possible.
// "4" becomes "proj4", "proj4" is returned unchanged, anything else (names,
// free text) comes back trimmed. Empty input yields "".
func NormalizeProjectID(raw string) ProjectID {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if IsCanonical(s) {
		return ProjectID(s)
	}
	if IsNumeric(s) {
		return CanonicalFromDigits(s)
	}
	return ProjectID(s)
}

func (id ProjectID) String() string {
	return string(id)
}
