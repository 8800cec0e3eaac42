package compat

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Version is a single engine release, ordered lexicographically on
// (Major, Minor, Patch).
type Version struct {
	Major int
	Minor int
	Patch int
}

// Compare returns -1 when a precedes b, 1 when a follows b and 0 when both
// name the same release.
func Compare(a, b Version) int {
	if c := cmp.Compare(a.Major, b.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Minor, b.Minor); c != 0 {
		return c
	}
	return cmp.Compare(a.Patch, b.Patch)
}

// ParseVersion reads a release number in "major[.minor[.patch]]" form, the
// way targets are written on the command line and in datasets. Missing
// components are zero.
func ParseVersion(s string) (Version, error) {
	if len(s) == 0 {
		return Version{}, errors.New("version is empty")
	}
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("version %q has more than three components", s)
	}

	var numbers [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("version %q has malformed component %q", s, part)
		}
		numbers[i] = n
	}
	return Version{Major: numbers[0], Minor: numbers[1], Patch: numbers[2]}, nil
}

// String renders the shortest form naming the release: trailing zero
// components are dropped.
func (v Version) String() string {
	switch {
	case v.Patch != 0:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	case v.Minor != 0:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return strconv.Itoa(v.Major)
	}
}

// MarshalText implements the text marshaller method.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements the text unmarshaller method.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// VersionRange is the half-open interval [Start, End): an engine supports
// something from Start up to but not including End. A nil End leaves the
// range unbounded above.
type VersionRange struct {
	Start Version
	End   *Version
}

// Contains reports whether v falls inside the range.
func (r VersionRange) Contains(v Version) bool {
	return Compare(v, r.Start) >= 0 && (r.End == nil || Compare(v, *r.End) < 0)
}

// IsSupported reports whether v falls inside at least one of ranges. Every
// range is checked on its own, overlapping or unsorted input is fine.
func IsSupported(ranges []VersionRange, v Version) bool {
	for _, r := range ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}
