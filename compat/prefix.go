package compat

import (
	"fmt"
	"strings"
)

// Prefix is a single vendor prefix an engine may demand in front of a CSS
// property. NoPrefix is the zero value; the vendor prefixes own fixed bits
// so any combination packs into a PrefixSet.
type Prefix uint8

const (
	NoPrefix Prefix = 0

	PrefixKhtml  Prefix = 1 << 0
	PrefixMoz    Prefix = 1 << 1
	PrefixMs     Prefix = 1 << 2
	PrefixO      Prefix = 1 << 3
	PrefixWebkit Prefix = 1 << 4
)

var prefixNames = map[Prefix]string{
	PrefixKhtml:  "khtml",
	PrefixMoz:    "moz",
	PrefixMs:     "ms",
	PrefixO:      "o",
	PrefixWebkit: "webkit",
}

// String implements the Stringer interface.
func (p Prefix) String() string {
	if p == NoPrefix {
		return "none"
	}
	if name, ok := prefixNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Prefix(%#x)", uint8(p))
}

// ParsePrefix attempts to convert a string to a Prefix. Only vendor prefix
// names are accepted, there is no spelled out form of NoPrefix.
func ParsePrefix(name string) (Prefix, error) {
	for p, n := range prefixNames {
		if n == name {
			return p, nil
		}
	}
	return NoPrefix, fmt.Errorf("unknown prefix %q", name)
}

// MarshalText implements the text marshaller method.
func (p Prefix) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements the text unmarshaller method.
func (p *Prefix) UnmarshalText(text []byte) error {
	parsed, err := ParsePrefix(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// PrefixSet is a bitmask over Prefixes. Accumulation is plain bitwise OR,
// prefixes are only ever added.
type PrefixSet uint8

// Has reports whether the set contains p.
func (s PrefixSet) Has(p Prefix) bool {
	return s&PrefixSet(p) != 0
}

// Names expands the set into prefix names in bit order.
func (s PrefixSet) Names() []string {
	var names []string
	for bit := Prefix(1); bit != 0; bit <<= 1 {
		if !s.Has(bit) {
			continue
		}
		if name, ok := prefixNames[bit]; ok {
			names = append(names, name)
		}
	}
	return names
}

// String converts the set to a string representation for logging.
func (s PrefixSet) String() string {
	return "[" + strings.Join(s.Names(), "|") + "]"
}
