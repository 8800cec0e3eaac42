package compat

import (
	"fmt"
	"strings"
)

// Feature is a single CSS capability gated by engine support. Every feature
// owns a fixed bit, assigned explicitly so that adding a feature can never
// silently renumber the existing ones, and any subset packs into a
// FeatureSet.
type Feature uint32

const (
	FeatureHexRGBA                 Feature = 1 << 0
	FeatureRebeccaPurple           Feature = 1 << 1
	FeatureModernRGBHSL            Feature = 1 << 2
	FeatureInsetProperty           Feature = 1 << 3
	FeatureNesting                 Feature = 1 << 4
	FeatureHWB                     Feature = 1 << 5
	FeatureDoublePositionGradients Feature = 1 << 6

	// FeatureInlineStyle has no engine history at all: it is switched on and
	// off by the caller alone and resolution never reports it.
	FeatureInlineStyle Feature = 1 << 7
)

// featureNames maps features to the names used in datasets, configuration
// and reports.
var featureNames = map[Feature]string{
	FeatureHexRGBA:                 "hex-rgba",
	FeatureRebeccaPurple:           "rebeccapurple",
	FeatureModernRGBHSL:            "modern-rgb-hsl",
	FeatureInsetProperty:           "inset-property",
	FeatureNesting:                 "nesting",
	FeatureHWB:                     "hwb",
	FeatureDoublePositionGradients: "double-position-gradients",
	FeatureInlineStyle:             "inline-style",
}

// String implements the Stringer interface.
func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Feature(%#x)", uint32(f))
}

// ParseFeature attempts to convert a string to a Feature.
func ParseFeature(name string) (Feature, error) {
	for f, n := range featureNames {
		if n == name {
			return f, nil
		}
	}
	return Feature(0), fmt.Errorf("unknown feature %q", name)
}

// FeatureNames returns names of all known features in bit order.
func FeatureNames() []string {
	names := make([]string, 0, len(featureNames))
	for bit := Feature(1); bit != 0; bit <<= 1 {
		if name, ok := featureNames[bit]; ok {
			names = append(names, name)
		}
	}
	return names
}

// FeatureSet is a bitmask over Features.
type FeatureSet uint32

// Has reports whether the set contains f.
func (s FeatureSet) Has(f Feature) bool {
	return s&FeatureSet(f) != 0
}

// Names expands the set into feature names in bit order.
func (s FeatureSet) Names() []string {
	var names []string
	for bit := Feature(1); bit != 0; bit <<= 1 {
		if !s.Has(bit) {
			continue
		}
		if name, ok := featureNames[bit]; ok {
			names = append(names, name)
		}
	}
	return names
}

// String converts the set to a string representation for logging.
func (s FeatureSet) String() string {
	return "[" + strings.Join(s.Names(), "|") + "]"
}

// ApplyOverrides replaces the masked bits of set with the matching bits of
// overrides, leaving every bit outside mask untouched. This is how caller
// decisions win over computed results feature by feature.
func ApplyOverrides(set, overrides, mask FeatureSet) FeatureSet {
	return set&^mask | overrides&mask
}
