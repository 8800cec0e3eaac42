package compat

// support is the outcome of a single (feature, engine) table lookup.
type support int

const (
	supportYes support = iota
	supportNo
	// supportUnknown means the table has no entry for the pair. Resolution
	// treats it exactly like supportNo; the named value exists so the
	// missing-entry default cannot be inverted by an accidental map-miss
	// fallthrough.
	supportUnknown
)

// supportFor reports how the table sees feature on engine at version v.
func (t Table) supportFor(f Feature, e Engine, v Version) support {
	ranges, ok := t[f][e]
	if !ok {
		return supportUnknown
	}
	if IsSupported(ranges, v) {
		return supportYes
	}
	return supportNo
}

// UnsupportedFeatures folds constraints over the table and reports every
// feature that at least one constrained browser engine cannot guarantee at
// its minimum version. An engine missing from a feature's entry counts
// against the feature just like an entry whose ranges exclude the minimum
// version. Engines absent from constraints impose nothing, and there is no
// per-engine breakdown in the result.
func (t Table) UnsupportedFeatures(constraints Constraints) FeatureSet {
	var unsupported FeatureSet
	for feature := range t {
		if feature == FeatureInlineStyle {
			// switched by the caller alone, engine history does not apply
			continue
		}
		for engine, minVersion := range constraints {
			if !engine.IsBrowser() {
				continue
			}
			if t.supportFor(feature, engine, minVersion) != supportYes {
				unsupported |= FeatureSet(feature)
			}
		}
	}
	return unsupported
}

// RequiredPrefixes reports, per CSS property, the vendor prefixes the
// constrained browser engines still demand. A prefix is demanded when the
// requirement is open-ended or when its WithoutPrefix version is strictly
// newer than the engine's minimum: the target may then still be an older
// release that needs the prefix. Properties that need no prefix under any
// constraint are left out of the result entirely.
func (p PrefixTable) RequiredPrefixes(constraints Constraints) map[string]PrefixSet {
	required := make(map[string]PrefixSet)
	for property, requirements := range p {
		var prefixes PrefixSet
		for engine, minVersion := range constraints {
			if !engine.IsBrowser() {
				continue
			}
			for _, req := range requirements {
				if req.Engine != engine {
					continue
				}
				if req.WithoutPrefix == nil || Compare(*req.WithoutPrefix, minVersion) > 0 {
					prefixes |= PrefixSet(req.Prefix)
				}
			}
		}
		if prefixes != 0 {
			required[property] = prefixes
		}
	}
	return required
}
