package compat

// Table holds, for every feature and engine, the version ranges during which
// the engine supported the feature. Built once from curated data, read-only
// afterwards.
type Table map[Feature]map[Engine][]VersionRange

// PrefixRequirement states that an engine demands a vendor prefix on some
// property for versions strictly older than WithoutPrefix. A nil
// WithoutPrefix keeps the demand open-ended. Engines drop and occasionally
// reinstate prefixes over their history, so the table is authoritative and
// nothing is inferred from version ordering.
type PrefixRequirement struct {
	Engine        Engine
	Prefix        Prefix
	WithoutPrefix *Version
}

// PrefixTable lists vendor prefix demands per CSS property. Built once from
// curated data, read-only afterwards.
type PrefixTable map[string][]PrefixRequirement

// Constraints describes the caller's targets: one minimum version per
// engine, meaning "this version or anything newer". Engines left out impose
// nothing.
type Constraints map[Engine]Version
