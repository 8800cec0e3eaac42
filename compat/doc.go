// Package compat answers two questions about a set of target engines: which
// CSS features the targets cannot rely on and which vendor prefixes they
// still require.
//
// The package operates over two curated tables. Table records, per feature
// and engine, the version ranges during which the engine supported the
// feature. PrefixTable records, per CSS property, which engines demand a
// vendor prefix and, when known, the first version that stopped demanding
// it. Tables are built once (see the dataset package) and never mutated, so
// any number of resolutions may share them without synchronization.
//
// A caller describes its targets with Constraints, one minimum version per
// engine, meaning "this version or anything newer". Resolution is a pure
// fold over the tables:
//
//	unsupported := tables.Features.UnsupportedFeatures(constraints)
//	if unsupported.Has(compat.FeatureNesting) {
//	    // nested rules have to be flattened
//	}
//	for property, prefixes := range tables.Prefixes.RequiredPrefixes(constraints) {
//	    // emit prefixed declarations next to the plain one
//	}
//
// Constraints for engines that do not render CSS (node, deno) are accepted
// and ignored. A (feature, engine) pair absent from Table means the engine
// has no supporting version at all; the data deliberately does not
// distinguish "never shipped" from "history unknown".
package compat
