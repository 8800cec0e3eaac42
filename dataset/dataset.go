// Package dataset builds the immutable compatibility tables the compat
// package queries. The curated data lives in a YAML document with two
// top level mappings, features and prefixes; an embedded copy provides the
// default tables and a user supplied file of the same shape can replace it.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"cssc/compat"
)

//go:embed dataset.yaml
var embedded []byte

// Embedded returns a copy of the default dataset document shipped with the
// program.
func Embedded() []byte {
	return bytes.Clone(embedded)
}

// Tables bundles both immutable lookup tables built from one dataset.
type Tables struct {
	Features compat.Table
	Prefixes compat.PrefixTable
}

type (
	rangeSpec struct {
		Start compat.Version  `yaml:"start"`
		End   *compat.Version `yaml:"end,omitempty"`
	}

	requirementSpec struct {
		Engine        compat.Engine   `yaml:"engine"`
		Prefix        compat.Prefix   `yaml:"prefix"`
		WithoutPrefix *compat.Version `yaml:"without-prefix,omitempty"`
	}

	// document mirrors the dataset YAML. Feature, engine and property names
	// stay strings here and are resolved during build so that every bad name
	// can be reported, not just the first one.
	document struct {
		Features map[string]map[string][]rangeSpec `yaml:"features"`
		Prefixes map[string][]requirementSpec      `yaml:"prefixes"`
	}
)

// Parse decodes and validates a dataset document, returning ready to use
// tables. Validation does not stop at the first problem, everything wrong
// with the data comes back in one accumulated error.
func Parse(data []byte) (*Tables, error) {
	// only fields we define are acceptable
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return doc.build()
}

// Load reads a dataset file and builds tables from it.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	tables, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset from '%s': %w", path, err)
	}
	return tables, nil
}

func (d *document) build() (*Tables, error) {
	var errs error

	features := make(compat.Table, len(d.Features))
	for name, engines := range d.Features {
		feature, err := compat.ParseFeature(name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		// an empty engine mapping is legal and meaningful: the feature has no
		// engine driven support at all (the inline-style sentinel looks like
		// this). Missing engines are never filled in, their absence is data.
		entry := make(map[compat.Engine][]compat.VersionRange, len(engines))
		for engineName, ranges := range engines {
			engine, err := compat.ParseEngine(engineName)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("feature %s: %w", name, err))
				continue
			}
			if len(ranges) == 0 {
				errs = multierr.Append(errs, fmt.Errorf("feature %s: engine %s has no version ranges", name, engine))
				continue
			}
			converted := make([]compat.VersionRange, 0, len(ranges))
			for _, r := range ranges {
				if r.End != nil && compat.Compare(*r.End, r.Start) <= 0 {
					errs = multierr.Append(errs, fmt.Errorf("feature %s: engine %s has range end %s not after start %s", name, engine, r.End, r.Start))
					continue
				}
				converted = append(converted, compat.VersionRange{Start: r.Start, End: r.End})
			}
			entry[engine] = converted
		}
		features[feature] = entry
	}

	prefixes := make(compat.PrefixTable, len(d.Prefixes))
	for property, specs := range d.Prefixes {
		if len(specs) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("property %s has no prefix requirements", property))
			continue
		}
		requirements := make([]compat.PrefixRequirement, 0, len(specs))
		for _, s := range specs {
			if s.Prefix == compat.NoPrefix {
				errs = multierr.Append(errs, fmt.Errorf("property %s: requirement for %s carries no prefix", property, s.Engine))
				continue
			}
			requirements = append(requirements, compat.PrefixRequirement{
				Engine:        s.Engine,
				Prefix:        s.Prefix,
				WithoutPrefix: s.WithoutPrefix,
			})
		}
		prefixes[property] = requirements
	}

	if errs != nil {
		return nil, errs
	}
	return &Tables{Features: features, Prefixes: prefixes}, nil
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the process wide tables built from the embedded dataset.
// Construction happens once; the result is read-only and safe to share.
func Default() *Tables {
	defaultOnce.Do(func() {
		tables, err := Parse(embedded)
		if err != nil {
			// this should never happen - embedded data is checked by tests
			panic(fmt.Sprintf("embedded dataset is broken: %v", err))
		}
		defaultTables = tables
	})
	return defaultTables
}
