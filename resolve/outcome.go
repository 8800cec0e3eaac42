package resolve

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/maruel/natural"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v3"

	"cssc/compat"
	"cssc/config"
)

//go:embed report.tmpl
var reportTmpl string

type (
	Target struct {
		Engine  string `json:"engine" yaml:"engine"`
		Display string `json:"display" yaml:"display"`
		Version string `json:"version" yaml:"version"`
	}

	Property struct {
		Property string   `json:"property" yaml:"property"`
		Prefixes []string `json:"prefixes" yaml:"prefixes"`
	}

	// Outcome is the rendered result of one resolution run. Empty sections
	// are omitted from structured output rather than carried as zero values.
	Outcome struct {
		Ref         string     `json:"ref" yaml:"ref"`
		Dataset     string     `json:"dataset" yaml:"dataset"`
		Targets     []Target   `json:"targets" yaml:"targets"`
		Unsupported []string   `json:"unsupported_features,omitempty" yaml:"unsupported_features,omitempty"`
		Prefixed    []Property `json:"prefixed_properties,omitempty" yaml:"prefixed_properties,omitempty"`
	}
)

// displayNames covers engines whose human name is not just the title-cased
// identifier.
var displayNames = map[compat.Engine]string{
	compat.EngineIe:  "Internet Explorer",
	compat.EngineIos: "iOS Safari",
}

func displayName(e compat.Engine) string {
	if name, ok := displayNames[e]; ok {
		return name
	}
	return cases.Title(language.English).String(e.String())
}

func buildOutcome(ref, datasetName string, constraints compat.Constraints, unsupported compat.FeatureSet, required map[string]compat.PrefixSet) *Outcome {
	targets := make([]Target, 0, len(constraints))
	for engine, version := range constraints {
		targets = append(targets, Target{
			Engine:  engine.String(),
			Display: displayName(engine),
			Version: version.String(),
		})
	}
	sort.Slice(targets, func(i, j int) bool {
		return natural.Less(targets[i].Engine, targets[j].Engine)
	})

	properties := make([]string, 0, len(required))
	for property := range required {
		properties = append(properties, property)
	}
	sort.Slice(properties, func(i, j int) bool {
		return natural.Less(properties[i], properties[j])
	})

	prefixed := make([]Property, 0, len(properties))
	for _, property := range properties {
		prefixed = append(prefixed, Property{
			Property: property,
			Prefixes: required[property].Names(),
		})
	}

	return &Outcome{
		Ref:         ref,
		Dataset:     datasetName,
		Targets:     targets,
		Unsupported: unsupported.Names(),
		Prefixed:    prefixed,
	}
}

// Render serializes the outcome in the requested format.
func Render(o *Outcome, format config.OutputFmt) ([]byte, error) {
	switch format {
	case config.OutputFmtText:
		return renderText(o)
	case config.OutputFmtJson:
		data, err := json.MarshalIndent(o, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("unable to marshal result to json: %w", err)
		}
		return append(data, '\n'), nil
	case config.OutputFmtYaml:
		data, err := yaml.Marshal(o)
		if err != nil {
			return nil, fmt.Errorf("unable to marshal result to yaml: %w", err)
		}
		return data, nil
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

func renderText(o *Outcome) ([]byte, error) {
	tmpl, err := template.New("report").Funcs(sprig.FuncMap()).Parse(reportTmpl)
	if err != nil {
		return nil, fmt.Errorf("unable to parse report template: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, o); err != nil {
		return nil, fmt.Errorf("unable to execute report template: %w", err)
	}
	return buf.Bytes(), nil
}
