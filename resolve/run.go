// Package resolve implements the resolve and check subcommands: it turns
// command line targets into resolver constraints, runs both compatibility
// queries over the active dataset, applies configured feature overrides and
// renders the result.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssc/compat"
	"cssc/config"
	"cssc/dataset"
	"cssc/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("resolve")

	ref := uuid.Must(uuid.NewV7()).String()

	tokens := cmd.Args().Slice()
	profile := cmd.String("profile")
	if len(profile) > 0 {
		if len(tokens) > 0 {
			return errors.New("explicit targets and --profile cannot be combined")
		}
		var ok bool
		if tokens, ok = env.Cfg.Resolve.Profiles[profile]; !ok {
			return fmt.Errorf("profile '%s' is not defined in configuration", profile)
		}
	}
	if len(tokens) == 0 {
		return errors.New("no targets have been specified")
	}

	constraints, err := ParseTargets(tokens)
	if err != nil {
		return fmt.Errorf("unable to parse targets: %w", err)
	}
	for engine := range constraints {
		if !engine.IsBrowser() {
			log.Debug("Target does not render CSS, constraint will not affect the result", zap.Stringer("engine", engine))
		}
	}

	env.Overwrite = cmd.Bool("overwrite")

	datasetName := "embedded"
	tables := dataset.Default()
	if path := cmd.String("dataset"); len(path) > 0 || len(env.Cfg.Resolve.DatasetPath) > 0 {
		if len(path) == 0 {
			path = env.Cfg.Resolve.DatasetPath
		}
		if tables, err = dataset.Load(path); err != nil {
			return fmt.Errorf("unable to load dataset: %w", err)
		}
		datasetName = path
		env.Rpt.Store(filepath.Join("dataset", filepath.Base(path)), path)
	}

	log.Info("Resolution starting", zap.String("ref_id", ref), zap.Strings("targets", tokens), zap.String("dataset", datasetName))
	defer func(start time.Time) {
		log.Info("Resolution completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	unsupported := tables.Features.UnsupportedFeatures(constraints)

	overrides, mask, err := overrideMasks(&env.Cfg.Resolve.Overrides)
	if err != nil {
		return fmt.Errorf("unable to apply configured overrides: %w", err)
	}
	unsupported = compat.ApplyOverrides(unsupported, overrides, mask)

	required := tables.Prefixes.RequiredPrefixes(constraints)

	log.Debug("Resolution results",
		zap.Stringer("unsupported", unsupported), zap.Int("prefixed_properties", len(required)))

	outcome := buildOutcome(ref, datasetName, constraints, unsupported, required)

	format := env.Cfg.Resolve.Format
	if f := cmd.String("format"); len(f) > 0 {
		if format, err = config.ParseOutputFmt(f); err != nil {
			return fmt.Errorf("unable to parse requested format: %w", err)
		}
	}

	data, err := Render(outcome, format)
	if err != nil {
		return fmt.Errorf("unable to render result: %w", err)
	}
	env.Rpt.StoreData("outcome"+format.Ext(), data)

	tmplText := cmd.String("output")
	if len(tmplText) == 0 {
		tmplText = env.Cfg.Resolve.OutputNameTemplate
	}
	if len(tmplText) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}

	outputName, err := buildOutputPath(tmplText, Values{
		Context:   string(config.OutputNameTemplateFieldName),
		Profile:   profile,
		Format:    format.String(),
		Ext:       format.Ext(),
		Ref:       ref,
		Timestamp: time.Now().Format("20060102-150405"),
	}, env.Cfg.Resolve.FileNameTransliterate)
	if err != nil {
		return fmt.Errorf("unable to prepare output filename: %w", err)
	}

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if dir := filepath.Dir(outputName); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputName, data, 0644); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}

	log.Info("Result written", zap.String("file", outputName))
	return nil
}

// overrideMasks converts configured feature name lists into the bitmask pair
// ApplyOverrides consumes. A feature named in both lists ends up forced
// unsupported.
func overrideMasks(conf *config.OverridesConfig) (overrides, mask compat.FeatureSet, err error) {
	var errs error

	for _, name := range conf.ForceSupported {
		f, err := compat.ParseFeature(name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		mask |= compat.FeatureSet(f)
	}
	for _, name := range conf.ForceUnsupported {
		f, err := compat.ParseFeature(name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		mask |= compat.FeatureSet(f)
		overrides |= compat.FeatureSet(f)
	}
	return overrides, mask, errs
}
