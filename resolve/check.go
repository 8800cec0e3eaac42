package resolve

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssc/dataset"
	"cssc/state"
)

// Check validates a dataset file, or the embedded dataset when no argument
// is given, reporting every accumulated problem.
func Check(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many datasets", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	source, data := "embedded", dataset.Embedded()
	if path := cmd.Args().Get(0); len(path) > 0 {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return fmt.Errorf("unable to read dataset file: %w", err)
		}
		source = path
		env.Rpt.Store("checked-dataset.yaml", path)
	}

	if _, err := dataset.Parse(data); err != nil {
		problems := multierr.Errors(err)
		for _, problem := range problems {
			log.Error("Dataset problem", zap.Error(problem))
		}
		return fmt.Errorf("dataset '%s' is not valid (%d problems)", source, len(problems))
	}

	log.Info("Dataset is valid", zap.String("dataset", source))
	return nil
}
