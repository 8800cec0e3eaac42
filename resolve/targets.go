package resolve

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"cssc/compat"
)

// ParseTargets converts command line "engine=version" tokens into resolver
// constraints. All tokens are checked, every problem is reported.
func ParseTargets(tokens []string) (compat.Constraints, error) {
	var errs error

	constraints := make(compat.Constraints, len(tokens))
	for _, token := range tokens {
		name, value, found := strings.Cut(token, "=")
		if !found || len(name) == 0 || len(value) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("malformed target '%s', expected engine=version", token))
			continue
		}

		engine, err := compat.ParseEngine(name)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("target '%s': %w", token, err))
			continue
		}
		version, err := compat.ParseVersion(value)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("target '%s': %w", token, err))
			continue
		}

		if _, exists := constraints[engine]; exists {
			errs = multierr.Append(errs, fmt.Errorf("target engine %s specified more than once", engine))
			continue
		}
		constraints[engine] = version
	}

	if errs != nil {
		return nil, errs
	}
	return constraints, nil
}
