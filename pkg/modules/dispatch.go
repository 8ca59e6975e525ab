package modules

import (
	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/logging"
)

// Result records the outcome of one module run
type Result struct {
	// Module is the module's name
	Module string

	// Err is nil on success. A declined confirmation shows up here
	// as ErrConfirmationDeclined, which callers may treat as a skip
	// rather than a failure.
	Err error
}

// Declined reports whether the module stopped because the user
// declined a confirmation
func (r Result) Declined() bool {
	return errors.IsErrorCode(r.Err, errors.ErrConfirmationDeclined)
}

// Dispatch runs the named modules in order. An empty names slice runs
// every registered module. A failing module does not stop the others;
// each outcome lands in its own Result.
func Dispatch(ctx *Context, names []string) ([]Result, error) {
	logger := logging.GetLogger("modules")

	if len(names) == 0 {
		names = Names()
	}

	// Validate everything up front so a typo doesn't run half the list
	for _, name := range names {
		if !Has(name) {
			return nil, errors.Newf(errors.ErrModuleNotFound, "unknown module '%s'", name)
		}
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		m, err := Get(name)
		if err != nil {
			return nil, err
		}

		done := logging.LogOperationStart(logger, "module "+name)
		runErr := m.Run(ctx)
		done()

		if runErr != nil && !errors.IsErrorCode(runErr, errors.ErrConfirmationDeclined) {
			logger.Error().Err(runErr).Str("module", name).Msg("Module failed")
			runErr = errors.Wrapf(runErr, errors.ErrModuleRun, "module '%s' failed", name)
		}
		results = append(results, Result{Module: name, Err: runErr})
	}
	return results, nil
}
