package panicrecovery

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
)

// Always defer this function at the very beginning of main or of a new go-routine.
// Defer it directly, it cannot be called from another deferred function, because
// recover() below will stop working.
// If errp is not nil the panic is also stored there, so the caller still fails.
func RecoverAndLog(logger *zap.Logger, errp *error) {
	if r := recover(); r != nil {
		logger.Error("Recovered from panic.", zap.ByteString("stackTrace", debug.Stack()), zap.Any("panic", r))
		if errp != nil {
			*errp = asError(r)
		}
	}
}

// RecoverAsError turns a panic into an error stored in errp, so fail-fast
// contract violations can be reported by callers that prefer error returns.
// Like RecoverAndLog it must be deferred directly.
func RecoverAsError(errp *error) {
	if r := recover(); r != nil {
		*errp = asError(r)
	}
}

func asError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
