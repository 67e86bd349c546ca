package classcss

import (
	"errors"
	"fmt"
)

// Sentinel errors for resolver faults. Resolver implementations wrap these
// so the orchestrator can classify failures without knowing the engine.
var (
	// ErrContextSecurity reports that the styling environment refused to
	// provide computed values (for example a cross-origin restriction).
	ErrContextSecurity = errors.New("styling context denied access to computed styles")
	// ErrContextConstruction reports that the ephemeral styling context
	// could not be created or attached.
	ErrContextConstruction = errors.New("styling context could not be created")
	// ErrStyleComputation reports a fault raised while resolving styles.
	ErrStyleComputation = errors.New("style computation failed")
)

// Guard rejection messages. These surface verbatim on Result.Err.
const (
	msgUnsafeContent    = "input contains potentially unsafe content and cannot be converted"
	msgTooManySpecials  = "input contains too many special characters"
	msgUnknownError     = "an unexpected error occurred during conversion"
	msgSecurityError    = "the styling environment refused access to computed styles"
	msgContextError     = "the styling context could not be created"
	msgComputationError = "an error occurred while computing styles"
)

func msgInputTooLong(limit int) string {
	return fmt.Sprintf("input exceeds the maximum length of %d characters", limit)
}

// classifyError maps a resolver fault onto the error taxonomy. Unrecognized
// errors get a generic message rather than leaking their representation.
func classifyError(err error) string {
	switch {
	case errors.Is(err, ErrContextSecurity):
		return msgSecurityError
	case errors.Is(err, ErrContextConstruction):
		return msgContextError
	case errors.Is(err, ErrStyleComputation):
		return msgComputationError
	default:
		return msgUnknownError
	}
}
