package classcss

import (
	"fmt"

	"go.uber.org/multierr"
)

// Resolver computes the resolved style-property values for a class string,
// as if the classes were applied to an unstyled block-level element. The
// returned map is keyed by CSS property name. Implementations must be
// deterministic for a given class string and environment.
//
// Resolvers backed by a real rendering engine should wrap faults in the
// package sentinel errors (ErrContextSecurity, ErrContextConstruction,
// ErrStyleComputation) so the orchestrator can classify them.
type Resolver interface {
	Resolve(classes string) (map[string]string, error)
}

// ContextResolver is implemented by resolvers whose styling context must be
// set up and torn down around each resolution, such as an engine that
// attaches an ephemeral element to a document. Release is guaranteed to run
// on every exit path of an extraction, including panics raised during
// Resolve itself.
type ContextResolver interface {
	Resolver
	// Acquire constructs the ephemeral styling context.
	Acquire() error
	// Release tears the context down. It must be safe to call after a
	// failed or panicked Resolve.
	Release() error
}

// extract invokes the resolver with the styling context lifecycle managed
// around it. Panics inside resolution are recovered and reported as style
// computation faults; teardown errors join the primary error.
func extract(r Resolver, classes string) (props map[string]string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			props = nil
			err = multierr.Append(err, fmt.Errorf("%w: %v", ErrStyleComputation, rec))
		}
	}()

	if cr, ok := r.(ContextResolver); ok {
		if aerr := cr.Acquire(); aerr != nil {
			return nil, wrapAcquireError(aerr)
		}
		defer func() {
			err = multierr.Append(err, cr.Release())
		}()
	}

	props, err = r.Resolve(classes)
	if err != nil {
		return nil, err
	}
	return props, nil
}

// wrapAcquireError classifies a context-setup failure as a construction
// fault unless the resolver already tagged it more specifically.
func wrapAcquireError(err error) error {
	if classifyError(err) != msgUnknownError {
		return err
	}
	return fmt.Errorf("%w: %v", ErrContextConstruction, err)
}
