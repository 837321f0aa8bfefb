/*
Package errors provides semantic error types for crew lookups.

The package defines the three failure classes a lookup can end in, each checkable
with the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound     = errors.New("crew not found")
	    ErrInvalidInput = errors.New("invalid input")
	    ErrBackend      = errors.New("storage backend failure")
	)

Usage:

	crew, err := svc.LookupCrew(ctx, q)
	if err != nil {
	    switch {
	    case errors.IsValidationError(err):
	        // 400
	    case errors.IsNotFound(err):
	        // 404
	    default:
	        // 500
	    }
	}

	// Create typed errors
	err := errors.NewNotFoundError(603, "director")
	err := errors.NewValidationError("movieId", "must be an integer")
	err := errors.NewBackendError("Query", awsErr)

BackendError carries a BackendKind derived from the smithy API error code
(throttled, access denied, missing table, unavailable, timeout, failure).
*/
package errors
