// Package errors provides typed error values for followscraper.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Configuration errors: file missing or unusable (ErrConfigNotFound, ErrConfigInvalid)
//   - Logging errors: recovered locally by the logger (ErrSinkWrite)
//   - Lifecycle errors: hook failures and signals (ErrHookFailed, ErrTerminated)
//   - API errors: remote failures (ErrAuthFailed, ErrRateLimited, ErrUserNotFound)
//   - Output errors: result tables (ErrNoOutputPath)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("loading %s: %w", path, errors.ErrConfigNotFound)
//
// Handle errors at the boundary:
//
//	if errors.Is(err, kerrors.ErrConfigNotFound) {
//	    // Show user-friendly message
//	}
package errors
