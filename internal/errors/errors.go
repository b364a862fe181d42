package errors

import "errors"

// Configuration errors indicate the config document could not be used.
var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrConfigInvalid indicates the configuration file could not be decoded.
	ErrConfigInvalid = errors.New("configuration file is invalid")

	// ErrConfigFieldMissing indicates a required configuration field is empty.
	ErrConfigFieldMissing = errors.New("required configuration field is missing")

	// ErrUnsupportedEncoding indicates the requested character set is unknown.
	ErrUnsupportedEncoding = errors.New("unsupported character encoding")

	// ErrUnsupportedFormat indicates the configuration file extension is unknown.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
)

// Logging errors are recovered inside the logger and never reach callers.
var (
	// ErrSinkWrite indicates the file sink failed to persist a record.
	ErrSinkWrite = errors.New("failed to write log record")
)

// Lifecycle errors indicate the run could not complete normally.
var (
	// ErrHookFailed indicates an init, main or term hook returned an error or panicked.
	ErrHookFailed = errors.New("lifecycle hook failed")

	// ErrTerminated indicates the process received a termination signal.
	ErrTerminated = errors.New("terminated by signal")
)

// API errors indicate failures talking to the remote platform.
var (
	// ErrAuthFailed indicates the credentials were rejected.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRateLimited indicates the rate limit was exhausted and retries gave up.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUserNotFound indicates the requested account does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUnexpectedResponse indicates the API answered with an unexpected status.
	ErrUnexpectedResponse = errors.New("unexpected API response")
)

// Output errors indicate the result tables could not be written.
var (
	// ErrNoOutputPath indicates an output path was not configured.
	ErrNoOutputPath = errors.New("output path not configured")
)
