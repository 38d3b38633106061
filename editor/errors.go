package editor

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by resolution and the builder.
var (
	// ErrNoEditorFound means every resolution source was exhausted.
	ErrNoEditorFound = errors.New("no editor found: set $VISUAL or $EDITOR, or install a supported editor")

	// ErrNoFileSpecified means the builder was opened without a file.
	ErrNoFileSpecified = errors.New("no file specified: use File() to set a file path")

	// ErrInvalidPosition means a line or column was given as 0; both are
	// 1-indexed.
	ErrInvalidPosition = errors.New("invalid position: line and column numbers must be >= 1")
)

// NotFoundError reports that an explicitly requested editor binary is not
// installed or not in PATH.
type NotFoundError struct {
	Binary string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("editor not found: %q is not installed or not in PATH", e.Binary)
}

// SpawnError reports that the editor process could not be started.
type SpawnError struct {
	Binary string
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start editor %q: %v", e.Binary, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError reports that the editor ran but exited with a non-zero status.
type ExitError struct {
	Binary string
	Status int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("editor %q exited with status %d", e.Binary, e.Status)
}

// TerminatedError reports that the editor process was killed by a signal.
type TerminatedError struct {
	Binary string
}

func (e *TerminatedError) Error() string {
	return fmt.Sprintf("editor %q was terminated by signal", e.Binary)
}

// ConfigError reports a malformed caller-supplied configuration, e.g. an
// unrecognized editor kind name in a config file.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid editor configuration: %s", e.Message)
}

// IsEditorNotFound reports whether err means an editor could not be found,
// either because resolution was exhausted or a pinned binary is absent.
func IsEditorNotFound(err error) bool {
	var nf *NotFoundError
	return errors.Is(err, ErrNoEditorFound) || errors.As(err, &nf)
}

// IsEditorFailed reports whether err means the editor process failed: it
// could not be started, exited non-zero, or was killed.
func IsEditorFailed(err error) bool {
	var (
		spawn *SpawnError
		exit  *ExitError
		term  *TerminatedError
	)
	return errors.As(err, &spawn) || errors.As(err, &exit) || errors.As(err, &term)
}

// IsInvalidConfig reports whether err stems from malformed configuration.
func IsInvalidConfig(err error) bool {
	var cfg *ConfigError
	return errors.As(err, &cfg)
}
