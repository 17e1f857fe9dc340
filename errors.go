package sslint

import (
	"errors"
	"fmt"

	"github.com/yacobolo/sslint/internal/preprocess"
)

// FailureKind classifies a per-file failure.
type FailureKind int

const (
	// FailureRead means the file could not be read or was empty.
	FailureRead FailureKind = iota + 1
	// FailureCompile means lessc or sass rejected the file.
	FailureCompile
	// FailureLint means the rule engine could not check the generated CSS.
	FailureLint
	// FailureReconcile means the source map was unusable.
	FailureReconcile
)

func (k FailureKind) String() string {
	switch k {
	case FailureRead:
		return "read"
	case FailureCompile:
		return "compile"
	case FailureLint:
		return "lint"
	case FailureReconcile:
		return "reconcile"
	default:
		return "unknown"
	}
}

// ExitCode is the process exit code this failure maps to.
func (k FailureKind) ExitCode() int {
	if k == FailureRead {
		return ExitReadFailure
	}
	return ExitFileFailure
}

// Exit codes
const (
	ExitOK          = 0
	ExitReadFailure = 1 // unreadable or empty file, or no files at all
	ExitFileFailure = 2 // compile, lint or source map failure
	ExitLintErrors  = 3 // at least one error-severity finding
)

var errEmptyFile = errors.New("could not read file data. Is the file empty?")

// FileError is the single reportable failure for one file.
type FileError struct {
	Kind FailureKind
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message())
}

// Message describes the failure without the file path.
func (e *FileError) Message() string {
	var cerr *preprocess.CompileError
	if errors.As(e.Err, &cerr) {
		return "error parsing: " + cerr.Message
	}

	switch e.Kind {
	case FailureLint:
		return fmt.Sprintf("error linting: %v", e.Err)
	case FailureReconcile:
		return fmt.Sprintf("error mapping positions: %v", e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *FileError) Unwrap() error {
	return e.Err
}
