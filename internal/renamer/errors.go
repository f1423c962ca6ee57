package renamer

import (
	"errors"

	"remanifest/internal/runlock"
)

// Markers for run-level failures. Every error returned by Run wraps exactly one
// of them; match with errors.Is.
var (
	ErrResolveDirectory = errors.New("cannot determine target directory")
	ErrPathNotFound     = errors.New("the path does not exist")
	ErrManifestMissing  = errors.New("manifest file not found")
	ErrManifestRead     = errors.New("error reading manifest file")
	ErrManifestDelete   = errors.New("error deleting manifest file")
	ErrLocked           = runlock.ErrLocked
	ErrLockSetup        = errors.New("cannot set up directory lock")
)

// Kind names a run-level failure class.
type Kind string

const (
	KindResolveDirectory Kind = "resolve_directory"
	KindPathNotFound     Kind = "path_not_found"
	KindManifestMissing  Kind = "manifest_missing"
	KindManifestRead     Kind = "manifest_read"
	KindManifestDelete   Kind = "manifest_delete"
	KindLocked           Kind = "locked"
	KindLockSetup        Kind = "lock_setup"
)

func (k Kind) marker() error {
	switch k {
	case KindResolveDirectory:
		return ErrResolveDirectory
	case KindPathNotFound:
		return ErrPathNotFound
	case KindManifestMissing:
		return ErrManifestMissing
	case KindManifestRead:
		return ErrManifestRead
	case KindManifestDelete:
		return ErrManifestDelete
	case KindLocked:
		return ErrLocked
	case KindLockSetup:
		return ErrLockSetup
	default:
		return nil
	}
}

// RunError is a run-level failure: it aborts the run and sets a non-zero exit
// status. Path is the directory or manifest the failure concerns.
type RunError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *RunError) Error() string {
	msg := string(e.Kind)
	if marker := e.Kind.marker(); marker != nil {
		msg = marker.Error()
	}
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil && !errors.Is(e.Err, e.Kind.marker()) {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind marker and the underlying cause.
func (e *RunError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if marker := e.Kind.marker(); marker != nil {
		errs = append(errs, marker)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the run-level kind carried by err, or "" when err is not a
// RunError.
func KindOf(err error) Kind {
	var runErr *RunError
	if errors.As(err, &runErr) {
		return runErr.Kind
	}
	return ""
}

func runError(kind Kind, path string, err error) *RunError {
	return &RunError{Kind: kind, Path: path, Err: err}
}
