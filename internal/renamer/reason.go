package renamer

import (
	"errors"
	"io/fs"
)

// Reason is a short classification of a per-line rename failure.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonNotFound    Reason = "not_found"
	ReasonExists      Reason = "exists"
	ReasonPermission  Reason = "permission"
	ReasonCrossDevice Reason = "cross_device"
	ReasonInvalid     Reason = "invalid"
	ReasonOther       Reason = "other"
)

// Classify maps an OS-level rename error onto a Reason.
func Classify(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	if reason, ok := platformReason(err); ok {
		return reason
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ReasonNotFound
	case errors.Is(err, fs.ErrExist):
		return ReasonExists
	case errors.Is(err, fs.ErrPermission):
		return ReasonPermission
	case errors.Is(err, fs.ErrInvalid):
		return ReasonInvalid
	default:
		return ReasonOther
	}
}
