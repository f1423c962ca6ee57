//go:build unix

package renamer

import (
	"errors"

	"golang.org/x/sys/unix"
)

func platformReason(err error) (Reason, bool) {
	switch {
	case errors.Is(err, unix.EXDEV):
		return ReasonCrossDevice, true
	case errors.Is(err, unix.EISDIR), errors.Is(err, unix.ENOTDIR), errors.Is(err, unix.EINVAL),
		errors.Is(err, unix.ENAMETOOLONG), errors.Is(err, unix.EBUSY):
		return ReasonInvalid, true
	case errors.Is(err, unix.EROFS):
		return ReasonPermission, true
	default:
		return ReasonNone, false
	}
}
