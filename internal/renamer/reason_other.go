//go:build !unix

package renamer

func platformReason(error) (Reason, bool) {
	return ReasonNone, false
}
