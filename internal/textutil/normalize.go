package textutil

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Form selects the Unicode normalization applied to manifest names.
type Form string

const (
	FormNone Form = "none"
	FormNFC  Form = "nfc"
	FormNFD  Form = "nfd"
)

// ParseForm maps a configuration value onto a Form. Empty input yields FormNone.
func ParseForm(value string) (Form, error) {
	switch Form(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormNone:
		return FormNone, nil
	case FormNFC:
		return FormNFC, nil
	case FormNFD:
		return FormNFD, nil
	default:
		return FormNone, fmt.Errorf("unsupported normalization form %q (want none, nfc or nfd)", value)
	}
}

// Normalize rewrites s into form. Unknown forms behave like FormNone.
func Normalize(s string, form Form) string {
	switch form {
	case FormNFC:
		return norm.NFC.String(s)
	case FormNFD:
		return norm.NFD.String(s)
	default:
		return s
	}
}
