package renamer

import (
	"fmt"
	"os"

	"remanifest/internal/manifest"
	"remanifest/internal/textutil"
)

// Options is the immutable configuration of one run.
type Options struct {
	Directory      string
	Reverse        bool
	DeleteManifest bool

	ManifestName  string
	Delimiter     string
	Normalization textutil.Form
}

func (o Options) withDefaults() Options {
	if o.ManifestName == "" {
		o.ManifestName = manifest.DefaultFileName
	}
	if o.Delimiter == "" {
		o.Delimiter = manifest.DefaultDelimiter
	}
	if o.Normalization == "" {
		o.Normalization = textutil.FormNone
	}
	return o
}

// ResolveDirectory picks the target directory from the positional arguments
// left after flag parsing. The first positional is used verbatim; without one
// the current working directory is used.
func ResolveDirectory(args []string) (string, error) {
	return resolveDirectory(args, os.Getwd)
}

func resolveDirectory(args []string, getwd func() (string, error)) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	wd, err := getwd()
	if err != nil {
		return "", runError(KindResolveDirectory, "", fmt.Errorf("get working directory: %w", err))
	}
	return wd, nil
}
