// Package fileutil mounts target directories as scoped filesystems and answers
// the small existence questions the rename engine asks about them.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Mount returns a filesystem rooted at dir. Names are joined to the root as
// text and symlinks are never resolved, so renaming a link moves the link
// itself. Callers check names with IsLocal first. The directory is not
// required to exist.
func Mount(dir string) (billy.Filesystem, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve absolute path for %q: %w", dir, err)
	}
	return osfs.New(abs, osfs.WithChrootOS()), nil
}

// IsLocal reports whether name is a non-empty relative path that does not
// climb out of the filesystem root. Only the text of name is checked.
func IsLocal(name string) bool {
	return filepath.IsLocal(name)
}

// Exists reports whether name can be stat'ed on fsys. Any stat failure counts
// as absent.
func Exists(fsys billy.Filesystem, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

// IsDir reports whether name exists on fsys and is a directory.
func IsDir(fsys billy.Filesystem, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}

// ParentDir returns the directory part of name relative to the filesystem
// root, or "" when name sits directly in the root.
func ParentDir(name string) string {
	dir := filepath.Dir(filepath.Clean(name))
	if dir == "." || dir == string(os.PathSeparator) {
		return ""
	}
	return dir
}
