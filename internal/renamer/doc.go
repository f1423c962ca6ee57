// Package renamer applies rename manifests to a directory.
//
// A Processor validates that the target directory exists and holds the
// manifest, takes the directory lock, reads the manifest, and renames every
// pair in file order: forward (transformed → original) or reverse
// (original → transformed). It can delete the manifest once every line has
// been attempted.
//
// Errors come in two tiers. Run-level failures (missing directory, missing or
// unreadable manifest, failed manifest deletion, and lock contention or lock
// setup when locking is enabled) abort the run and are returned as *RunError
// values wrapping one of the Err* markers.
// Per-line rename failures are recorded as Outcome entries in the Report and
// logged; they never stop later lines and never surface as the run error.
//
// Names are joined to the target directory through a go-billy chroot
// filesystem without resolving symlinks. Names that are absolute or climb out
// with `..` fail per line.
package renamer
