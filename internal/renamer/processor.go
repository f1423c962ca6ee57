package renamer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"

	"remanifest/internal/fileutil"
	"remanifest/internal/logging"
	"remanifest/internal/manifest"
	"remanifest/internal/runlock"
	"remanifest/internal/textutil"
)

// MountFunc opens the target directory as a filesystem.
type MountFunc func(dir string) (billy.Filesystem, error)

// Processor applies manifests to directories.
type Processor struct {
	logger  *slog.Logger
	mount   MountFunc
	lockDir string
}

// Option customizes a Processor.
type Option func(*Processor)

// WithLockDir enables per-directory locking with lock files kept in dir.
// An empty dir disables locking.
func WithLockDir(dir string) Option {
	return func(p *Processor) {
		p.lockDir = dir
	}
}

// WithMount replaces the filesystem used to access target directories.
func WithMount(fn MountFunc) Option {
	return func(p *Processor) {
		if fn != nil {
			p.mount = fn
		}
	}
}

// New constructs a Processor. A nil logger discards output.
func New(logger *slog.Logger, opts ...Option) *Processor {
	p := &Processor{
		logger: logging.NewComponentLogger(logger, "renamer"),
		mount:  fileutil.Mount,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run validates the directory and manifest, renames every manifest line in
// order and optionally deletes the manifest. Per-line failures are recorded in
// the report and never stop the run; the returned error is always a *RunError
// or a context error raised before the first rename.
func (p *Processor) Run(ctx context.Context, opts Options) (*Report, error) {
	opts = opts.withDefaults()
	started := time.Now()

	runID, ok := logging.RunIDFromContext(ctx)
	if !ok {
		ctx = logging.WithRunID(ctx, "")
		runID, _ = logging.RunIDFromContext(ctx)
	}
	logger := logging.WithContext(ctx, p.logger)
	manifestPath := filepath.Join(opts.Directory, opts.ManifestName)

	report := &Report{
		RunID:     runID,
		Directory: opts.Directory,
		Manifest:  manifestPath,
		Reverse:   opts.Reverse,
	}

	fsys, err := p.mount(opts.Directory)
	if err != nil {
		return report, runError(KindResolveDirectory, opts.Directory, err)
	}

	if err := Validate(fsys, opts.Directory, opts.ManifestName); err != nil {
		return report, err
	}

	if p.lockDir != "" {
		lock, err := runlock.Acquire(p.lockDir, fsys.Root())
		if err != nil {
			if errors.Is(err, runlock.ErrLocked) {
				return report, runError(KindLocked, opts.Directory, err)
			}
			return report, runError(KindLockSetup, p.lockDir, err)
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("release directory lock", logging.String("lock", lock.Path()), logging.Error(err))
			}
		}()
	}

	lines, err := manifest.Load(fsys, opts.ManifestName)
	if err != nil {
		return report, runError(KindManifestRead, manifestPath, err)
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	logger.Debug("manifest loaded",
		logging.String("manifest", manifestPath),
		logging.Int("lines", len(lines)),
		logging.Bool("reverse", opts.Reverse),
	)

	for _, pair := range manifest.Parse(lines, opts.Delimiter) {
		outcome := Apply(fsys, normalizePair(pair, opts.Normalization), opts.Reverse)
		report.Outcomes = append(report.Outcomes, outcome)
		logOutcome(logger, outcome)
	}

	if opts.DeleteManifest {
		if err := DeleteManifest(fsys, opts.ManifestName); err != nil {
			return report, runError(KindManifestDelete, manifestPath, err)
		}
		report.ManifestDeleted = true
	}

	logger.Info("manifest applied",
		logging.String("directory", opts.Directory),
		logging.Bool("reverse", opts.Reverse),
		logging.Int("renamed", report.Renamed()),
		logging.Int("failed", report.Failed()),
		logging.Bool("manifest_deleted", report.ManifestDeleted),
		logging.Duration("elapsed", time.Since(started)),
	)
	return report, nil
}

// Validate checks that the target directory exists and that the manifest name
// is present in it. Whether the manifest can be read is left to the load step.
func Validate(fsys billy.Filesystem, directory, manifestName string) error {
	if !fileutil.Exists(fsys, ".") {
		return runError(KindPathNotFound, directory, nil)
	}
	if !fileutil.Exists(fsys, manifestName) {
		return runError(KindManifestMissing, filepath.Join(directory, manifestName), nil)
	}
	return nil
}

// Apply renames one pair inside fsys. Forward mode moves the transformed name
// to the original name; reverse mode moves it back. Empty names and names
// that leave the directory fail without touching the disk, and a destination
// whose parent directory is missing fails instead of creating directories.
func Apply(fsys billy.Filesystem, pair manifest.RenamePair, reverse bool) Outcome {
	from, to := pair.TransformedName, pair.OriginalName
	if reverse {
		from, to = to, from
	}

	outcome := Outcome{Line: pair.Line, From: from, To: to}
	switch {
	case from == "":
		outcome.Err = fmt.Errorf("empty source name: %w", fs.ErrInvalid)
	case to == "":
		outcome.Err = fmt.Errorf("empty destination name: %w", fs.ErrInvalid)
	case !fileutil.IsLocal(from):
		outcome.Err = fmt.Errorf("source %s is outside the directory: %w", from, fs.ErrInvalid)
	case !fileutil.IsLocal(to):
		outcome.Err = fmt.Errorf("destination %s is outside the directory: %w", to, fs.ErrInvalid)
	default:
		if parent := fileutil.ParentDir(to); parent != "" && !fileutil.IsDir(fsys, parent) {
			outcome.Err = fmt.Errorf("destination directory %s: %w", parent, fs.ErrNotExist)
		} else if err := fsys.Rename(from, to); err != nil {
			outcome.Err = err
		}
	}
	outcome.Reason = Classify(outcome.Err)
	return outcome
}

// DeleteManifest removes the manifest from fsys.
func DeleteManifest(fsys billy.Filesystem, manifestName string) error {
	return fsys.Remove(manifestName)
}

func normalizePair(pair manifest.RenamePair, form textutil.Form) manifest.RenamePair {
	if form == textutil.FormNone {
		return pair
	}
	pair.TransformedName = textutil.Normalize(pair.TransformedName, form)
	pair.OriginalName = textutil.Normalize(pair.OriginalName, form)
	return pair
}

func logOutcome(logger *slog.Logger, outcome Outcome) {
	attrs := []logging.Attr{
		logging.Int("line", outcome.Line),
		logging.String("from", outcome.From),
		logging.String("to", outcome.To),
	}
	if outcome.OK() {
		logger.Debug("file renamed", logging.Args(attrs...)...)
		return
	}
	attrs = append(attrs,
		logging.String("reason", string(outcome.Reason)),
		logging.Error(outcome.Err),
		logging.String(logging.FieldErrorHint, "check that the source exists and the destination name is free"),
		logging.String(logging.FieldImpact, "file keeps its current name; remaining lines still run"),
	)
	logging.WarnWithContext(logger, "rename failed", "rename_failed", attrs...)
}
