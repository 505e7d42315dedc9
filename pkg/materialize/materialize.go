package materialize

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/scfldr/pkg/errors"
	"github.com/arthur-debert/scfldr/pkg/logging"
	"github.com/arthur-debert/scfldr/pkg/template"
	"github.com/arthur-debert/scfldr/pkg/types"
	"github.com/rs/zerolog"
)

// Action is the recorded result of visiting one path
type Action string

const (
	ActionCreated     Action = "created"
	ActionSkipped     Action = "skipped"
	ActionOverwritten Action = "overwritten"
	ActionAppended    Action = "appended"
	ActionError       Action = "error"
)

// Outcome records what happened at a single path during a run.
// Outcomes are append-only: once recorded they are never mutated.
type Outcome struct {
	Path    string
	Kind    template.Kind
	Action  Action
	Message string
	Err     error
}

// Summary aggregates outcome counts for reporting
type Summary struct {
	Created     int
	Skipped     int
	Overwritten int
	Appended    int
	Errors      int
}

// Summarize tallies a run's outcomes
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Action {
		case ActionCreated:
			s.Created++
		case ActionSkipped:
			s.Skipped++
		case ActionOverwritten:
			s.Overwritten++
		case ActionAppended:
			s.Appended++
		case ActionError:
			s.Errors++
		}
	}
	return s
}

// Options configures a materialization run. The two gates are
// deliberately independent: Force governs per-file overwrites once a
// run is underway, AllowExistingRoot governs whether a run may start
// into a non-empty output directory at all.
type Options struct {
	Force             bool
	AllowExistingRoot bool
	DirMode           fs.FileMode
	FileMode          fs.FileMode
}

// Materializer walks a template tree and creates the corresponding
// directories and files through a types.FS. It borrows the tree
// read-only and owns the outcomes it produces.
type Materializer struct {
	fs     types.FS
	opts   Options
	logger zerolog.Logger
}

// New creates a Materializer over the given filesystem
func New(fsys types.FS, opts Options) *Materializer {
	if opts.DirMode == 0 {
		opts.DirMode = 0755
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0644
	}
	return &Materializer{
		fs:     fsys,
		opts:   opts,
		logger: logging.GetLogger("materialize"),
	}
}

// CheckRoot enforces the all-or-nothing guard at the output root: a run
// may not begin into an existing non-empty directory unless allowed, and
// never into a path occupied by a file. Runs before anything is written.
func (m *Materializer) CheckRoot(outputRoot string) error {
	info, err := m.fs.Stat(outputRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect output path %s", outputRoot)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrPathConflict,
			"output path %s exists and is not a directory", outputRoot)
	}
	if m.opts.AllowExistingRoot {
		return nil
	}
	entries, err := m.fs.ReadDir(outputRoot)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read output directory %s", outputRoot)
	}
	if len(entries) > 0 {
		return errors.Newf(errors.ErrRootConflict,
			"output directory %s already exists and is not empty", outputRoot).
			WithDetail("entries", len(entries))
	}
	return nil
}

// Materialize creates the tree under outputRoot and returns one outcome
// per visited path. The walk is depth-first pre-order so parents exist
// before their children. Per-path failures are recorded and the walk
// continues with siblings; the returned error is non-nil only when the
// output root itself cannot be created.
func (m *Materializer) Materialize(root *template.Node, outputRoot string) ([]Outcome, error) {
	if err := m.fs.MkdirAll(outputRoot, m.opts.DirMode); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create output directory %s", outputRoot)
	}

	outcomes := make([]Outcome, 0)
	for _, child := range root.Children {
		m.walk(child, filepath.Join(outputRoot, child.Name), &outcomes)
	}

	s := Summarize(outcomes)
	m.logger.Info().
		Str("root", outputRoot).
		Int("created", s.Created).
		Int("skipped", s.Skipped).
		Int("overwritten", s.Overwritten).
		Int("appended", s.Appended).
		Int("errors", s.Errors).
		Msg("Materialization finished")

	return outcomes, nil
}

func (m *Materializer) walk(node *template.Node, path string, outcomes *[]Outcome) {
	if node.IsDir() {
		m.walkDir(node, path, outcomes)
		return
	}
	*outcomes = append(*outcomes, m.applyFile(node, path))
}

func (m *Materializer) walkDir(node *template.Node, path string, outcomes *[]Outcome) {
	info, err := m.fs.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		// Structural conflict: a file occupies the directory's path.
		// The whole subtree is unreachable, record once and stop here.
		conflict := errors.Newf(errors.ErrPathConflict, "expected directory, found file at %s", path)
		m.logger.Error().Str("path", path).Msg("Directory path occupied by a file")
		*outcomes = append(*outcomes, Outcome{
			Path:    path,
			Kind:    template.KindDirectory,
			Action:  ActionError,
			Message: "a file occupies this path",
			Err:     conflict,
		})
		return

	case err == nil:
		// Directories are reused, never overwritten
		*outcomes = append(*outcomes, Outcome{
			Path:    path,
			Kind:    template.KindDirectory,
			Action:  ActionSkipped,
			Message: "directory already exists",
		})

	default:
		if mkErr := m.fs.MkdirAll(path, m.opts.DirMode); mkErr != nil {
			m.logger.Error().Err(mkErr).Str("path", path).Msg("Failed to create directory")
			*outcomes = append(*outcomes, Outcome{
				Path:   path,
				Kind:   template.KindDirectory,
				Action: ActionError,
				Err:    errors.Wrapf(mkErr, errors.ErrDirCreate, "failed to create directory %s", path),
			})
			m.failSubtree(node, path, outcomes)
			return
		}
		m.logger.Debug().Str("path", path).Msg("Created directory")
		*outcomes = append(*outcomes, Outcome{
			Path:   path,
			Kind:   template.KindDirectory,
			Action: ActionCreated,
		})
	}

	for _, child := range node.Children {
		m.walk(child, filepath.Join(path, child.Name), outcomes)
	}
}

// failSubtree records an error outcome for every descendant of a
// directory whose creation failed, without touching the filesystem.
func (m *Materializer) failSubtree(node *template.Node, path string, outcomes *[]Outcome) {
	for _, child := range node.Children {
		childPath := filepath.Join(path, child.Name)
		*outcomes = append(*outcomes, Outcome{
			Path:    childPath,
			Kind:    child.Kind,
			Action:  ActionError,
			Message: "parent directory was not created",
			Err:     errors.Newf(errors.ErrDirCreate, "parent directory %s was not created", path),
		})
		if child.IsDir() {
			m.failSubtree(child, childPath, outcomes)
		}
	}
}

func (m *Materializer) applyFile(node *template.Node, path string) Outcome {
	info, err := m.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return Outcome{
			Path:    path,
			Kind:    template.KindFile,
			Action:  ActionError,
			Message: "a directory occupies this path",
			Err:     errors.Newf(errors.ErrPathConflict, "expected file, found directory at %s", path),
		}

	case err == nil && node.Mode == template.ModeAppend:
		// Append mode is always applied, it never triggers a conflict decision
		if appendErr := m.fs.AppendFile(path, []byte(node.Content), m.opts.FileMode); appendErr != nil {
			return Outcome{
				Path:   path,
				Kind:   template.KindFile,
				Action: ActionError,
				Err:    errors.Wrapf(appendErr, errors.ErrFileAppend, "failed to append to %s", path),
			}
		}
		m.logger.Debug().Str("path", path).Msg("Appended to file")
		return Outcome{Path: path, Kind: template.KindFile, Action: ActionAppended}

	case err == nil && !m.opts.Force:
		return Outcome{
			Path:    path,
			Kind:    template.KindFile,
			Action:  ActionSkipped,
			Message: "file already exists, use force to overwrite",
		}

	case err == nil:
		if writeErr := m.fs.WriteFile(path, []byte(node.Content), m.opts.FileMode); writeErr != nil {
			return Outcome{
				Path:   path,
				Kind:   template.KindFile,
				Action: ActionError,
				Err:    errors.Wrapf(writeErr, errors.ErrFileWrite, "failed to overwrite %s", path),
			}
		}
		m.logger.Debug().Str("path", path).Msg("Overwrote file")
		return Outcome{Path: path, Kind: template.KindFile, Action: ActionOverwritten}

	case os.IsNotExist(err):
		if writeErr := m.fs.WriteFile(path, []byte(node.Content), m.opts.FileMode); writeErr != nil {
			return Outcome{
				Path:   path,
				Kind:   template.KindFile,
				Action: ActionError,
				Err:    errors.Wrapf(writeErr, errors.ErrFileWrite, "failed to write %s", path),
			}
		}
		m.logger.Debug().Str("path", path).Msg("Created file")
		return Outcome{Path: path, Kind: template.KindFile, Action: ActionCreated}

	default:
		return Outcome{
			Path:   path,
			Kind:   template.KindFile,
			Action: ActionError,
			Err:    errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", path),
		}
	}
}
