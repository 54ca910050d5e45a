package services

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mordilloSan/go-logger/logger"

	"lss/internal/domain"
)

const MaxDepthLimit = 3

type TraverseOptions struct {
	MaxDepth   int
	Timeout    time.Duration
	Filters    Filters
	CrossMount bool
	Markers    *Registry
}

func DefaultTraverseOptions() TraverseOptions {
	return TraverseOptions{
		MaxDepth: 1,
		Timeout:  500 * time.Millisecond,
		Filters:  Filters{HideDotFiles},
	}
}

// Traverser walks roots depth-first. Entries at or above MaxDepth become
// items; deeper entries are folded into their nearest ancestor item. The
// deadline is armed by NewTraverser and shared by every root it walks.
type Traverser struct {
	opts     TraverseOptions
	deadline *domain.Deadline
	problems []error
}

func NewTraverser(opts TraverseOptions) *Traverser {
	if opts.MaxDepth < 0 {
		opts.MaxDepth = 0
	}
	if opts.MaxDepth > MaxDepthLimit {
		opts.MaxDepth = MaxDepthLimit
	}
	return &Traverser{
		opts:     opts,
		deadline: domain.NewDeadline(opts.Timeout),
	}
}

func (traverser *Traverser) Deadline() *domain.Deadline {
	return traverser.deadline
}

// Problems returns the non fatal errors met so far.
func (traverser *Traverser) Problems() []error {
	return append([]error(nil), traverser.problems...)
}

// Walk yields an item for every entry of root that survives the filters,
// then for their descendants down to MaxDepth. A yielded directory item is
// still updated by the walk until Walk returns. If root is not a directory
// it is yielded on its own. Only failing to read root itself is returned.
func (traverser *Traverser) Walk(root string, yield func(*domain.Item)) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		// A file or an orphan link is listed on its own.
		if isNotDirErr(err) || errors.Is(err, fs.ErrNotExist) {
			if file, statErr := domain.NewFile(root); statErr == nil && !file.IsDir() {
				traverser.traverse(file, nil, 0, nil, yield)
				return nil
			}
		}
		return NewError(OpReadDir, root, err)
	}

	updir, err := rootFile(root)
	if err != nil {
		return NewError(OpStat, root, err)
	}
	for _, entry := range entries {
		if traverser.opts.Filters.Rejects(entry.Name()) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		info, err := entry.Info()
		if err != nil {
			traverser.report(NewError(OpStat, path, err))
			continue
		}
		traverser.traverse(domain.NewFileFromInfo(path, info), updir, 1, nil, yield)
	}
	return nil
}

// Collect walks root and returns the items in the order they were yielded.
func (traverser *Traverser) Collect(root string) ([]*domain.Item, error) {
	var items []*domain.Item
	err := traverser.Walk(root, func(item *domain.Item) {
		items = append(items, item)
	})
	return items, err
}

// rootFile follows a symlinked root, since its children are listed through
// the link.
func rootFile(root string) (*domain.File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	return domain.NewFileFromInfo(root, info), nil
}

func (traverser *Traverser) traverse(file *domain.File, updir *domain.File, depth int, item *domain.Item, yield func(*domain.Item)) {
	switch {
	case depth <= traverser.opts.MaxDepth:
		item = domain.NewItem(file, depth)
		yield(item)
	case item != nil:
		item.Contribute(file)
	default:
		// Nothing below the cutoff can be accounted for.
		return
	}

	if updir != nil && file.Dev() != updir.Dev() {
		file.SetMount(true)
	}
	if file.IsMount() && !traverser.opts.CrossMount {
		logger.Debugf("not crossing mount point %s", file.Path())
		return
	}

	if !file.IsDir() {
		return
	}

	traverser.opts.Markers.Apply(item, file)

	entries, err := os.ReadDir(file.Path())
	if err != nil {
		traverser.report(NewError(OpReadDir, file.Path(), err))
		return
	}
	for _, entry := range entries {
		if traverser.deadline.Expired() {
			logger.Debugf("%s depth=%d item=%s entry=%s", traverser.deadline, depth, item, entry.Name())
			return
		}
		path := filepath.Join(file.Path(), entry.Name())
		info, err := entry.Info()
		if err != nil {
			traverser.report(NewError(OpStat, path, err))
			continue
		}
		traverser.traverse(domain.NewFileFromInfo(path, info), file, depth+1, item, yield)
	}
	if item != nil && item.Depth() == depth {
		item.MarkComplete()
	}
}

func (traverser *Traverser) report(err error) {
	if isPermissionErr(err) || isNotDirErr(err) {
		logger.Errorf("%v", err)
	} else {
		logger.Warnf("%v", err)
	}
	traverser.problems = append(traverser.problems, err)
}
