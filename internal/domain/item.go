package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

type ItemKind int

const (
	KindRegular ItemKind = iota
	KindDir
	KindLink
)

func (kind ItemKind) String() string {
	switch kind {
	case KindDir:
		return "Dir"
	case KindLink:
		return "Link"
	default:
		return "Regular"
	}
}

// Item is one listing row. Regular items delegate everything to their File,
// Dir items aggregate the descendants folded into them and Link items resolve
// their target lazily.
//
// A Dir item is handed to the consumer as soon as it is created and keeps
// being mutated by the walk until it is complete or the walk has returned.
type Item struct {
	kind    ItemKind
	file    *File
	depth   int
	markers map[rune]Level

	dir  *dirState
	link *linkState
}

type dirState struct {
	size     int64
	count    int
	mtime    time.Time
	complete bool
}

type linkState struct {
	target     string
	targetRead bool
	targetErr  error
	targetFile *File
	fileErr    error
	fileRead   bool
}

// NewItem classifies file by its mode and records the depth it was created at.
func NewItem(file *File, depth int) *Item {
	item := &Item{file: file, depth: depth}
	switch {
	case file.IsDir():
		item.kind = KindDir
		item.dir = &dirState{mtime: file.Mtime()}
	case file.IsSymlink():
		item.kind = KindLink
		item.link = &linkState{}
	default:
		item.kind = KindRegular
	}
	return item
}

func (item *Item) Kind() ItemKind { return item.kind }
func (item *Item) File() *File { return item.file }
func (item *Item) Depth() int { return item.depth }
func (item *Item) Name() string { return item.file.Name() }
func (item *Item) Path() string { return item.file.Path() }
func (item *Item) IsDir() bool { return item.kind == KindDir }
func (item *Item) IsSymlink() bool { return item.kind == KindLink }

func (item *Item) Size() int64 {
	if item.dir != nil {
		return item.dir.size
	}
	return item.file.Size()
}

func (item *Item) Mtime() time.Time {
	if item.dir != nil {
		return item.dir.mtime
	}
	return item.file.Mtime()
}

func (item *Item) Count() int {
	if item.dir != nil {
		return item.dir.count
	}
	return 1
}

func (item *Item) Complete() bool {
	if item.dir != nil {
		return item.dir.complete
	}
	return true
}

// Contribute folds a descendant into a Dir item. Every descendant counts and
// may raise mtime; only regular files add to size.
func (item *Item) Contribute(file *File) {
	if item.dir == nil {
		return
	}
	item.dir.count++
	if file.IsRegular() {
		item.dir.size += file.Size()
	}
	if file.Mtime().After(item.dir.mtime) {
		item.dir.mtime = file.Mtime()
	}
}

// MarkComplete flips a Dir item to complete. It never reverts.
func (item *Item) MarkComplete() {
	if item.dir != nil {
		item.dir.complete = true
	}
}

// SetMark records mark unless the item already carries the same tag at an
// equal or higher level.
func (item *Item) SetMark(mark Mark) {
	if mark.IsZero() {
		return
	}
	if item.markers == nil {
		item.markers = make(map[rune]Level)
	}
	current, ok := item.markers[mark.Tag]
	if !ok || mark.Level > current {
		item.markers[mark.Tag] = mark.Level
	}
}

func (item *Item) Marker(tag rune) (Level, bool) {
	level, ok := item.markers[tag]
	return level, ok
}

// Marks returns the item's marks sorted by tag.
func (item *Item) Marks() []Mark {
	marks := make([]Mark, 0, len(item.markers))
	for tag, level := range item.markers {
		marks = append(marks, Mark{Tag: tag, Level: level})
	}
	sort.Slice(marks, func(i, j int) bool {
		return marks[i].Tag < marks[j].Tag
	})
	return marks
}

// LinkedPath returns the symlink text, read once.
func (item *Item) LinkedPath() (string, error) {
	if item.link == nil {
		return "", fmt.Errorf("%s: not a symlink", item.Path())
	}
	if !item.link.targetRead {
		item.link.target, item.link.targetErr = os.Readlink(item.Path())
		item.link.targetRead = true
	}
	return item.link.target, item.link.targetErr
}

// LinkedFile returns the lstat of the link target. Relative targets are
// joined to the link's directory. A missing target returns an error matching
// fs.ErrNotExist.
func (item *Item) LinkedFile() (*File, error) {
	if item.link == nil {
		return nil, fmt.Errorf("%s: not a symlink", item.Path())
	}
	if !item.link.fileRead {
		item.link.targetFile, item.link.fileErr = item.resolveTarget()
		item.link.fileRead = true
	}
	return item.link.targetFile, item.link.fileErr
}

func (item *Item) resolveTarget() (*File, error) {
	target, err := item.LinkedPath()
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(item.Path()), target)
	}
	return NewFile(target)
}

func (item *Item) String() string {
	return fmt.Sprintf("%s(%q, complete=%t, size=%d, mtime=%s)",
		item.kind, item.Path(), item.Complete(), item.Size(), item.Mtime().Format(time.RFC3339))
}
