package render

import (
	"strconv"
	"time"

	"lss/internal/domain"
	"lss/internal/lscolors"
)

type IdentityResolver interface {
	UserName(uid uint32) string
	GroupName(gid uint32) string
}

// Formatters holds what the default columns need to turn an item into spans.
type Formatters struct {
	Scheme      *lscolors.Scheme
	Identities  IdentityResolver
	Now         func() time.Time
	Dereference bool
}

var sizeColors = [...]Color{"", Blue, Yellow, Red}

// subject is the file described by the attribute columns: the link target
// when dereferencing and the target exists.
func (formatters *Formatters) subject(item *domain.Item) (*domain.File, bool) {
	if formatters.Dereference && item.IsSymlink() {
		if target, err := item.LinkedFile(); err == nil {
			return target, true
		}
	}
	return item.File(), false
}

func (formatters *Formatters) Perm(item *domain.Item) []Span {
	file, _ := formatters.subject(item)
	return single(FileMode(file.Mode()), White)
}

func idColor(id uint32) Color {
	switch {
	case id == 0:
		return Red
	case id < 1000:
		return Blue
	case id == 65534:
		return Magenta
	}
	return White
}

func (formatters *Formatters) User(item *domain.Item) []Span {
	file, _ := formatters.subject(item)
	return single(formatters.Identities.UserName(file.Uid()), idColor(file.Uid()))
}

func (formatters *Formatters) Group(item *domain.Item) []Span {
	file, _ := formatters.subject(item)
	return single(formatters.Identities.GroupName(file.Gid()), idColor(file.Gid()))
}

func (formatters *Formatters) Count(item *domain.Item) []Span {
	return single(strconv.Itoa(item.Count()), "")
}

func (formatters *Formatters) Size(item *domain.Item) []Span {
	size := item.Size()
	if file, dereferenced := formatters.subject(item); dereferenced {
		size = file.Size()
	}
	return single(HumanSize(size), sizeColors[SizeBucket(size)])
}

func (formatters *Formatters) Incomplete(item *domain.Item) []Span {
	if item.Complete() {
		return nil
	}
	return single("+", Magenta)
}

func (formatters *Formatters) Age(item *domain.Item) []Span {
	mtime := item.Mtime()
	if file, dereferenced := formatters.subject(item); dereferenced {
		mtime = file.Mtime()
	}
	now := time.Now
	if formatters.Now != nil {
		now = formatters.Now
	}
	return single(Age(mtime, now()))
}

func LevelColor(level domain.Level) Color {
	switch {
	case level >= domain.LevelError:
		return Red
	case level >= domain.LevelMajor:
		return Magenta
	case level >= domain.LevelMinor:
		return Yellow
	}
	return Green
}

func (formatters *Formatters) Markers(item *domain.Item) []Span {
	marks := item.Marks()
	spans := make([]Span, 0, len(marks))
	for _, mark := range marks {
		spans = append(spans, Span{Text: string(mark.Tag), Color: LevelColor(mark.Level)})
	}
	return spans
}

func (formatters *Formatters) Name(item *domain.Item) []Span {
	file := item.File()
	return single(file.Name(), Color(formatters.Scheme.NameColor(file.Name(), file.Mode())))
}

// Symlink renders the literal link text, colored for its target.
func (formatters *Formatters) Symlink(item *domain.Item) []Span {
	if !item.IsSymlink() {
		return nil
	}
	text, err := item.LinkedPath()
	if err != nil {
		return nil
	}
	target, err := item.LinkedFile()
	if err != nil {
		return single(text, Color(formatters.Scheme.Resolve(lscolors.Orphan)))
	}
	return single(text, Color(formatters.Scheme.NameColor(target.Name(), target.Mode())))
}

func (formatters *Formatters) Inode(item *domain.Item) []Span {
	return single(strconv.FormatUint(item.File().Ino(), 10), "")
}

// DefaultColumns is the standard lss row layout.
func DefaultColumns(formatters *Formatters, showInode bool) []Column {
	columns := []Column{
		{Name: "perm", Formatter: FormatterFunc(formatters.Perm), Align: AlignLeft, Fill: " "},
		NewColumn("user", FormatterFunc(formatters.User)),
		NewColumn("group", FormatterFunc(formatters.Group)),
		NewColumn("count", FormatterFunc(formatters.Count)),
		{Name: "size", Formatter: FormatterFunc(formatters.Size), Align: AlignRight},
		NewColumn("incomplete", FormatterFunc(formatters.Incomplete)),
		NewColumn("age", FormatterFunc(formatters.Age)),
		NewColumn("markers", FormatterFunc(formatters.Markers)),
		{Name: "name", Formatter: FormatterFunc(formatters.Name)},
		{Name: "symlink", Formatter: FormatterFunc(formatters.Symlink), Prefix: " -> "},
	}
	if showInode {
		columns = append([]Column{NewColumn("inode", FormatterFunc(formatters.Inode))}, columns...)
	}
	return columns
}
