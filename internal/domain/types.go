package domain

type SortMode string

const (
	SortBySize SortMode = "size"
	SortByName SortMode = "name"
	SortByMod  SortMode = "mtime"
)

func ParseSortMode(value string, fallback SortMode) SortMode {
	switch SortMode(value) {
	case SortByName, SortByMod, SortBySize:
		return SortMode(value)
	case "mod", "time":
		return SortByMod
	default:
		return fallback
	}
}

// Next cycles name -> mtime -> size -> name.
func (mode SortMode) Next() SortMode {
	switch mode {
	case SortByName:
		return SortByMod
	case SortByMod:
		return SortBySize
	default:
		return SortByName
	}
}
