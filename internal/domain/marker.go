package domain

// Level is the severity of a Mark. Higher values are more severe.
type Level int

const (
	LevelOK    Level = 0
	LevelMinor Level = 10
	LevelMajor Level = 20
	LevelError Level = 100
)

func (level Level) String() string {
	switch level {
	case LevelOK:
		return "ok"
	case LevelMinor:
		return "minor"
	case LevelMajor:
		return "major"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Mark is a single character annotation attached to an Item.
// The zero Mark carries no tag and is ignored.
type Mark struct {
	Tag   rune
	Level Level
}

func (mark Mark) IsZero() bool {
	return mark.Tag == 0
}
