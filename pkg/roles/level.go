package roles

import "strconv"

// Level is the hierarchy rank of a role. Comparisons between levels are strict
// ordinal comparisons; equal levels never outrank each other.
type Level int

const (
	LevelViewer Level = iota + 1
	LevelEditor
	LevelAdmin
	LevelOwner
)

func (l Level) String() string {
	switch l {
	case LevelViewer:
		return "viewer"
	case LevelEditor:
		return "editor"
	case LevelAdmin:
		return "admin"
	case LevelOwner:
		return "owner"
	default:
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
}
