package libdiff

import "errors"

const (
	InsertName     = "insert"
	DeleteName     = "delete"
	ReplaceName    = "replace"
	FromName       = "from"
	ToName         = "to"
	AtName         = "at"
	EqualName      = "equal"
	ListDiffName   = "listdiff"
	StringDiffName = "strdiff"
)

// ErrPatch is wrapped by every error returned from Patch.
var ErrPatch = errors.New("cannot patch")
