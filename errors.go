package observable

import "errors"

// ErrReadOnly is returned when Set, Update, Insert, Emplace or Remove
// is called on a cell or collection that is fed by an updater. The
// target is not mutated and no observers run.
//
// Callers that construct their own cells can treat this as a
// programming error; callers handed a cell of unknown origin should
// check for it with errors.Is.
var ErrReadOnly = errors.New("observable: value is read-only")
