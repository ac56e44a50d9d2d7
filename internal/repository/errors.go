package repository

import "errors"

// ErrDuplicate matches any DuplicateError.
var ErrDuplicate = errors.New("duplicate key")

// DuplicateError reports a write rejected by a unique key. Field names the
// column the key guards, empty when the key is not mapped.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	if e.Field == "" {
		return ErrDuplicate.Error()
	}
	return ErrDuplicate.Error() + ": " + e.Field
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// DuplicateField returns the field of a DuplicateError in err's chain.
func DuplicateField(err error) (string, bool) {
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return dup.Field, true
	}
	return "", false
}
