package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrPractitionerNotFound = errors.New("practitioner not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrDuplicateCategory    = errors.New("a category with that name already exists")
	ErrUnknownToggleField   = errors.New("field must be featured or verified")
	ErrBadMoveDirection     = errors.New("direction must be up or down")
	ErrCategoryNameEmpty    = errors.New("category name is required")
)

// CategoryInUseError rejects deleting a category that practitioners still
// reference, naming the blocking count.
type CategoryInUseError struct {
	Name  string
	Count int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("cannot delete %q: %d practitioner(s) use this category. Remove it from all practitioners first.", e.Name, e.Count)
}
