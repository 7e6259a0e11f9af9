package football

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrUniqueViolation     = errors.New("unique violation")
	ErrPageOutOfRange      = errors.New("page out of range")
	ErrRowNotFound         = errors.New("row not found")
)

// CheckWindow rejects paging values that were not normalized before reaching
// a repository.
func CheckWindow(page, pageSize int) error {
	if page < 1 {
		return fmt.Errorf("%w: page=%d must be >= 1", ErrPageOutOfRange, page)
	}
	if pageSize < 1 {
		return fmt.Errorf("%w: page_size=%d must be >= 1", ErrPageOutOfRange, pageSize)
	}
	return nil
}

// Offset returns the number of rows preceding the window. ok is false when
// the offset does not fit in an int; such a window lies past any stored row.
// Callers must run CheckWindow first.
func Offset(page, pageSize int) (offset int, ok bool) {
	if page-1 > math.MaxInt/pageSize {
		return 0, false
	}
	return (page - 1) * pageSize, true
}
