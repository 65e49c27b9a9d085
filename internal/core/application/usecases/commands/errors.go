package commands

import (
	"errors"
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Reference errors. Each is returned wrapped together with the repository's
// errs.ObjectNotFoundError, so errors.Is matches both the specific sentinel and
// errs.ErrObjectNotFound.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrMenuGroupNotFound = errors.New("menu group not found")
	ErrMenuNotFound      = errors.New("menu not found")
	ErrTableNotFound     = errors.New("order table not found")
	ErrOrderNotFound     = errors.New("order not found")
)

// notFound tags a repository lookup failure with a reference sentinel. Other
// errors pass through untouched.
func notFound(sentinel, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}
