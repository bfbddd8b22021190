package registry

import (
	"fmt"

	"github.com/evovision/evoq-api/internal/domain"
)

// storeError marks a store failure as domain.ErrStoreUnavailable while keeping the cause
func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
