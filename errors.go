// errors.go
package scopeprefs

import "errors"

var (
	ErrKindMismatch        = errors.New("preference kind mismatch")
	ErrMovedFrom           = errors.New("use of moved-from preference")
	ErrBuilderConsumed     = errors.New("builder already consumed")
	ErrInvalidIdentifier   = errors.New("invalid preference identifier")
	ErrDuplicateIdentifier = errors.New("preference already registered")
	ErrNotFound            = errors.New("preference not found")
)
