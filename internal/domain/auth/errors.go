package auth

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStaffNotFound      = errors.New("staff user not found")
)

// LockedError reports how long the caller has to wait before the next
// attempt is accepted.
type LockedError struct {
	RetryAfter time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("too many failed attempts, locked for %s", e.RetryAfter.Round(time.Second))
}
