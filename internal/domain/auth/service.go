package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	jwtsvc "codexgallery/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo    Repository
	jwt     *jwtsvc.Service
	lockout *Lockout
}

func NewService(repo Repository, jwt *jwtsvc.Service, lockout *Lockout) *Service {
	if lockout == nil {
		lockout = NewLockout()
	}
	return &Service{repo: repo, jwt: jwt, lockout: lockout}
}

// Login verifies credentials and issues a signed token. Failures are
// uniform (ErrInvalidCredentials) so the response never reveals whether the
// username exists. The lockout key combines username and client IP.
func (s *Service) Login(ctx context.Context, username, password, clientIP string) (string, *StaffUser, error) {
	username = strings.TrimSpace(username)
	key := username + "|" + clientIP

	if locked, retryAfter := s.lockout.Check(key); locked {
		return "", nil, &LockedError{RetryAfter: retryAfter}
	}

	staff, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrStaffNotFound) {
			return "", nil, s.fail(key)
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)) != nil {
		return "", nil, s.fail(key)
	}

	s.lockout.RecordSuccess(key)

	token, err := s.jwt.GenerateToken(staff.ID, staff.Username, staff.Role)
	if err != nil {
		return "", nil, err
	}

	return token, staff, nil
}

func (s *Service) fail(key string) error {
	if locked, retryAfter := s.lockout.RecordFailure(key); locked {
		log.Printf("auth: lockout engaged for %s (%s)", key, retryAfter)
		return &LockedError{RetryAfter: retryAfter}
	}
	return ErrInvalidCredentials
}
