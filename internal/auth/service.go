// Package auth owns account registration, login and the request guards.
// Passwords are stored as bcrypt hashes only.
package auth

import (
	"context"
	"errors"

	"bankroll/internal/account"
	"bankroll/internal/event"
	"bankroll/internal/session"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Service struct {
	repo     *account.Repo
	sessions *session.Store
	bus      *event.Bus
}

func New(repo *account.Repo, sessions *session.Store, bus *event.Bus) *Service {
	return &Service{repo: repo, sessions: sessions, bus: bus}
}

func (s *Service) Register(username, password string) (account.Account, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return account.Account{}, err
	}
	acc, err := s.repo.Create(username, hash)
	if err != nil {
		return account.Account{}, err
	}
	s.bus.Publish(event.EventAccountCreated, acc.Number)
	return acc, nil
}

// Login checks the password and issues a session token. Unknown user and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	acc, err := s.repo.GetByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if comparePassword(acc.PasswordHash, password) != nil {
		return "", ErrInvalidCredentials
	}
	return s.sessions.Create(ctx, acc.Number)
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
