package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cardbank/internal/domain"
	"cardbank/internal/logger"
	"cardbank/internal/store"
)

// Service manages accounts through the account store.
type Service struct {
	accounts domain.AccountStore
	log      *slog.Logger
}

// New returns an account Service backed by accounts.
func New(accounts domain.AccountStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{accounts: accounts, log: log}
}

// CreateAccount validates acc, appends it to the store and opens a session on it.
// Any broken rule, including a taken login, yields a *domain.ValidationError
// and nothing is written. The new account starts without cards.
func (s *Service) CreateAccount(ctx context.Context, acc domain.Account) (*domain.Session, error) {
	created := &domain.Account{
		Name:     acc.Name,
		Age:      acc.Age,
		Login:    acc.Login,
		Password: acc.Password,
		Cards:    []*domain.Card{},
	}
	err := s.accounts.Update(ctx, func(accounts []*domain.Account) ([]*domain.Account, error) {
		codes := Validate(acc)
		if _, taken := store.FindByLogin(accounts, acc.Login); taken && acc.Login != "" {
			codes = append(codes, CodeLoginExists)
		}
		if len(codes) > 0 {
			return nil, &domain.ValidationError{Codes: codes}
		}
		return append(accounts, created), nil
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			s.log.Info("Account rejected", slog.String("login", acc.Login), slog.Any("codes", verr.Codes))
		} else {
			logger.LogError(s.log, "Account creation failed", err, slog.String("login", acc.Login))
		}
		return nil, err
	}
	s.log.Info("Account created", slog.String("login", created.Login))
	return &domain.Session{Account: created}, nil
}

// Authenticate opens a session on the first stored account whose login and
// password both match.
func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Session, error) {
	accounts, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Authenticated(login, password) {
			s.log.Debug("Authenticated", slog.String("login", login))
			return &domain.Session{Account: a}, nil
		}
	}
	s.log.Info("Authentication failed", slog.String("login", login))
	return nil, fmt.Errorf("login %q: %w", login, domain.ErrAccountNotFound)
}

// DestroyAccount removes every stored account with the session login.
// Without confirmation it returns domain.ErrNotConfirmed and writes nothing.
func (s *Service) DestroyAccount(ctx context.Context, session *domain.Session, confirmed bool) error {
	if !confirmed {
		return domain.ErrNotConfirmed
	}
	login := session.Login()
	err := s.accounts.Update(ctx, func(accounts []*domain.Account) ([]*domain.Account, error) {
		return store.RemoveByLogin(accounts, login), nil
	})
	if err != nil {
		logger.LogError(s.log, "Account removal failed", err, slog.String("login", login))
		return err
	}
	s.log.Info("Account destroyed", slog.String("login", login))
	return nil
}

// Compile-time assertion that Service implements domain.AccountService.
var _ domain.AccountService = (*Service)(nil)
