package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"cardbank/internal/domain"
)

// AccountFileStore persists every account in a single file, rewritten whole
// on each save. The file format follows the extension (.json or .toml).
type AccountFileStore struct {
	path  string
	codec codec
	log   *slog.Logger
	mu    sync.Mutex
}

// NewAccountFileStore returns an AccountFileStore backed by path.
func NewAccountFileStore(path string, log *slog.Logger) *AccountFileStore {
	if log == nil {
		log = slog.Default()
	}
	return &AccountFileStore{path: path, codec: codecFor(path), log: log}
}

// Path returns the backing file.
func (s *AccountFileStore) Path() string { return s.path }

// Load returns every stored account in file order. A missing file is an empty store.
func (s *AccountFileStore) Load(ctx context.Context) ([]*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// Save overwrites the backing file with accounts.
func (s *AccountFileStore) Save(ctx context.Context, accounts []*domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(accounts)
}

// Update loads the store, passes it to fn and saves what fn returns.
// If fn fails nothing is written and its error is returned unchanged.
func (s *AccountFileStore) Update(
	ctx context.Context,
	fn func(accounts []*domain.Account) ([]*domain.Account, error),
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load()
	if err != nil {
		return err
	}
	next, err := fn(accounts)
	if err != nil {
		return err
	}
	return s.save(next)
}

func (s *AccountFileStore) load() ([]*domain.Account, error) {
	b, err := readFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrPersistence, s.path, err)
	}
	if len(b) == 0 {
		s.log.Debug("store empty", slog.String("path", s.path))
		return []*domain.Account{}, nil
	}
	var doc document
	if err := s.codec.unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrPersistence, s.path, err)
	}
	accounts, err := fromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrPersistence, s.path, err)
	}
	s.log.Debug("store loaded", slog.String("path", s.path), slog.Int("accounts", len(accounts)))
	return accounts, nil
}

func (s *AccountFileStore) save(accounts []*domain.Account) error {
	b, err := s.codec.marshal(toDocument(accounts))
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrPersistence, s.path, err)
	}
	if err := writeFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrPersistence, s.path, err)
	}
	s.log.Debug("store saved", slog.String("path", s.path), slog.Int("accounts", len(accounts)))
	return nil
}

// ReplaceByLogin swaps every account whose login matches acc for acc.
// It reports whether any account was replaced.
func ReplaceByLogin(accounts []*domain.Account, acc *domain.Account) bool {
	replaced := false
	for i, a := range accounts {
		if a.Login == acc.Login {
			accounts[i] = acc
			replaced = true
		}
	}
	return replaced
}

// RemoveByLogin returns accounts without any entry whose login matches.
func RemoveByLogin(accounts []*domain.Account, login string) []*domain.Account {
	kept := make([]*domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Login != login {
			kept = append(kept, a)
		}
	}
	return kept
}

// FindByLogin returns the first account with the given login.
func FindByLogin(accounts []*domain.Account, login string) (*domain.Account, bool) {
	for _, a := range accounts {
		if a.Login == login {
			return a, true
		}
	}
	return nil, false
}

// FindCardOwner returns the first account holding a card with number, and that card.
func FindCardOwner(accounts []*domain.Account, number string) (*domain.Account, *domain.Card, bool) {
	for _, a := range accounts {
		if c, ok := a.Card(number); ok {
			return a, c, true
		}
	}
	return nil, nil, false
}

// Compile-time assertion that AccountFileStore implements domain.AccountStore.
var _ domain.AccountStore = (*AccountFileStore)(nil)
