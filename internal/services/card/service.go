package card

import (
	"context"
	"fmt"
	"log/slog"

	"cardbank/internal/domain"
	"cardbank/internal/logger"
	"cardbank/internal/store"
)

// Service operates on the cards of a session account.
type Service struct {
	accounts domain.AccountStore
	log      *slog.Logger
}

// New returns a card Service backed by accounts.
func New(accounts domain.AccountStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{accounts: accounts, log: log}
}

// CreateCard issues a card of kind and appends it to the session account.
// The change is in memory until Commit.
func (s *Service) CreateCard(session *domain.Session, kind domain.CardKind) *domain.Card {
	c := domain.NewCard(kind)
	session.Account.AddCard(c)
	s.log.Debug("Card created", slog.String("login", session.Login()), slog.String("kind", kind.String()))
	return c
}

// DestroyCard removes card from the session account. The change is in memory until Commit.
func (s *Service) DestroyCard(session *domain.Session, card *domain.Card) {
	session.Account.DeleteCard(card)
	s.log.Debug("Card destroyed", slog.String("login", session.Login()), slog.String("card", card.Number))
}

// FindCard returns the card at a 1-based position in display order.
func (s *Service) FindCard(session *domain.Session, position int) (*domain.Card, error) {
	cards := session.Account.Cards
	if position < 1 || position > len(cards) {
		return nil, fmt.Errorf("position %d of %d: %w", position, len(cards), domain.ErrCardNotFound)
	}
	return cards[position-1], nil
}

// FindCardByNumber looks up a card by number, first in the session account and
// then across the stored accounts. A card of the session account is returned
// as the session's own value so that in-memory changes stay consistent.
func (s *Service) FindCardByNumber(
	ctx context.Context,
	session *domain.Session,
	number string,
) (*domain.Card, error) {
	if c, ok := session.Account.Card(number); ok {
		return c, nil
	}
	accounts, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, c, ok := store.FindCardOwner(accounts, number); ok {
		return c, nil
	}
	return nil, fmt.Errorf("card %s: %w", number, domain.ErrCardNotFound)
}

// Commit replaces the stored account with the session login by the session account.
func (s *Service) Commit(ctx context.Context, session *domain.Session) error {
	err := s.accounts.Update(ctx, func(accounts []*domain.Account) ([]*domain.Account, error) {
		if !store.ReplaceByLogin(accounts, session.Account) {
			return nil, fmt.Errorf("login %q: %w", session.Login(), domain.ErrAccountNotFound)
		}
		return accounts, nil
	})
	if err != nil {
		logger.LogError(s.log, "Commit failed", err, slog.String("login", session.Login()))
		return err
	}
	return nil
}

// Compile-time assertion that Service implements domain.CardService.
var _ domain.CardService = (*Service)(nil)
