package money

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cardbank/internal/domain"
	"cardbank/internal/logger"
	"cardbank/internal/store"
)

// Service is the money operations engine. It holds no state between calls.
type Service struct {
	accounts domain.AccountStore
	log      *slog.Logger
}

// New constructs a money Service. The store is only used by Transfer.
func New(accounts domain.AccountStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{accounts: accounts, log: log}
}

// Withdraw takes amount plus the withdraw tax off card.
//
// It refuses a non-positive amount, and refuses unless
// balance > amount + withdraw tax.
func (s *Service) Withdraw(card *domain.Card, amount decimal.Decimal) domain.Result {
	r := newResult(uuid.New(), domain.OpWithdraw, card, amount, card.WithdrawTax(amount))
	switch {
	case !amount.IsPositive():
		r.Reason = domain.ReasonInvalidAmount
	case !covers(card, amount):
		r.Reason = domain.ReasonInsufficientFunds
	default:
		card.Withdraw(amount)
		r.Balance = card.Balance
	}
	logger.LogOperation(s.log, r)
	return r
}

// Put credits amount minus the put tax to card. It refuses a non-positive
// amount and a deposit the tax would consume entirely.
func (s *Service) Put(card *domain.Card, amount decimal.Decimal) domain.Result {
	r := newResult(uuid.New(), domain.OpPut, card, amount, card.PutTax(amount))
	switch {
	case !amount.IsPositive():
		r.Reason = domain.ReasonInvalidAmount
	case taxConsumes(card, amount):
		r.Reason = domain.ReasonTaxExceedsAmount
	default:
		card.Put(amount)
		r.Balance = card.Balance
	}
	logger.LogOperation(s.log, r)
	return r
}

// Transfer moves amount from sender, a card of the session account, to
// recipient, a card of any stored account.
//
// Sufficiency of the sender is checked with the withdraw tax and the sender
// balance is decremented by amount plus the withdraw tax, while the fee
// reported on the sender leg is the sender tax. Both values are returned
// (Sender.Tax and Charged).
//
// When one leg is refused the other is marked domain.ReasonNotAttempted.
//
// The recipient leg is committed first, then the sender leg, each as its own
// store update. A card passed in is only changed once its commit succeeded,
// so a failure of the second commit leaves the first applied and the sender
// untouched.
func (s *Service) Transfer(
	ctx context.Context,
	session *domain.Session,
	sender *domain.Card,
	recipient *domain.Card,
	amount decimal.Decimal,
) (domain.TransferResult, error) {
	id := uuid.New()
	out := domain.TransferResult{
		Sender:    newResult(id, domain.OpSend, sender, amount, sender.SenderTax(amount)),
		Recipient: newResult(id, domain.OpReceive, recipient, amount, recipient.PutTax(amount)),
		Charged:   sender.WithdrawTax(amount),
	}

	switch {
	case !amount.IsPositive():
		out.Sender.Reason = domain.ReasonInvalidAmount
		out.Recipient.Reason = domain.ReasonInvalidAmount
	case !covers(sender, amount):
		out.Sender.Reason = domain.ReasonInsufficientFunds
		out.Recipient.Reason = domain.ReasonNotAttempted
	case taxConsumes(recipient, amount):
		out.Sender.Reason = domain.ReasonNotAttempted
		out.Recipient.Reason = domain.ReasonTaxExceedsAmount
	}
	if !out.OK() {
		for _, leg := range []domain.Result{out.Sender, out.Recipient} {
			if leg.Reason != domain.ReasonNotAttempted {
				logger.LogOperation(s.log, leg)
			}
		}
		return out, nil
	}

	if _, ok := session.Account.Card(sender.Number); !ok {
		return out, fmt.Errorf("sender card %s of %q: %w", sender.Number, session.Login(), domain.ErrCardNotFound)
	}
	if err := s.commitRecipient(ctx, recipient, amount); err != nil {
		logger.LogError(s.log, "Transfer recipient leg failed", err, slog.String("id", id.String()))
		return out, err
	}
	out.Recipient.Balance = recipient.Balance
	logger.LogOperation(s.log, out.Recipient)

	if err := s.commitSender(ctx, session, sender, amount); err != nil {
		logger.LogError(s.log, "Transfer sender leg failed", err,
			slog.String("id", id.String()),
			slog.String("recipient", recipient.Number))
		return out, err
	}
	out.Sender.Balance = sender.Balance
	logger.LogOperation(s.log, out.Sender)
	return out, nil
}

// commitRecipient writes recipient's balance after the deposit into the
// stored account that owns the card number, then applies it to recipient.
func (s *Service) commitRecipient(ctx context.Context, recipient *domain.Card, amount decimal.Decimal) error {
	next := *recipient
	next.Put(amount)
	err := s.accounts.Update(ctx, func(accounts []*domain.Account) ([]*domain.Account, error) {
		_, stored, ok := store.FindCardOwner(accounts, recipient.Number)
		if !ok {
			return nil, fmt.Errorf("recipient card %s: %w", recipient.Number, domain.ErrCardNotFound)
		}
		stored.Balance = next.Balance
		return accounts, nil
	})
	if err != nil {
		return err
	}
	recipient.Balance = next.Balance
	return nil
}

// commitSender replaces the stored session account by a copy with the
// withdrawal applied, then applies it to sender.
func (s *Service) commitSender(
	ctx context.Context,
	session *domain.Session,
	sender *domain.Card,
	amount decimal.Decimal,
) error {
	next := cloneAccount(session.Account)
	debited, ok := next.Card(sender.Number)
	if !ok {
		return fmt.Errorf("sender card %s of %q: %w", sender.Number, session.Login(), domain.ErrCardNotFound)
	}
	debited.Withdraw(amount)

	err := s.accounts.Update(ctx, func(accounts []*domain.Account) ([]*domain.Account, error) {
		if !store.ReplaceByLogin(accounts, next) {
			return nil, fmt.Errorf("sender %q: %w", session.Login(), domain.ErrAccountNotFound)
		}
		return accounts, nil
	})
	if err != nil {
		return err
	}
	sender.Balance = debited.Balance
	return nil
}

// cloneAccount copies acc and each of its cards.
func cloneAccount(acc *domain.Account) *domain.Account {
	c := *acc
	c.Cards = make([]*domain.Card, len(acc.Cards))
	for i, card := range acc.Cards {
		cc := *card
		c.Cards[i] = &cc
	}
	return &c
}

func newResult(
	id uuid.UUID,
	op domain.Operation,
	card *domain.Card,
	amount, tax decimal.Decimal,
) domain.Result {
	return domain.Result{
		ID:         id,
		Operation:  op,
		CardNumber: card.Number,
		Amount:     amount,
		Tax:        tax,
	}
}

// covers reports balance > amount + withdraw tax. Equality is refused.
func covers(card *domain.Card, amount decimal.Decimal) bool {
	return card.Balance.GreaterThan(amount.Add(card.WithdrawTax(amount)))
}

// taxConsumes reports whether the put tax eats the whole deposit.
func taxConsumes(card *domain.Card, amount decimal.Decimal) bool {
	return card.PutTax(amount).GreaterThanOrEqual(amount)
}

// Compile-time assertion that Service implements domain.MoneyService.
var _ domain.MoneyService = (*Service)(nil)
