package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	domaintypes "cardbank/internal/domain/types"
)

// AccountService creates, authenticates and removes accounts.
type AccountService interface {
	CreateAccount(ctx context.Context, account domaintypes.Account) (*domaintypes.Session, error)
	Authenticate(ctx context.Context, login, password string) (*domaintypes.Session, error)
	DestroyAccount(ctx context.Context, session *domaintypes.Session, confirmed bool) error
}

// CardService issues and removes cards of the session account and persists
// the session account after an in-memory change.
type CardService interface {
	CreateCard(session *domaintypes.Session, kind domaintypes.CardKind) *domaintypes.Card
	DestroyCard(session *domaintypes.Session, card *domaintypes.Card)
	FindCard(session *domaintypes.Session, position int) (*domaintypes.Card, error)
	FindCardByNumber(
		ctx context.Context,
		session *domaintypes.Session,
		number string,
	) (*domaintypes.Card, error)
	Commit(ctx context.Context, session *domaintypes.Session) error
}

// MoneyService validates and applies withdrawals, deposits and transfers.
//
// Withdraw and Put only mutate the card; the caller persists. Transfer
// persists each leg on its own.
type MoneyService interface {
	Withdraw(card *domaintypes.Card, amount decimal.Decimal) domaintypes.Result
	Put(card *domaintypes.Card, amount decimal.Decimal) domaintypes.Result
	Transfer(
		ctx context.Context,
		session *domaintypes.Session,
		sender *domaintypes.Card,
		recipient *domaintypes.Card,
		amount decimal.Decimal,
	) (domaintypes.TransferResult, error)
}
