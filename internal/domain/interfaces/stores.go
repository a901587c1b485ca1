package interfaces

//go:generate mockgen -source=stores.go -destination=../mock/account_store.go -package=mock

import (
	"context"

	domaintypes "cardbank/internal/domain/types"
)

// AccountStore persists the full ordered list of accounts as one unit.
//
// Load and Save always move the whole list; there is no partial update.
// Update is the scoped read-modify-write: it loads a snapshot, lets fn
// compute the next list and writes it back. Nothing guards against a second
// process writing in between, so the last write wins.
type AccountStore interface {
	Load(ctx context.Context) ([]*domaintypes.Account, error)
	Save(ctx context.Context, accounts []*domaintypes.Account) error
	Update(
		ctx context.Context,
		fn func(accounts []*domaintypes.Account) ([]*domaintypes.Account, error),
	) error
}
