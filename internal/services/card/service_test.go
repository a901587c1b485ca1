package card_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"cardbank/internal/domain"
	"cardbank/internal/services/card"
	"cardbank/internal/store"
)

func setup(t *testing.T, accounts ...*domain.Account) (*card.Service, *store.AccountFileStore) {
	t.Helper()
	st := store.NewAccountFileStore(filepath.Join(t.TempDir(), "accounts.toml"), nil)
	if err := st.Save(context.Background(), accounts); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return card.New(st, nil), st
}

func TestCreateDestroyCommit(t *testing.T) {
	ctx := context.Background()
	alice := &domain.Account{Name: "Alice", Age: 30, Login: "alice", Password: "secret1"}
	svc, st := setup(t, alice)
	sess := &domain.Session{Account: alice}

	usual := svc.CreateCard(sess, domain.KindUsual)
	virtual := svc.CreateCard(sess, domain.KindVirtual)
	if !usual.Balance.Equal(decimal.NewFromInt(50)) || len(usual.Number) != domain.CardNumberLength {
		t.Fatalf("unexpected card: %+v", usual)
	}
	if err := svc.Commit(ctx, sess); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	svc.DestroyCard(sess, usual)
	if err := svc.Commit(ctx, sess); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	accounts, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cards := accounts[0].Cards
	if len(cards) != 1 || cards[0].Number != virtual.Number || cards[0].Kind != domain.KindVirtual {
		t.Fatalf("stored cards: %+v", cards)
	}
}

func TestFindCard_Position(t *testing.T) {
	alice := &domain.Account{Login: "alice"}
	svc, _ := setup(t, alice)
	sess := &domain.Session{Account: alice}
	first := svc.CreateCard(sess, domain.KindBasic)
	svc.CreateCard(sess, domain.KindCapitalist)

	got, err := svc.FindCard(sess, 1)
	if err != nil || got != first {
		t.Fatalf("FindCard(1)=%v, %v", got, err)
	}
	for _, pos := range []int{0, 3, -1} {
		if _, err := svc.FindCard(sess, pos); !errors.Is(err, domain.ErrCardNotFound) {
			t.Fatalf("FindCard(%d): want ErrCardNotFound, got %v", pos, err)
		}
	}
}

func TestFindCardByNumber(t *testing.T) {
	ctx := context.Background()
	own := &domain.Card{Number: "1111222233334444", Balance: decimal.NewFromInt(50), Kind: domain.KindUsual}
	other := &domain.Card{Number: "5555666677778888", Balance: decimal.NewFromInt(100), Kind: domain.KindCapitalist}
	alice := &domain.Account{Login: "alice", Cards: []*domain.Card{own}}
	bob := &domain.Account{Login: "bobby", Cards: []*domain.Card{other}}
	svc, _ := setup(t, alice, bob)
	sess := &domain.Session{Account: alice}

	got, err := svc.FindCardByNumber(ctx, sess, own.Number)
	if err != nil || got != own {
		t.Fatalf("own card: got %v, %v", got, err)
	}
	got, err = svc.FindCardByNumber(ctx, sess, other.Number)
	if err != nil || got.Number != other.Number || got.Kind != domain.KindCapitalist {
		t.Fatalf("other card: got %v, %v", got, err)
	}
	if _, err := svc.FindCardByNumber(ctx, sess, "0000000000000000"); !errors.Is(err, domain.ErrCardNotFound) {
		t.Fatalf("want ErrCardNotFound, got %v", err)
	}
}

func TestCommit_AccountGone(t *testing.T) {
	svc, _ := setup(t)
	sess := &domain.Session{Account: &domain.Account{Login: "ghost"}}
	if err := svc.Commit(context.Background(), sess); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}
