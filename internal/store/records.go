package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cardbank/internal/domain"
)

// Internal record types. Balances are kept as decimal strings so both codecs
// round-trip them without loss.
type document struct {
	Accounts []accountRecord `json:"accounts" toml:"accounts"`
}

type accountRecord struct {
	Name     string       `json:"name" toml:"name"`
	Age      int          `json:"age" toml:"age"`
	Login    string       `json:"login" toml:"login"`
	Password string       `json:"password" toml:"password"`
	Cards    []cardRecord `json:"cards" toml:"cards"`
}

type cardRecord struct {
	Number  string `json:"number" toml:"number"`
	Balance string `json:"balance" toml:"balance"`
	Kind    string `json:"kind" toml:"kind"`
}

func toDocument(accounts []*domain.Account) document {
	doc := document{Accounts: make([]accountRecord, 0, len(accounts))}
	for _, a := range accounts {
		rec := accountRecord{
			Name:     a.Name,
			Age:      a.Age,
			Login:    a.Login,
			Password: a.Password,
			Cards:    make([]cardRecord, 0, len(a.Cards)),
		}
		for _, c := range a.Cards {
			rec.Cards = append(rec.Cards, cardRecord{
				Number:  c.Number,
				Balance: c.Balance.String(),
				Kind:    c.Kind.String(),
			})
		}
		doc.Accounts = append(doc.Accounts, rec)
	}
	return doc
}

func fromDocument(doc document) ([]*domain.Account, error) {
	accounts := make([]*domain.Account, 0, len(doc.Accounts))
	for _, rec := range doc.Accounts {
		a := &domain.Account{
			Name:     rec.Name,
			Age:      rec.Age,
			Login:    rec.Login,
			Password: rec.Password,
			Cards:    make([]*domain.Card, 0, len(rec.Cards)),
		}
		for _, cr := range rec.Cards {
			balance, err := decimal.NewFromString(cr.Balance)
			if err != nil {
				return nil, fmt.Errorf("card %s of %q: balance %q: %w", cr.Number, rec.Login, cr.Balance, err)
			}
			kind, err := domain.ParseCardKind(cr.Kind)
			if err != nil {
				return nil, fmt.Errorf("card %s of %q: %w", cr.Number, rec.Login, err)
			}
			a.Cards = append(a.Cards, &domain.Card{Number: cr.Number, Balance: balance, Kind: kind})
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
