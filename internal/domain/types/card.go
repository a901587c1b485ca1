package types

import (
	"math/rand/v2"
	"strings"

	"github.com/shopspring/decimal"
)

// CardNumberLength is the number of digits in a generated card number.
const CardNumberLength = 16

// Card is a payment card owned by an account.
//
// Balance is only changed through Withdraw and Put, which do not check bounds;
// callers validate sufficiency first.
type Card struct {
	Number  string
	Balance decimal.Decimal
	Kind    CardKind
}

// NewCard issues a card of kind k with the kind's start balance and a random number.
func NewCard(k CardKind) *Card {
	return &Card{
		Number:  GenerateCardNumber(),
		Balance: k.StartBalance(),
		Kind:    k,
	}
}

// GenerateCardNumber returns CardNumberLength uniformly random digits.
// Leading zeros are allowed. Numbers are not checked against existing cards,
// so uniqueness is best-effort only.
func GenerateCardNumber() string {
	var b strings.Builder
	b.Grow(CardNumberLength)
	for range CardNumberLength {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}

// WithdrawTax forwards to the card kind.
func (c *Card) WithdrawTax(amount decimal.Decimal) decimal.Decimal { return c.Kind.WithdrawTax(amount) }

// PutTax forwards to the card kind.
func (c *Card) PutTax(amount decimal.Decimal) decimal.Decimal { return c.Kind.PutTax(amount) }

// SenderTax forwards to the card kind.
func (c *Card) SenderTax(amount decimal.Decimal) decimal.Decimal { return c.Kind.SenderTax(amount) }

// Withdraw decrements the balance by amount plus the withdraw tax.
func (c *Card) Withdraw(amount decimal.Decimal) {
	c.Balance = c.Balance.Sub(amount.Add(c.WithdrawTax(amount)))
}

// Put increments the balance by amount minus the put tax.
func (c *Card) Put(amount decimal.Decimal) {
	c.Balance = c.Balance.Add(amount.Sub(c.PutTax(amount)))
}
