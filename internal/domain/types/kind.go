package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CardKind names one of the fixed fee schedules a card can be issued with.
type CardKind string

// Supported card kinds.
const (
	KindBasic      CardKind = "basic"
	KindCapitalist CardKind = "capitalist"
	KindUsual      CardKind = "usual"
	KindVirtual    CardKind = "virtual"
)

// String returns the string form of the kind.
func (k CardKind) String() string { return string(k) }

// FeeSchedule holds the per-kind constants used by every tax computation.
// Percentages are whole percent values (4 means 4%).
type FeeSchedule struct {
	StartBalance    decimal.Decimal
	WithdrawPercent decimal.Decimal
	WithdrawFixed   decimal.Decimal
	PutPercent      decimal.Decimal
	PutFixed        decimal.Decimal
	SenderPercent   decimal.Decimal
	SenderFixed     decimal.Decimal
}

func schedule(start, wp, wf, pp, pf, sp, sf int64) FeeSchedule {
	return FeeSchedule{
		StartBalance:    decimal.NewFromInt(start),
		WithdrawPercent: decimal.NewFromInt(wp),
		WithdrawFixed:   decimal.NewFromInt(wf),
		PutPercent:      decimal.NewFromInt(pp),
		PutFixed:        decimal.NewFromInt(pf),
		SenderPercent:   decimal.NewFromInt(sp),
		SenderFixed:     decimal.NewFromInt(sf),
	}
}

// feeSchedules is the fee table. Order of arguments:
// start, withdraw %, withdraw fixed, put %, put fixed, sender %, sender fixed.
var feeSchedules = map[CardKind]FeeSchedule{
	KindBasic:      schedule(0, 0, 0, 0, 0, 0, 0),
	KindCapitalist: schedule(100, 4, 0, 0, 10, 10, 0),
	KindUsual:      schedule(50, 5, 0, 2, 0, 0, 20),
	KindVirtual:    schedule(150, 88, 0, 0, 1, 0, 1),
}

// CardKinds lists every supported kind in display order.
func CardKinds() []CardKind {
	return []CardKind{KindBasic, KindCapitalist, KindUsual, KindVirtual}
}

// ParseCardKind resolves a user supplied kind name. Matching ignores case and
// surrounding spaces; unknown names yield ErrUnknownCardKind.
func ParseCardKind(s string) (CardKind, error) {
	k := CardKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", &UnknownCardKindError{Name: s}
	}
	return k, nil
}

// Valid reports whether k is one of the supported kinds.
func (k CardKind) Valid() bool {
	_, ok := feeSchedules[k]
	return ok
}

// Schedule returns the fee schedule of k. Unknown kinds get an all-zero schedule.
func (k CardKind) Schedule() FeeSchedule {
	return feeSchedules[k]
}

// StartBalance is the balance a freshly issued card of kind k holds.
func (k CardKind) StartBalance() decimal.Decimal { return k.Schedule().StartBalance }

// WithdrawTax is the fee charged on top of a withdrawal of amount.
func (k CardKind) WithdrawTax(amount decimal.Decimal) decimal.Decimal {
	s := k.Schedule()
	return Tax(amount, s.WithdrawPercent, s.WithdrawFixed)
}

// PutTax is the fee deducted from a deposit of amount.
func (k CardKind) PutTax(amount decimal.Decimal) decimal.Decimal {
	s := k.Schedule()
	return Tax(amount, s.PutPercent, s.PutFixed)
}

// SenderTax is the fee reported to the sender of a transfer of amount.
func (k CardKind) SenderTax(amount decimal.Decimal) decimal.Decimal {
	s := k.Schedule()
	return Tax(amount, s.SenderPercent, s.SenderFixed)
}

// Tax computes amount*percent/100 + fixed without rounding.
func Tax(amount, percent, fixed decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Shift(-2).Add(fixed)
}
