package types

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Operation names a money operation.
type Operation string

// Money operations. A transfer produces one OpSend and one OpReceive result.
const (
	OpWithdraw Operation = "withdraw"
	OpPut      Operation = "put"
	OpSend     Operation = "send"
	OpReceive  Operation = "receive"
)

// Reason says why an operation was refused. The zero value means success.
type Reason string

// Failure reasons.
const (
	ReasonNone              Reason = ""
	ReasonInvalidAmount     Reason = "invalid_amount"
	ReasonInsufficientFunds Reason = "insufficient_funds"
	ReasonTaxExceedsAmount  Reason = "tax_exceeds_amount"

	// ReasonNotAttempted marks the leg of a transfer that was skipped
	// because the other leg was refused.
	ReasonNotAttempted Reason = "not_attempted"
)

// Err maps r to its sentinel error, nil for ReasonNone.
func (r Reason) Err() error {
	switch r {
	case ReasonNone:
		return nil
	case ReasonInvalidAmount:
		return ErrInvalidAmount
	case ReasonInsufficientFunds:
		return ErrInsufficientFunds
	case ReasonTaxExceedsAmount:
		return ErrTaxExceedsAmount
	case ReasonNotAttempted:
		return ErrNotAttempted
	}
	return nil
}

// Result describes one attempted money operation on one card.
// Balance is only meaningful when the operation succeeded.
type Result struct {
	ID         uuid.UUID
	Operation  Operation
	CardNumber string
	Amount     decimal.Decimal
	Tax        decimal.Decimal
	Balance    decimal.Decimal
	Reason     Reason
}

// OK reports whether the operation was applied.
func (r Result) OK() bool { return r.Reason == ReasonNone }

// Err returns the sentinel error for a refused operation, nil otherwise.
func (r Result) Err() error { return r.Reason.Err() }

// TransferResult holds both legs of a transfer.
//
// Sender.Tax is the sender tax of the card kind, while Charged is what the
// sender balance actually lost on top of the amount (the withdraw tax).
type TransferResult struct {
	Sender    Result
	Recipient Result
	Charged   decimal.Decimal
}

// OK reports whether both legs were applied.
func (t TransferResult) OK() bool { return t.Sender.OK() && t.Recipient.OK() }

// Err returns the refusal of the leg that caused the transfer to stop.
// A leg marked ReasonNotAttempted only reports when no other reason exists.
func (t TransferResult) Err() error {
	if leg, ok := t.Refused(); ok {
		return leg.Err()
	}
	if err := t.Sender.Err(); err != nil {
		return err
	}
	return t.Recipient.Err()
}

// Refused returns the leg that caused the transfer to stop, if any.
func (t TransferResult) Refused() (Result, bool) {
	for _, leg := range []Result{t.Sender, t.Recipient} {
		if !leg.OK() && leg.Reason != ReasonNotAttempted {
			return leg, true
		}
	}
	return Result{}, false
}
