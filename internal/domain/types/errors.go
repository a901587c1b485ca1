package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAmount is returned for a non-positive amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a card cannot cover amount plus tax.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTaxExceedsAmount is returned when a deposit would be eaten by its own tax.
	ErrTaxExceedsAmount = errors.New("tax exceeds amount")

	// ErrCardNotFound is returned when no card matches a number or position.
	ErrCardNotFound = errors.New("card not found")

	// ErrAccountNotFound is returned when no stored account matches.
	ErrAccountNotFound = errors.New("account not found")

	// ErrPersistence wraps every load or save failure of the account store.
	ErrPersistence = errors.New("persistence failure")

	// ErrUnknownCardKind is returned for a kind name outside the supported set.
	ErrUnknownCardKind = errors.New("unknown card kind")

	// ErrNotAttempted is reported by a transfer leg skipped after the other leg was refused.
	ErrNotAttempted = errors.New("not attempted")

	// ErrNotConfirmed is returned when a destructive command was not confirmed.
	ErrNotConfirmed = errors.New("not confirmed")
)

// UnknownCardKindError carries the rejected kind name.
type UnknownCardKindError struct {
	Name string
}

func (e *UnknownCardKindError) Error() string {
	return fmt.Sprintf("%s %q (want one of %s)", ErrUnknownCardKind, e.Name, kindNames())
}

// Is makes errors.Is(err, ErrUnknownCardKind) hold.
func (e *UnknownCardKindError) Is(target error) bool { return target == ErrUnknownCardKind }

func kindNames() string {
	kinds := CardKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

// ValidationError lists the codes of every rule a new account broke.
type ValidationError struct {
	Codes []string
}

func (e *ValidationError) Error() string {
	return "invalid account: " + strings.Join(e.Codes, ", ")
}
