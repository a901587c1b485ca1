package domain

import (
	interfaces "cardbank/internal/domain/interfaces"
	types "cardbank/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Account              = types.Account
	Card                 = types.Card
	CardKind             = types.CardKind
	FeeSchedule          = types.FeeSchedule
	Session              = types.Session
	Operation            = types.Operation
	Reason               = types.Reason
	Result               = types.Result
	TransferResult       = types.TransferResult
	ValidationError      = types.ValidationError
	UnknownCardKindError = types.UnknownCardKindError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AccountStore   = interfaces.AccountStore
	AccountService = interfaces.AccountService
	CardService    = interfaces.CardService
	MoneyService   = interfaces.MoneyService
)

// Card kinds, operations and reasons re-exported for callers of domain.
const (
	KindBasic      = types.KindBasic
	KindCapitalist = types.KindCapitalist
	KindUsual      = types.KindUsual
	KindVirtual    = types.KindVirtual

	OpWithdraw = types.OpWithdraw
	OpPut      = types.OpPut
	OpSend     = types.OpSend
	OpReceive  = types.OpReceive

	ReasonNone              = types.ReasonNone
	ReasonInvalidAmount     = types.ReasonInvalidAmount
	ReasonInsufficientFunds = types.ReasonInsufficientFunds
	ReasonTaxExceedsAmount  = types.ReasonTaxExceedsAmount
	ReasonNotAttempted      = types.ReasonNotAttempted

	CardNumberLength = types.CardNumberLength
)

// Sentinel errors. Check with errors.Is.
var (
	ErrInvalidAmount     = types.ErrInvalidAmount
	ErrInsufficientFunds = types.ErrInsufficientFunds
	ErrTaxExceedsAmount  = types.ErrTaxExceedsAmount
	ErrCardNotFound      = types.ErrCardNotFound
	ErrAccountNotFound   = types.ErrAccountNotFound
	ErrPersistence       = types.ErrPersistence
	ErrUnknownCardKind   = types.ErrUnknownCardKind
	ErrNotAttempted      = types.ErrNotAttempted
	ErrNotConfirmed      = types.ErrNotConfirmed
)

// Constructors and helpers forwarded from types.
var (
	NewCard            = types.NewCard
	GenerateCardNumber = types.GenerateCardNumber
	ParseCardKind      = types.ParseCardKind
	CardKinds          = types.CardKinds
	Tax                = types.Tax
)
