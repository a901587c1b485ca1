package app

import (
	"io"
	"log/slog"

	"cardbank/internal/domain"
	"cardbank/internal/logger"
	accountsvc "cardbank/internal/services/account"
	cardsvc "cardbank/internal/services/card"
	moneysvc "cardbank/internal/services/money"
	"cardbank/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Log      *slog.Logger
	Store    *store.AccountFileStore
	Accounts domain.AccountService
	Cards    domain.CardService
	Money    domain.MoneyService
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	log, err := logger.New(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}

	// One file store shared by every service
	accountStore := store.NewAccountFileStore(cfg.DataFile, log.With(slog.String("component", "store")))

	return &Wire{
		Log:      log,
		Store:    accountStore,
		Accounts: accountsvc.New(accountStore, log.With(slog.String("component", "account"))),
		Cards:    cardsvc.New(accountStore, log.With(slog.String("component", "card"))),
		Money:    moneysvc.New(accountStore, log.With(slog.String("component", "money"))),
	}, nil
}
