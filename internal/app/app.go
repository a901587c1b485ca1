package app

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"cardbank/internal/domain"
	"cardbank/internal/money"
)

// App is what a command runs against: the wired services plus the display currency.
type App struct {
	*Wire
	Currency string
}

// New builds an App from cfg.
func New(cfg Config, logOut io.Writer) (*App, error) {
	w, err := NewWire(cfg, logOut)
	if err != nil {
		return nil, err
	}
	return &App{Wire: w, Currency: cfg.Currency}, nil
}

// Login authenticates and returns a session on the matching account.
func (a *App) Login(ctx context.Context, login, password string) (*domain.Session, error) {
	return a.Accounts.Authenticate(ctx, login, password)
}

// Display formats amount in the configured currency.
func (a *App) Display(amount decimal.Decimal) string {
	return money.Format(amount, a.Currency)
}
