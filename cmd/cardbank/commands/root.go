package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"cardbank/internal/app"
	"cardbank/internal/domain"
)

var (
	configPath string
	dataFile   string
	verbose    bool
	login      string
	password   string
	appCtx     *app.App
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cardbank",
		Short:        "Console bank with taxed payment cards",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if dataFile != "" {
				cfg.DataFile = dataFile
			}
			if verbose {
				cfg.Log.Level = "debug"
			}
			appCtx, err = app.New(cfg, cmd.ErrOrStderr())
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&dataFile, "data", "", "account store file, .json or .toml (default ~/.cardbank/accounts.json)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVarP(&login, "login", "l", "", "account login")
	root.PersistentFlags().StringVarP(&password, "password", "p", "", "account password")

	root.AddCommand(
		createAccountCmd(),
		destroyAccountCmd(),
		cardsCmd(),
		kindsCmd(),
		createCardCmd(),
		destroyCardCmd(),
		withdrawCmd(),
		putCmd(),
		sendCmd(),
	)
	return root
}

// session authenticates with the --login and --password flags.
func session(cmd *cobra.Command) (*domain.Session, error) {
	if login == "" || password == "" {
		return nil, fmt.Errorf("login and password required (-l, -p)")
	}
	return appCtx.Login(cmd.Context(), login, password)
}

func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("card position %q: %w", s, domain.ErrCardNotFound)
	}
	return n, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount %q: %w", s, domain.ErrInvalidAmount)
	}
	return d, nil
}
