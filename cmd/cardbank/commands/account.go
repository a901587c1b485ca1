package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cardbank/internal/domain"
)

func createAccountCmd() *cobra.Command {
	var (
		name string
		age  int
	)
	cmd := &cobra.Command{
		Use:   "create-account",
		Short: "Create an account; login and password come from -l and -p",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := appCtx.Accounts.CreateAccount(cmd.Context(), domain.Account{
				Name:     name,
				Age:      age,
				Login:    login,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created: %s\n", sess.Login())
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "owner name, capitalised")
	cmd.Flags().IntVar(&age, "age", 0, "owner age (23 to 90)")
	return cmd
}

func destroyAccountCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "destroy-account",
		Short: "Remove the account and all its cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session(cmd)
			if err != nil {
				return err
			}
			err = appCtx.Accounts.DestroyAccount(cmd.Context(), sess, yes)
			if errors.Is(err, domain.ErrNotConfirmed) {
				return fmt.Errorf("%w: pass --yes to destroy %s", err, sess.Login())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account %s destroyed\n", sess.Login())
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm removal")
	return cmd
}
