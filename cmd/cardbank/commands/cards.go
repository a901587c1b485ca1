package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"cardbank/internal/domain"
)

func cardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "List the cards of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session(cmd)
			if err != nil {
				return err
			}
			if len(sess.Account.Cards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "There are no active cards!")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for i, c := range sess.Account.Cards {
				fmt.Fprintf(tw, "%d.\t%s\t%s\t%s\n", i+1, c.Number, c.Kind, appCtx.Display(c.Balance))
			}
			return tw.Flush()
		},
	}
}

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Show start balance and taxes of every card kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tSTART\tWITHDRAW\tPUT\tSEND")
			for _, k := range domain.CardKinds() {
				s := k.Schedule()
				fmt.Fprintf(tw, "%s\t%s\t%s%%+%s\t%s%%+%s\t%s%%+%s\n",
					k, appCtx.Display(s.StartBalance),
					s.WithdrawPercent, s.WithdrawFixed,
					s.PutPercent, s.PutFixed,
					s.SenderPercent, s.SenderFixed)
			}
			return tw.Flush()
		},
	}
}

func createCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-card <kind>",
		Short: "Issue a card: basic, capitalist, usual or virtual",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseCardKind(args[0])
			if err != nil {
				return suggestKind(err, args[0])
			}
			sess, err := session(cmd)
			if err != nil {
				return err
			}
			c := appCtx.Cards.CreateCard(sess, kind)
			if err := appCtx.Cards.Commit(cmd.Context(), sess); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Card %s (%s) created with %s\n", c.Number, c.Kind, appCtx.Display(c.Balance))
			return nil
		},
	}
}

func destroyCardCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "destroy-card <position>",
		Short: "Remove the card at a position of the cards list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			sess, err := session(cmd)
			if err != nil {
				return err
			}
			c, err := appCtx.Cards.FindCard(sess, pos)
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("%w: pass --yes to destroy card %s", domain.ErrNotConfirmed, c.Number)
			}
			appCtx.Cards.DestroyCard(sess, c)
			if err := appCtx.Cards.Commit(cmd.Context(), sess); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Card %s destroyed\n", c.Number)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm removal")
	return cmd
}

// refused turns a refused result into the command error.
func refused(op string, r domain.Result) error {
	return fmt.Errorf("%s refused for card %s: %w", op, r.CardNumber, r.Err())
}

// suggestKind appends the closest kind name, if any, to an unknown kind error.
func suggestKind(err error, input string) error {
	kinds := domain.CardKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(input)), names)
	if len(matches) == 0 {
		return err
	}
	return fmt.Errorf("%w (did you mean %s?)", err, matches[0].Str)
}
