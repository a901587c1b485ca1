package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func withdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <position> <amount>",
		Short: "Withdraw money from a card; the withdraw tax is charged on top",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
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
			r := appCtx.Money.Withdraw(c, amount)
			if !r.OK() {
				return refused("withdraw", r)
			}
			if err := appCtx.Cards.Commit(cmd.Context(), sess); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Money %s withdrawn from %s. Money left: %s. Tax: %s\n",
				appCtx.Display(r.Amount), r.CardNumber, appCtx.Display(r.Balance), appCtx.Display(r.Tax))
			return nil
		},
	}
}

func putCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <position> <amount>",
		Short: "Put money on a card; the put tax is deducted",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
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
			r := appCtx.Money.Put(c, amount)
			if !r.OK() {
				return refused("put", r)
			}
			if err := appCtx.Cards.Commit(cmd.Context(), sess); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Money %s was put on %s. Balance: %s. Tax: %s\n",
				appCtx.Display(r.Amount), r.CardNumber, appCtx.Display(r.Balance), appCtx.Display(r.Tax))
			return nil
		},
	}
}

func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <position> <recipient-number> <amount>",
		Short: "Send money from a card to any card number",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			sess, err := session(cmd)
			if err != nil {
				return err
			}
			sender, err := appCtx.Cards.FindCard(sess, pos)
			if err != nil {
				return err
			}
			recipient, err := appCtx.Cards.FindCardByNumber(cmd.Context(), sess, args[1])
			if err != nil {
				return err
			}
			tr, err := appCtx.Money.Transfer(cmd.Context(), sess, sender, recipient, amount)
			if err != nil {
				return err
			}
			if leg, ok := tr.Refused(); ok {
				return refused("send", leg)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Money %s was put on %s. Balance: %s. Tax: %s\n",
				appCtx.Display(tr.Recipient.Amount), tr.Recipient.CardNumber,
				appCtx.Display(tr.Recipient.Balance), appCtx.Display(tr.Recipient.Tax))
			fmt.Fprintf(out, "Money %s was sent from %s. Balance: %s. Tax: %s (charged %s)\n",
				appCtx.Display(tr.Sender.Amount), tr.Sender.CardNumber,
				appCtx.Display(tr.Sender.Balance), appCtx.Display(tr.Sender.Tax), appCtx.Display(tr.Charged))
			return nil
		},
	}
}
