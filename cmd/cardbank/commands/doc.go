// Package commands defines the cardbank CLI and wires dependencies for subcommands.
//
// Commands
//
//   - create-account   Create an account (name, age, login, password)
//   - destroy-account  Remove the logged in account (--yes)
//   - cards            List the cards of the account
//   - kinds            Show the fee schedule of every card kind
//   - create-card      Issue a card of a kind
//   - destroy-card     Remove the card at a position (--yes)
//   - withdraw         Withdraw money from a card
//   - put              Put money on a card
//   - send             Send money from a card to any card number
//
// Every command except create-account and kinds needs --login and --password.
//
// # Implementation
//
// The root command loads Config, applies the persistent flags over it and
// builds the app before any subcommand runs. Each invocation loads the store,
// applies one change and writes the store back.
package commands
