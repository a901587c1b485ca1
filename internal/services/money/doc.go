// Package money validates and applies withdrawals, deposits and transfers
// against cards.
//
// Every call is a complete attempt: it either refuses with a typed reason and
// leaves balances untouched, or applies the change. Withdraw and Put only
// touch the card in memory and leave persistence to the caller. Transfer
// commits its two legs itself, recipient first, as two independent store
// updates.
package money
