// Package card issues, finds and removes cards of the session account and
// writes the session account back to the store.
package card
