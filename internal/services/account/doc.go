// Package account creates, authenticates and removes stored accounts.
//
// New accounts are validated against fixed rules and login uniqueness before
// they are appended to the store. Credentials are compared in plaintext.
package account
