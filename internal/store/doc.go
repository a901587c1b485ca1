// Package store provides file-based persistence for the account list.
//
// The whole list of accounts lives in one file that is read completely and
// rewritten completely on every operation; there is no incremental update.
// Writes go through a temp file and a rename so a crash never leaves a torn
// file, but nothing coordinates two processes: the last full rewrite wins.
//
// The file format follows the extension:
//   - .json  indented JSON (default)
//   - .toml  TOML arrays of tables
//
// Balances are stored as decimal strings in both formats.
package store
