// Package app wires application dependencies for the CLI.
//
// It resolves Config from defaults, an optional TOML file and the
// environment, then builds the logger, the account store and the services,
// exposing them via the Wire struct for commands to use.
package app
