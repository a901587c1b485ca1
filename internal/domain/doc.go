// Package domain defines the bank data model, the sentinel errors and the
// store and service contracts shared across the app.
//
// The types and interfaces live in subpackages and are re-exported here so
// callers import a single package.
package domain
