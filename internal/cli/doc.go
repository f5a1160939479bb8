// Package cli implements the interactive admin console: a REPL that gates
// every screen change through the route guard and drives the collection
// stores behind each screen.
package cli
