// Package efg: sentinel errors shared by the lexer, parser and builder.

package efg

import "errors"

var (
	// ErrSyntax reports input that violates the savefile token grammar,
	// from stray characters up to misplaced braces.
	ErrSyntax = errors.New("efg: malformed savefile")

	// ErrVersion reports a header whose format version is not 2.
	ErrVersion = errors.New("efg: unsupported savefile version")

	// ErrStructure reports a file that tokenizes cleanly but describes an
	// impossible game, such as an outcome referenced before its defining
	// record or a payoff list shorter than the player list.
	ErrStructure = errors.New("efg: inconsistent game structure")
)
