// Package efg reads extensive-form game trees from their textual savefile
// representation.
//
// The format is line-oriented only by convention; tokens may be separated
// by any whitespace. A file holds a header followed by the game tree as a
// flat preorder list of node records:
//
//	EFG 2 R "title" { "player 1" "player 2" } "optional comment"
//	c "label" 1 "infoset" { "H" 1/2 "T" 1/2 } 0
//	p "label" 1 1 "infoset" { "raise" "fold" } 0
//	t "label" 1 "outcome" { 5, -5 }
//
// The integer after EFG is the format version; only version 2 is
// understood. The following D or R records whether the writer stored
// numbers in decimal or rational form; both read the same way here.
//
// Node records come in three kinds. A chance record (c) carries a label,
// an information set number, and on first use of that number the set's
// name plus its actions, each paired with a probability. A personal
// record (p) carries a label, a player number, an information set number,
// and on first use the set's name and actions. A terminal record (t)
// carries a label and an outcome number, with the outcome's name and one
// payoff per player on first use. Information set and outcome numbers act
// as definition-once identifiers: later records repeat just the number to
// share the same set or outcome. A decision node's children follow it
// immediately in preorder, one subtree per action.
//
// Text is double-quoted; a backslash escapes a quote inside the text.
// Numbers are integers, decimals, or rationals written as a/b. All
// probabilities and payoffs surface as exact *big.Rat values regardless
// of how the file spells them.
//
// ReadGame consumes the whole stream and returns a fully linked Game, or
// an error and no game at all. Reading happens in two phases: the stream
// is first tokenized and collected into flat records, then the tree is
// grown record by record, resolving information set and outcome numbers
// as they resurface. Games are read-only once built.
//
// Errors:
//
//   - ErrSyntax    - the stream violates the token grammar
//   - ErrVersion   - the header declares a version other than 2
//   - ErrStructure - tokens parse but describe an inconsistent game
package efg
