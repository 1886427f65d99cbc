// Package efg: first phase, parsing the token stream into flat records.

package efg

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gambase/array"
)

// infosetRecord carries an information set definition as read, actions and
// probabilities still in literal form.
type infosetRecord struct {
	name    string
	actions []string
	probs   []string
}

// outcomeRecord carries an outcome definition as read.
type outcomeRecord struct {
	name    string
	payoffs []string
}

// nodeRecord is one entry of the preorder node list. player is 0 on chance
// records and -1 on terminal ones. infosetData and outcomeData are set only
// when the record defines the numbered entity inline.
type nodeRecord struct {
	name    string
	player  int
	infoset int
	outcome int

	infosetData *infosetRecord
	outcomeData *outcomeRecord
}

// treeRecord is the whole savefile in flat form.
type treeRecord struct {
	title   string
	comment string
	players []string
	nodes   *array.Array[*nodeRecord]
}

// ReadGame parses one savefile from r and links it into a Game. The whole
// stream is consumed. On any failure the game under construction is
// discarded and the returned error reports the first offence, so callers
// never see a partial tree.
func ReadGame(r io.Reader) (*Game, error) {
	lx := newLexer(r)
	tree := &treeRecord{}
	tree.nodes, _ = array.New[*nodeRecord](0)

	if err := parse(lx, tree); err != nil {
		return nil, err
	}

	return build(tree)
}

// parse consumes the header and then node records until end of stream.
func parse(lx *lexer, tree *treeRecord) error {
	if err := lx.expect(tokEFG, "EFG header"); err != nil {
		return err
	}
	if err := lx.expect(tokInteger, "format version"); err != nil {
		return err
	}
	if lx.n != 2 {
		return fmt.Errorf("%w: version %d", ErrVersion, lx.n)
	}
	if err := lx.next(); err != nil {
		return err
	}
	if lx.tok != tokD && lx.tok != tokR {
		return lx.errf("expected precision marker D or R, got %s", lx.tok)
	}
	if err := lx.expect(tokText, "game title"); err != nil {
		return err
	}
	tree.title = lx.lit

	if err := parsePlayers(lx, tree); err != nil {
		return err
	}

	if err := lx.next(); err != nil {
		return err
	}
	if lx.tok == tokText {
		tree.comment = lx.lit
		if err := lx.next(); err != nil {
			return err
		}
	}

	for lx.tok != tokEOF {
		var err error
		switch lx.tok {
		case tokC:
			err = parseChanceNode(lx, tree)
		case tokP:
			err = parsePersonalNode(lx, tree)
		case tokT:
			err = parseTerminalNode(lx, tree)
		default:
			err = lx.errf("expected node record, got %s", lx.tok)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func parsePlayers(lx *lexer, tree *treeRecord) error {
	if err := lx.expect(tokLBrace, "player list"); err != nil {
		return err
	}
	for {
		if err := lx.next(); err != nil {
			return err
		}
		if lx.tok != tokText {
			break
		}
		tree.players = append(tree.players, lx.lit)
	}
	if lx.tok != tokRBrace {
		return lx.errf("unclosed player list, got %s", lx.tok)
	}

	return nil
}

// parseChanceNode reads one c record: label, information set number, an
// inline set definition with action/probability pairs on first use, and
// the outcome.
func parseChanceNode(lx *lexer, tree *treeRecord) error {
	if err := lx.expect(tokText, "node label"); err != nil {
		return err
	}
	rec := &nodeRecord{name: lx.lit}

	if err := lx.expect(tokInteger, "information set number"); err != nil {
		return err
	}
	rec.infoset = lx.n

	if err := lx.next(); err != nil {
		return err
	}
	if lx.tok == tokText {
		def := &infosetRecord{name: lx.lit}
		if err := lx.expect(tokLBrace, "action list"); err != nil {
			return err
		}
		if err := lx.next(); err != nil {
			return err
		}
		for {
			if lx.tok != tokText {
				return lx.errf("expected action label, got %s", lx.tok)
			}
			def.actions = append(def.actions, lx.lit)

			if err := lx.next(); err != nil {
				return err
			}
			if !lx.tok.isNumber() {
				return lx.errf("expected action probability, got %s", lx.tok)
			}
			def.probs = append(def.probs, lx.lit)

			if err := lx.next(); err != nil {
				return err
			}
			if lx.tok == tokRBrace {
				break
			}
		}
		rec.infosetData = def
		if err := lx.next(); err != nil {
			return err
		}
	}

	if lx.tok != tokInteger {
		return lx.errf("expected outcome number, got %s", lx.tok)
	}
	rec.outcome = lx.n
	tree.nodes.Append(rec)

	if err := lx.next(); err != nil {
		return err
	}

	return parseOutcome(lx, rec)
}

// parsePersonalNode reads one p record: label, player number, information
// set number, an inline set definition with its actions on first use, and
// the outcome.
func parsePersonalNode(lx *lexer, tree *treeRecord) error {
	if err := lx.expect(tokText, "node label"); err != nil {
		return err
	}
	rec := &nodeRecord{name: lx.lit}

	if err := lx.expect(tokInteger, "player number"); err != nil {
		return err
	}
	if lx.n < 1 {
		return fmt.Errorf("%w: personal node %q has player number %d",
			ErrStructure, rec.name, lx.n)
	}
	rec.player = lx.n

	if err := lx.expect(tokInteger, "information set number"); err != nil {
		return err
	}
	rec.infoset = lx.n

	if err := lx.next(); err != nil {
		return err
	}
	if lx.tok == tokText {
		def := &infosetRecord{name: lx.lit}
		if err := lx.expect(tokLBrace, "action list"); err != nil {
			return err
		}
		if err := lx.next(); err != nil {
			return err
		}
		for {
			if lx.tok != tokText {
				return lx.errf("expected action label, got %s", lx.tok)
			}
			def.actions = append(def.actions, lx.lit)

			if err := lx.next(); err != nil {
				return err
			}
			if lx.tok == tokRBrace {
				break
			}
		}
		rec.infosetData = def
		if err := lx.next(); err != nil {
			return err
		}
	}

	if lx.tok != tokInteger {
		return lx.errf("expected outcome number, got %s", lx.tok)
	}
	rec.outcome = lx.n
	tree.nodes.Append(rec)

	if err := lx.next(); err != nil {
		return err
	}

	return parseOutcome(lx, rec)
}

// parseTerminalNode reads one t record: label and outcome.
func parseTerminalNode(lx *lexer, tree *treeRecord) error {
	if err := lx.expect(tokText, "node label"); err != nil {
		return err
	}
	rec := &nodeRecord{name: lx.lit, player: -1}

	if err := lx.expect(tokInteger, "outcome number"); err != nil {
		return err
	}
	rec.outcome = lx.n
	tree.nodes.Append(rec)

	if err := lx.next(); err != nil {
		return err
	}

	return parseOutcome(lx, rec)
}

// parseOutcome reads the optional inline outcome definition that may close
// any node record. The current token decides: text opens a definition,
// anything else belongs to the next record and stays untouched. Payoffs
// may be separated by commas, whitespace or both.
func parseOutcome(lx *lexer, rec *nodeRecord) error {
	if lx.tok != tokText {
		return nil
	}
	def := &outcomeRecord{name: lx.lit}

	if err := lx.expect(tokLBrace, "payoff list"); err != nil {
		return err
	}
	if err := lx.next(); err != nil {
		return err
	}
	for {
		if !lx.tok.isNumber() {
			return lx.errf("expected payoff, got %s", lx.tok)
		}
		def.payoffs = append(def.payoffs, lx.lit)

		if err := lx.next(); err != nil {
			return err
		}
		if lx.tok == tokComma {
			if err := lx.next(); err != nil {
				return err
			}
		}
		if lx.tok == tokRBrace {
			break
		}
	}
	rec.outcomeData = def

	return lx.next()
}
