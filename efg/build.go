// Package efg: second phase, linking flat records into the game tree.

package efg

import (
	"fmt"
	"math/big"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/gambase/array"
)

// builder grows a Game from the flat record list. Information sets and
// outcomes register under their savefile numbers at first definition and
// later records resolve through the tables. The tables keep definition
// order, which fixes the numbering of the finished game.
type builder struct {
	game   *Game
	cursor *array.PtrIterator[nodeRecord]

	infosets []*orderedmap.OrderedMap[int, *Infoset] // indexed by player number, 0 = chance
	outcomes *orderedmap.OrderedMap[int, *Outcome]
}

func build(tree *treeRecord) (*Game, error) {
	if tree.nodes.Len() == 0 {
		return nil, fmt.Errorf("%w: savefile has no node records", ErrStructure)
	}

	b := &builder{
		game:     newGame(tree.title, tree.comment, tree.players),
		cursor:   array.NewPtrIterator(tree.nodes),
		infosets: make([]*orderedmap.OrderedMap[int, *Infoset], len(tree.players)+1),
		outcomes: orderedmap.New[int, *Outcome](),
	}
	for i := range b.infosets {
		b.infosets[i] = orderedmap.New[int, *Infoset]()
	}

	root, err := b.subtree(nil)
	if err != nil {
		return nil, err
	}
	b.game.root = root
	b.number()

	return b.game, nil
}

// subtree consumes the record under the cursor, builds its node and
// recurses once per action for decision nodes. The cursor advances exactly
// one record per node of the finished tree.
func (b *builder) subtree(parent *Node) (*Node, error) {
	if b.cursor.AtEnd() {
		return nil, fmt.Errorf("%w: node records end before the tree is complete", ErrStructure)
	}
	rec := b.cursor.Ptr()
	b.cursor.Next()

	n := &Node{name: rec.name, parent: parent}
	n.children, _ = array.New[*Node](0)

	if rec.outcome > 0 {
		out, err := b.resolveOutcome(rec)
		if err != nil {
			return nil, err
		}
		n.outcome = out
	}

	if rec.player < 0 {
		return n, nil
	}

	player := b.game.chance
	if rec.player > 0 {
		p, err := b.game.players.Get(rec.player)
		if err != nil {
			return nil, fmt.Errorf("%w: node %q names player %d of %d",
				ErrStructure, rec.name, rec.player, b.game.NumPlayers())
		}
		player = p
	}

	iset, err := b.resolveInfoset(player, rec)
	if err != nil {
		return nil, err
	}
	n.player = player
	n.infoset = iset
	iset.members.Append(n)

	for i := 1; i <= iset.NumActions(); i++ {
		child, err := b.subtree(n)
		if err != nil {
			return nil, err
		}
		n.children.Append(child)
	}

	return n, nil
}

// resolveOutcome returns the outcome registered under the record's number,
// creating it from the inline definition on first sight. A definition must
// carry at least one payoff per player; extras are ignored.
func (b *builder) resolveOutcome(rec *nodeRecord) (*Outcome, error) {
	if out, ok := b.outcomes.Get(rec.outcome); ok {
		return out, nil
	}
	if rec.outcomeData == nil {
		return nil, fmt.Errorf("%w: outcome %d referenced before its definition",
			ErrStructure, rec.outcome)
	}

	out := &Outcome{name: rec.outcomeData.name}
	out.payoffs, _ = array.New[*big.Rat](b.game.NumPlayers())
	for pl := 1; pl <= b.game.NumPlayers(); pl++ {
		if pl > len(rec.outcomeData.payoffs) {
			return nil, fmt.Errorf("%w: outcome %d defines %d payoffs for %d players",
				ErrStructure, rec.outcome, len(rec.outcomeData.payoffs), b.game.NumPlayers())
		}
		v, err := parseRat(rec.outcomeData.payoffs[pl-1])
		if err != nil {
			return nil, err
		}
		_ = out.payoffs.Set(pl, v)
	}
	b.outcomes.Set(rec.outcome, out)

	return out, nil
}

// resolveInfoset returns the player's information set registered under the
// record's number, creating it from the inline definition on first sight.
func (b *builder) resolveInfoset(player *Player, rec *nodeRecord) (*Infoset, error) {
	table := b.infosets[player.number]
	if iset, ok := table.Get(rec.infoset); ok {
		return iset, nil
	}
	if rec.infosetData == nil {
		return nil, fmt.Errorf("%w: information set %d of player %d referenced before its definition",
			ErrStructure, rec.infoset, player.number)
	}
	def := rec.infosetData
	if player.chance && len(def.probs) < len(def.actions) {
		return nil, fmt.Errorf("%w: chance information set %d lacks action probabilities",
			ErrStructure, rec.infoset)
	}

	iset := &Infoset{name: def.name, player: player}
	iset.actions, _ = array.New[*Action](len(def.actions))
	iset.members, _ = array.New[*Node](0)
	for i, label := range def.actions {
		act := &Action{number: i + 1, name: label, infoset: iset}
		if player.chance {
			v, err := parseRat(def.probs[i])
			if err != nil {
				return nil, err
			}
			act.prob = v
		}
		_ = iset.actions.Set(i+1, act)
	}
	table.Set(rec.infoset, iset)

	return iset, nil
}

// number assigns definition-order numbers, per player for information sets
// and game-wide for outcomes, and hangs the collections off their owners.
func (b *builder) number() {
	for idx, table := range b.infosets {
		owner := b.game.chance
		if idx > 0 {
			owner, _ = b.game.players.Get(idx)
		}
		for pair := table.Oldest(); pair != nil; pair = pair.Next() {
			pair.Value.number = owner.infosets.Append(pair.Value)
		}
	}
	for pair := b.outcomes.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.number = b.game.outcomes.Append(pair.Value)
	}
}

// parseRat converts a numeric literal to an exact rational. The lexer only
// emits integer, decimal and a/b forms, all of which big.Rat understands.
func parseRat(lit string) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, fmt.Errorf("%w: unreadable number %q", ErrSyntax, lit)
	}

	return v, nil
}
