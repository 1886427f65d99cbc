// Package efg: the in-memory game model and its read accessors.

package efg

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/gambase/array"
	"github.com/katalvlaran/gambase/rectarray"
)

// Game is one extensive-form game: a player roster, a tree of chance,
// decision and terminal nodes, and the outcomes attached to them. ReadGame
// builds Game values; they are read-only afterwards.
type Game struct {
	title   string
	comment string

	players  *array.Array[*Player]
	chance   *Player
	root     *Node
	outcomes *array.Array[*Outcome]
}

// Player is one player of the game. The chance player is number 0 and
// reports IsChance; personal players are numbered from 1 in roster order.
type Player struct {
	number int
	name   string
	chance bool

	infosets *array.Array[*Infoset]
}

// Infoset is an information set: the decision points its player cannot
// tell apart, sharing one action list. Numbers run from 1 per player in
// definition order.
type Infoset struct {
	number int
	name   string
	player *Player

	actions *array.Array[*Action]
	members *array.Array[*Node]
}

// Action is one choice at an information set.
type Action struct {
	number  int
	name    string
	infoset *Infoset
	prob    *big.Rat // chance probability, nil for personal players
}

// Node is one node of the game tree. Terminal nodes have no player, no
// information set and no children.
type Node struct {
	name    string
	player  *Player
	infoset *Infoset
	parent  *Node
	outcome *Outcome

	children *array.Array[*Node]
}

// Outcome carries one payoff per player. Numbers run from 1 in definition
// order.
type Outcome struct {
	number  int
	name    string
	payoffs *array.Array[*big.Rat]
}

func newGame(title, comment string, players []string) *Game {
	g := &Game{title: title, comment: comment}
	g.players, _ = array.New[*Player](len(players))
	for i, name := range players {
		p := &Player{number: i + 1, name: name}
		p.infosets, _ = array.New[*Infoset](0)
		_ = g.players.Set(i+1, p)
	}
	g.chance = &Player{chance: true}
	g.chance.infosets, _ = array.New[*Infoset](0)
	g.outcomes, _ = array.New[*Outcome](0)

	return g
}

// Title returns the game title from the header.
func (g *Game) Title() string { return g.title }

// Comment returns the optional header comment, empty when absent.
func (g *Game) Comment() string { return g.comment }

// NumPlayers returns the number of personal players.
func (g *Game) NumPlayers() int { return g.players.Len() }

// Player returns personal player pl, numbered from 1 in roster order.
func (g *Game) Player(pl int) (*Player, error) {
	p, err := g.players.Get(pl)
	if err != nil {
		return nil, fmt.Errorf("efg: player %d: %w", pl, err)
	}

	return p, nil
}

// Players returns a fresh read cursor over the personal players in roster
// order.
func (g *Game) Players() *array.PtrIterator[Player] {
	return array.NewPtrIterator(g.players)
}

// Chance returns the chance player.
func (g *Game) Chance() *Player { return g.chance }

// Root returns the root node of the game tree.
func (g *Game) Root() *Node { return g.root }

// NumOutcomes returns the number of distinct outcomes.
func (g *Game) NumOutcomes() int { return g.outcomes.Len() }

// Outcome returns outcome n, numbered from 1 in definition order.
func (g *Game) Outcome(n int) (*Outcome, error) {
	out, err := g.outcomes.Get(n)
	if err != nil {
		return nil, fmt.Errorf("efg: outcome %d: %w", n, err)
	}

	return out, nil
}

// Outcomes returns a fresh read cursor over the outcomes in definition
// order.
func (g *Game) Outcomes() *array.PtrIterator[Outcome] {
	return array.NewPtrIterator(g.outcomes)
}

// PayoffTable lays every payoff out as an outcomes × players table: row n
// is outcome n and column pl is player pl, both numbered from 1. Entries
// are independent copies of the stored rationals.
// Complexity: O(outcomes·players).
func (g *Game) PayoffTable() *rectarray.RectArray[*big.Rat] {
	table, _ := rectarray.NewRect[*big.Rat](g.NumOutcomes(), g.NumPlayers())
	for it := array.NewPtrIterator(g.outcomes); !it.AtEnd(); it.Next() {
		out := it.Ptr()
		for pl := 1; pl <= g.NumPlayers(); pl++ {
			v, _ := out.payoffs.Get(pl)
			_ = table.Set(out.number, pl, new(big.Rat).Set(v))
		}
	}

	return table
}

// Number returns the player's number, 0 for chance.
func (p *Player) Number() int { return p.number }

// Name returns the roster name, empty for chance.
func (p *Player) Name() string { return p.name }

// IsChance reports whether this is the chance player.
func (p *Player) IsChance() bool { return p.chance }

// NumInfosets returns how many information sets the player owns.
func (p *Player) NumInfosets() int { return p.infosets.Len() }

// Infoset returns the player's information set n, numbered from 1 in
// definition order.
func (p *Player) Infoset(n int) (*Infoset, error) {
	s, err := p.infosets.Get(n)
	if err != nil {
		return nil, fmt.Errorf("efg: player %d information set %d: %w", p.number, n, err)
	}

	return s, nil
}

// Number returns the set's number within its player.
func (s *Infoset) Number() int { return s.number }

// Name returns the label given in the defining record.
func (s *Infoset) Name() string { return s.name }

// Player returns the owning player.
func (s *Infoset) Player() *Player { return s.player }

// NumActions returns the number of actions at the set.
func (s *Infoset) NumActions() int { return s.actions.Len() }

// Action returns action n, numbered from 1 in file order.
func (s *Infoset) Action(n int) (*Action, error) {
	a, err := s.actions.Get(n)
	if err != nil {
		return nil, fmt.Errorf("efg: action %d: %w", n, err)
	}

	return a, nil
}

// Actions returns a fresh read cursor over the actions in file order.
func (s *Infoset) Actions() *array.PtrIterator[Action] {
	return array.NewPtrIterator(s.actions)
}

// NumMembers returns how many tree nodes belong to the set.
func (s *Infoset) NumMembers() int { return s.members.Len() }

// Member returns the n-th member node in preorder, numbered from 1.
func (s *Infoset) Member(n int) (*Node, error) {
	m, err := s.members.Get(n)
	if err != nil {
		return nil, fmt.Errorf("efg: member %d: %w", n, err)
	}

	return m, nil
}

// Number returns the action's number within its information set.
func (a *Action) Number() int { return a.number }

// Name returns the action label.
func (a *Action) Name() string { return a.name }

// Infoset returns the information set the action belongs to.
func (a *Action) Infoset() *Infoset { return a.infoset }

// Prob returns an independent copy of the chance probability, or nil when
// the action belongs to a personal player.
func (a *Action) Prob() *big.Rat {
	if a.prob == nil {
		return nil
	}

	return new(big.Rat).Set(a.prob)
}

// Name returns the node label.
func (n *Node) Name() string { return n.name }

// Player returns the player moving at the node, nil for terminal nodes.
func (n *Node) Player() *Player { return n.player }

// Infoset returns the node's information set, nil for terminal nodes.
func (n *Node) Infoset() *Infoset { return n.infoset }

// Parent returns the parent node, nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Outcome returns the attached outcome, nil when the record gave none.
func (n *Node) Outcome() *Outcome { return n.outcome }

// IsTerminal reports whether the node ends a play of the game.
func (n *Node) IsTerminal() bool { return n.player == nil }

// NumChildren returns the number of children, one per action of the
// node's information set, 0 for terminal nodes.
func (n *Node) NumChildren() int { return n.children.Len() }

// Child returns child i, numbered from 1 in action order.
func (n *Node) Child(i int) (*Node, error) {
	c, err := n.children.Get(i)
	if err != nil {
		return nil, fmt.Errorf("efg: child %d: %w", i, err)
	}

	return c, nil
}

// Children returns a fresh read cursor over the children in action order.
func (n *Node) Children() *array.PtrIterator[Node] {
	return array.NewPtrIterator(n.children)
}

// Number returns the outcome's number.
func (o *Outcome) Number() int { return o.number }

// Name returns the label given in the defining record.
func (o *Outcome) Name() string { return o.name }

// Payoff returns an independent copy of player pl's payoff.
func (o *Outcome) Payoff(pl int) (*big.Rat, error) {
	v, err := o.payoffs.Get(pl)
	if err != nil {
		return nil, fmt.Errorf("efg: payoff of player %d: %w", pl, err)
	}

	return new(big.Rat).Set(v), nil
}
