// Package efg_test: end-to-end savefile reading coverage.

package efg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gambase/array"
	"github.com/katalvlaran/gambase/efg"
)

// twoStage is a two-player tree with a shared second-stage information
// set: player 2 cannot tell which move player 1 made.
const twoStage = `EFG 2 R "Entry game" { "Player 1" "Player 2" }
"two stages, imperfect information"

p "ROOT" 1 1 "(1,1)" { "L" "R" } 0
p "" 2 1 "(2,1)" { "l" "r" } 0
t "" 1 "LL" { 1, -1 }
t "" 2 "LR" { -1, 1 }
p "" 2 1 0
t "" 3 "RL" { 2, 0 }
t "" 4 "RR" { 0, 2 }
`

// coinFlip opens with a chance move; both second-stage nodes share player
// 2's only information set and the late terminal records reuse outcomes.
const coinFlip = `EFG 2 D "Coin game" { "A" "B" } "flip then guess"
c "" 1 "flip" { "H" 1/2 "T" 1/2 } 0
p "" 2 1 "guess" { "h" "t" } 0
t "" 1 "match" { 1, -1 }
t "" 2 "miss" { -1, 1 }
p "" 2 1 0
t "" 2
t "" 1
`

func mustRead(t *testing.T, src string) *efg.Game {
	t.Helper()
	g, err := efg.ReadGame(strings.NewReader(src))
	require.NoError(t, err)
	require.NotNil(t, g)

	return g
}

func TestReadGame_HeaderFields(t *testing.T) {
	g := mustRead(t, twoStage)
	require.Equal(t, "Entry game", g.Title())
	require.Equal(t, "two stages, imperfect information", g.Comment())
	require.Equal(t, 2, g.NumPlayers())

	p1, err := g.Player(1)
	require.NoError(t, err)
	require.Equal(t, "Player 1", p1.Name())
	require.Equal(t, 1, p1.Number())
	require.False(t, p1.IsChance())

	_, err = g.Player(3)
	require.ErrorIs(t, err, array.ErrIndex)

	require.True(t, g.Chance().IsChance())
	require.Equal(t, 0, g.Chance().Number())
}

func TestReadGame_TreeShape(t *testing.T) {
	g := mustRead(t, twoStage)

	root := g.Root()
	require.Equal(t, "ROOT", root.Name())
	require.False(t, root.IsTerminal())
	require.Nil(t, root.Parent())
	require.Nil(t, root.Outcome())
	require.Equal(t, 2, root.NumChildren())

	p1, _ := g.Player(1)
	require.Same(t, p1, root.Player())

	left, err := root.Child(1)
	require.NoError(t, err)
	right, err := root.Child(2)
	require.NoError(t, err)
	require.Same(t, root, left.Parent())
	require.Equal(t, 2, left.NumChildren())
	require.Equal(t, 2, right.NumChildren())

	ll, err := left.Child(1)
	require.NoError(t, err)
	require.True(t, ll.IsTerminal())
	require.Nil(t, ll.Player())
	require.Nil(t, ll.Infoset())
	require.Zero(t, ll.NumChildren())

	_, err = root.Child(3)
	require.ErrorIs(t, err, array.ErrIndex)
}

func TestReadGame_SharedInfoset(t *testing.T) {
	g := mustRead(t, twoStage)

	root := g.Root()
	left, _ := root.Child(1)
	right, _ := root.Child(2)

	// Both of player 2's nodes resolve to the set defined at the first one.
	require.NotNil(t, left.Infoset())
	require.Same(t, left.Infoset(), right.Infoset())

	p2, _ := g.Player(2)
	require.Equal(t, 1, p2.NumInfosets())
	iset, err := p2.Infoset(1)
	require.NoError(t, err)
	require.Same(t, left.Infoset(), iset)
	require.Equal(t, "(2,1)", iset.Name())
	require.Equal(t, 1, iset.Number())
	require.Same(t, p2, iset.Player())

	require.Equal(t, 2, iset.NumActions())
	act, err := iset.Action(1)
	require.NoError(t, err)
	require.Equal(t, "l", act.Name())
	require.Equal(t, 1, act.Number())
	require.Same(t, iset, act.Infoset())
	require.Nil(t, act.Prob())

	// Members collect in preorder.
	require.Equal(t, 2, iset.NumMembers())
	m1, err := iset.Member(1)
	require.NoError(t, err)
	require.Same(t, left, m1)
	m2, err := iset.Member(2)
	require.NoError(t, err)
	require.Same(t, right, m2)
}

func TestReadGame_OutcomesInDefinitionOrder(t *testing.T) {
	g := mustRead(t, twoStage)
	require.Equal(t, 4, g.NumOutcomes())

	names := make([]string, 0, 4)
	for it := g.Outcomes(); !it.AtEnd(); it.Next() {
		names = append(names, it.Ptr().Name())
	}
	require.Equal(t, []string{"LL", "LR", "RL", "RR"}, names)

	out, err := g.Outcome(3)
	require.NoError(t, err)
	require.Equal(t, "RL", out.Name())
	require.Equal(t, 3, out.Number())

	v, err := out.Payoff(1)
	require.NoError(t, err)
	require.Equal(t, "2", v.RatString())
	v, err = out.Payoff(2)
	require.NoError(t, err)
	require.Equal(t, "0", v.RatString())

	_, err = out.Payoff(3)
	require.ErrorIs(t, err, array.ErrIndex)
	_, err = g.Outcome(0)
	require.ErrorIs(t, err, array.ErrIndex)
}

func TestReadGame_ChanceProbabilities(t *testing.T) {
	g := mustRead(t, coinFlip)

	root := g.Root()
	require.Same(t, g.Chance(), root.Player())
	require.Equal(t, 1, g.Chance().NumInfosets())

	flip := root.Infoset()
	require.Equal(t, "flip", flip.Name())
	heads, err := flip.Action(1)
	require.NoError(t, err)
	require.Equal(t, "H", heads.Name())
	require.Equal(t, "1/2", heads.Prob().RatString())

	labels := make([]string, 0, 2)
	for it := flip.Actions(); !it.AtEnd(); it.Next() {
		labels = append(labels, it.Ptr().Name())
	}
	require.Equal(t, []string{"H", "T"}, labels)

	// Prob hands out copies; mutating one never reaches the game.
	heads.Prob().SetInt64(9)
	require.Equal(t, "1/2", heads.Prob().RatString())
}

func TestReadGame_SharedOutcomeReferences(t *testing.T) {
	g := mustRead(t, coinFlip)
	require.Equal(t, 2, g.NumOutcomes())

	root := g.Root()
	heads, _ := root.Child(1)
	tails, _ := root.Child(2)
	headsMatch, _ := heads.Child(1)
	headsMiss, _ := heads.Child(2)
	tailsMiss, _ := tails.Child(1)
	tailsMatch, _ := tails.Child(2)

	// Bare-number records attach the outcomes defined earlier.
	require.Same(t, headsMatch.Outcome(), tailsMatch.Outcome())
	require.Same(t, headsMiss.Outcome(), tailsMiss.Outcome())
	require.Equal(t, "match", headsMatch.Outcome().Name())
	require.Equal(t, "miss", tailsMiss.Outcome().Name())
}

func TestReadGame_PayoffForms(t *testing.T) {
	const src = `EFG 2 D "forms" { "A" "B" }
p "" 1 1 "s" { "x" "y" } 0
t "" 1 "o1" { 2.5, -1/3 }
t "" 2 "o2" { .25 4 }
`
	g := mustRead(t, src)

	out, _ := g.Outcome(1)
	v, err := out.Payoff(1)
	require.NoError(t, err)
	require.Equal(t, "5/2", v.RatString())
	v, err = out.Payoff(2)
	require.NoError(t, err)
	require.Equal(t, "-1/3", v.RatString())

	out, _ = g.Outcome(2)
	v, err = out.Payoff(1)
	require.NoError(t, err)
	require.Equal(t, "1/4", v.RatString())
	v, err = out.Payoff(2)
	require.NoError(t, err)
	require.Equal(t, "4", v.RatString())
}

func TestReadGame_EscapedQuotes(t *testing.T) {
	const src = `EFG 2 R "say \"when\"" { "A\B" }
t "end" 0
`
	g := mustRead(t, src)
	require.Equal(t, `say "when"`, g.Title())

	p, err := g.Player(1)
	require.NoError(t, err)
	require.Equal(t, `A\B`, p.Name())
	require.True(t, g.Root().IsTerminal())
	require.Nil(t, g.Root().Outcome())
}

func TestReadGame_RejectsWrongVersion(t *testing.T) {
	_, err := efg.ReadGame(strings.NewReader(`EFG 3 R "x" { }`))
	require.ErrorIs(t, err, efg.ErrVersion)
}

func TestReadGame_RejectsMangledHeader(t *testing.T) {
	_, err := efg.ReadGame(strings.NewReader(`NFG 1 R "x"`))
	require.ErrorIs(t, err, efg.ErrSyntax)

	_, err = efg.ReadGame(strings.NewReader(`EFG 2 Q "x" { }`))
	require.ErrorIs(t, err, efg.ErrSyntax)

	_, err = efg.ReadGame(strings.NewReader(`EFG 2 R "x" { "A" `))
	require.ErrorIs(t, err, efg.ErrSyntax)
}

func TestReadGame_RejectsUnterminatedText(t *testing.T) {
	_, err := efg.ReadGame(strings.NewReader(`EFG 2 R "x`))
	require.ErrorIs(t, err, efg.ErrSyntax)
	require.ErrorContains(t, err, "unterminated")
}

func TestReadGame_ReportsOffendingLine(t *testing.T) {
	const src = `EFG 2 R "x" { "A" }
t "end" }
`
	_, err := efg.ReadGame(strings.NewReader(src))
	require.ErrorIs(t, err, efg.ErrSyntax)
	require.ErrorContains(t, err, "line 2")
}

func TestReadGame_RejectsEmptyTree(t *testing.T) {
	_, err := efg.ReadGame(strings.NewReader(`EFG 2 R "x" { "A" }`))
	require.ErrorIs(t, err, efg.ErrStructure)
}

func TestReadGame_RejectsTruncatedTree(t *testing.T) {
	// Two actions declared, one child record supplied.
	const src = `EFG 2 R "x" { "A" }
p "" 1 1 "s" { "a" "b" } 0
t "" 0
`
	_, err := efg.ReadGame(strings.NewReader(src))
	require.ErrorIs(t, err, efg.ErrStructure)
}

func TestReadGame_RejectsDanglingReferences(t *testing.T) {
	// Outcome 5 is never defined.
	_, err := efg.ReadGame(strings.NewReader(`EFG 2 R "x" { "A" }
t "" 5
`))
	require.ErrorIs(t, err, efg.ErrStructure)

	// Information set 3 of player 1 is never defined.
	_, err = efg.ReadGame(strings.NewReader(`EFG 2 R "x" { "A" }
p "" 1 3 0
`))
	require.ErrorIs(t, err, efg.ErrStructure)
}

func TestReadGame_RejectsShortPayoffList(t *testing.T) {
	const src = `EFG 2 R "x" { "A" "B" }
t "" 1 "o" { 7 }
`
	_, err := efg.ReadGame(strings.NewReader(src))
	require.ErrorIs(t, err, efg.ErrStructure)
}

func TestReadGame_RejectsBadPlayerNumbers(t *testing.T) {
	// Player 3 of a two-player roster.
	_, err := efg.ReadGame(strings.NewReader(`EFG 2 R "x" { "A" "B" }
p "" 3 1 "s" { "a" } 0
t "" 0
`))
	require.ErrorIs(t, err, efg.ErrStructure)

	// Chance moves are written as c records, never as player 0.
	_, err = efg.ReadGame(strings.NewReader(`EFG 2 R "x" { "A" "B" }
p "" 0 1 "s" { "a" } 0
t "" 0
`))
	require.ErrorIs(t, err, efg.ErrStructure)
}

func TestReadGame_IgnoresTrailingRecords(t *testing.T) {
	// Records beyond the completed tree parse but never attach.
	const src = `EFG 2 R "x" { "A" }
t "root" 0
t "stray" 0
`
	g := mustRead(t, src)
	require.True(t, g.Root().IsTerminal())
	require.Equal(t, "root", g.Root().Name())
}
