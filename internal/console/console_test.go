package console

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcanaland/thumbpouch/internal/card"
	"github.com/arcanaland/thumbpouch/internal/game"
	"github.com/arcanaland/thumbpouch/internal/render"
)

// scriptedDealer deals a fixed sequence of cards, first card first
type scriptedDealer struct {
	cards []card.Card
}

func (d *scriptedDealer) Deal() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, card.ErrDeckEmpty
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

func (d *scriptedDealer) Len() int {
	return len(d.cards)
}

// layoutDeal returns the deal order that produces the given columns (bottom
// first) and stock (top first)
func layoutDeal(columns [7][]card.Card, stock []card.Card) []card.Card {
	var seq []card.Card
	for round := 0; round < len(columns); round++ {
		for col := round; col < len(columns); col++ {
			seq = append(seq, columns[col][round])
		}
	}
	for i := len(stock) - 1; i >= 0; i-- {
		seq = append(seq, stock[i])
	}
	return seq
}

func run(suit card.Suit, ranks ...card.Rank) []card.Card {
	cards := make([]card.Card, len(ranks))
	for i, r := range ranks {
		cards[i] = card.New(r, suit)
	}
	return cards
}

// winnableDeal lays the clubs and diamonds out so they can be played straight
// from the tableau, and hearts 3..K then the spades in stock order
func winnableDeal() game.DeckFactory {
	columns := [7][]card.Card{
		run(card.Clubs, card.Ace),
		run(card.Clubs, 3, 2),
		run(card.Clubs, 6, 5, 4),
		run(card.Clubs, 10, 9, 8, 7),
		append(run(card.Diamonds, 2, card.Ace), run(card.Clubs, card.King, card.Queen, card.Jack)...),
		run(card.Diamonds, 8, 7, 6, 5, 4, 3),
		append(run(card.Hearts, 2, card.Ace), run(card.Diamonds, card.King, card.Queen, card.Jack, 10, 9)...),
	}
	var stock []card.Card
	for r := card.Rank(3); r <= card.King; r++ {
		stock = append(stock, card.New(r, card.Hearts))
	}
	for r := card.Ace; r <= card.King; r++ {
		stock = append(stock, card.New(r, card.Spades))
	}

	return func() game.Dealer {
		return &scriptedDealer{cards: layoutDeal(columns, stock)}
	}
}

func winningMoves() []string {
	var moves []string
	repeat := func(n int, cmd string) {
		for i := 0; i < n; i++ {
			moves = append(moves, cmd)
		}
	}
	repeat(1, "tf 1 1")
	repeat(2, "TF 2 1")
	repeat(3, "tf 3 1")
	repeat(4, "tf 4 1")
	repeat(3, "tf 5 1")
	repeat(2, "tf 5 2")
	repeat(6, "tf 6 2")
	repeat(5, "tf 7 2")
	repeat(2, "tf 7 3")
	moves = append(moves, "wf 3")
	repeat(10, "sw\nwf 3")
	repeat(13, "sw\nwf 4")
	return moves
}

type ConsoleSuite struct {
	suite.Suite
	session *game.Session
	out     *bytes.Buffer
}

func TestConsoleSuite(t *testing.T) {
	suite.Run(t, new(ConsoleSuite))
}

func (s *ConsoleSuite) SetupTest() {
	session, err := game.New(game.ShuffledDecks(card.NewRNG(9)), nil)
	s.Require().NoError(err)
	s.session = session
	s.out = &bytes.Buffer{}
}

func (s *ConsoleSuite) play(input string, opts Options) error {
	c := New(s.session, render.New(render.Options{ASCII: true}), strings.NewReader(input), s.out, nil, opts)
	return c.Run(context.Background())
}

func (s *ConsoleSuite) TestQuit() {
	err := s.play("q\nsw\n", Options{ShowRules: true})

	s.NoError(err)
	out := s.out.String()
	s.Contains(out, "Thumb and Pouch Solitaire")
	s.Contains(out, "Game commands:")
	s.Contains(out, "prompt :> ")
	s.Equal(1, strings.Count(out, "FOUNDATION"))
	s.Len(s.session.Snapshot().Stock, 23, "nothing after Q is played")
}

func (s *ConsoleSuite) TestEndOfInput() {
	err := s.play("sw\n", Options{Prompt: "> "})

	s.NoError(err)
	s.NotContains(s.out.String(), "Thumb and Pouch Solitaire", "rules are optional")
	s.Contains(s.out.String(), "> ")
	s.Len(s.session.Snapshot().Stock, 22)
	s.Equal(2, strings.Count(s.out.String(), "FOUNDATION"))
}

func (s *ConsoleSuite) TestInvalidCommand() {
	err := s.play("zz 1\n\nwf 9\nq\n", Options{})

	s.NoError(err)
	out := s.out.String()
	s.Contains(out, "unknown command \"zz\"\nTry again.")
	s.Contains(out, "foundation column must be between 1 and 4")
	s.Equal(1, strings.Count(out, "FOUNDATION"), "invalid commands do not redraw the board")
}

func (s *ConsoleSuite) TestIllegalMoveShowsUnchangedBoard() {
	before := s.session.Snapshot()

	err := s.play("tt 1 1 1\nq\n", Options{})

	s.NoError(err)
	s.Contains(s.out.String(), "cannot move tableau 1 onto itself\nTry again.")
	s.Equal(2, strings.Count(s.out.String(), "FOUNDATION"))
	s.True(before.Equal(s.session.Snapshot()))
}

func (s *ConsoleSuite) TestStockExhausted() {
	input := strings.Repeat("sw\n", 24) + "q\n"

	err := s.play(input, Options{})

	s.NoError(err)
	s.Equal(1, strings.Count(s.out.String(), "the stock is empty"))
	s.Empty(s.session.Snapshot().Stock)
	s.Len(s.session.Snapshot().Waste, 24)
}

func (s *ConsoleSuite) TestHelp() {
	err := s.play("H\nq\n", Options{})

	s.NoError(err)
	s.Equal(2, strings.Count(s.out.String(), "FOUNDATION"))
	s.Equal(2, strings.Count(s.out.String(), "Game commands:"))
}

func (s *ConsoleSuite) TestRestart() {
	id := s.session.ID

	err := s.play("sw\nr\nq\n", Options{})

	s.NoError(err)
	s.NotEqual(id, s.session.ID)
	s.Len(s.session.Snapshot().Stock, 23)
	s.Contains(s.out.String(), "Thumb and Pouch Solitaire", "restart shows the rules again")
}

func (s *ConsoleSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New(s.session, render.New(render.Options{}), strings.NewReader("sw\n"), s.out, nil, Options{})

	err := c.Run(ctx)

	s.ErrorIs(err, context.Canceled)
	s.Len(s.session.Snapshot().Stock, 23)
}

func (s *ConsoleSuite) TestWin() {
	// Setup
	session, err := game.New(winnableDeal(), nil)
	s.Require().NoError(err)
	s.session = session
	input := strings.Join(winningMoves(), "\n") + "\nsw\n"

	// Execute
	err = s.play(input, Options{})

	// Assert
	s.NoError(err)
	s.True(session.Won())
	s.NotContains(s.out.String(), "Try again.", "every scripted move is legal")
	s.Contains(s.out.String(), "|___/|/")
	for i, f := range session.Snapshot().Foundations {
		s.Len(f, 13, fmt.Sprintf("foundation %d", i+1))
	}
}
