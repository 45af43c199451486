package card

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CardTestSuite struct {
	suite.Suite
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

func (s *CardTestSuite) TestString() {
	testCases := []struct {
		name     string
		card     Card
		expected string
	}{
		{
			name:     "ace of spades",
			card:     New(Ace, Spades),
			expected: "A♠",
		},
		{
			name:     "ten of hearts",
			card:     New(10, Hearts),
			expected: "10♥",
		},
		{
			name:     "king of diamonds",
			card:     New(King, Diamonds),
			expected: "K♦",
		},
		{
			name:     "face-down card",
			card:     Card{Rank: Queen, Suit: Clubs},
			expected: "XX",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.card.String())
		})
	}
}

func (s *CardTestSuite) TestLabelASCII() {
	s.Equal("Jc", New(Jack, Clubs).Label(true))
	s.Equal("7d", Card{Rank: 7, Suit: Diamonds}.Label(true), "label ignores orientation")
}

func (s *CardTestSuite) TestFlip() {
	// Setup
	c := New(5, Hearts)

	// Execute
	c.Flip()

	// Assert
	s.False(c.FaceUp)
	c.Flip()
	s.True(c.FaceUp)
	s.Equal(Rank(5), c.Rank, "flipping never changes the rank")
	s.Equal(Hearts, c.Suit, "flipping never changes the suit")
}

func (s *CardTestSuite) TestSameIgnoresOrientation() {
	up := New(8, Clubs)
	down := Card{Rank: 8, Suit: Clubs}

	s.True(up.Same(down))
	s.False(up.Same(New(8, Spades)))
	s.False(up.Same(New(9, Clubs)))
}

func (s *CardTestSuite) TestSuitColour() {
	s.True(Hearts.IsRed())
	s.True(Diamonds.IsRed())
	s.False(Clubs.IsRed())
	s.False(Spades.IsRed())
}

func (s *CardTestSuite) TestRankValid() {
	s.True(Ace.Valid())
	s.True(King.Valid())
	s.False(Rank(0).Valid())
	s.False(Rank(14).Valid())
}
