package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcanaland/thumbpouch/internal/card"
)

type RulesTestSuite struct {
	suite.Suite
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func ref(rank card.Rank, suit card.Suit) *card.Card {
	c := card.New(rank, suit)
	return &c
}

func (s *RulesTestSuite) TestCanMoveToFoundation() {
	testCases := []struct {
		name     string
		src      *card.Card
		dest     *card.Card
		expected bool
	}{
		{name: "ace onto empty foundation", src: ref(card.Ace, card.Spades), dest: nil, expected: true},
		{name: "non-ace onto empty foundation", src: ref(2, card.Spades), dest: nil, expected: false},
		{name: "next card of the same suit", src: ref(6, card.Hearts), dest: ref(5, card.Hearts), expected: true},
		{name: "next rank in a different suit", src: ref(6, card.Spades), dest: ref(5, card.Hearts), expected: false},
		{name: "same suit skipping a rank", src: ref(7, card.Hearts), dest: ref(5, card.Hearts), expected: false},
		{name: "same suit going down", src: ref(4, card.Hearts), dest: ref(5, card.Hearts), expected: false},
		{name: "king onto queen", src: ref(card.King, card.Clubs), dest: ref(card.Queen, card.Clubs), expected: true},
		{name: "missing source", src: nil, dest: nil, expected: false},
		{name: "missing source on a built foundation", src: nil, dest: ref(3, card.Clubs), expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, CanMoveToFoundation(tc.src, tc.dest))
		})
	}
}

func (s *RulesTestSuite) TestCanMoveToTableau() {
	testCases := []struct {
		name     string
		src      *card.Card
		dest     *card.Card
		expected bool
	}{
		{name: "any card onto empty column", src: ref(card.Queen, card.Diamonds), dest: nil, expected: true},
		{name: "ace onto empty column", src: ref(card.Ace, card.Clubs), dest: nil, expected: true},
		{name: "same suit one lower", src: ref(7, card.Clubs), dest: ref(8, card.Clubs), expected: false},
		{name: "different suit one lower", src: ref(7, card.Hearts), dest: ref(8, card.Clubs), expected: true},
		{name: "same colour different suit", src: ref(7, card.Spades), dest: ref(8, card.Clubs), expected: true},
		{name: "different suit two lower", src: ref(6, card.Hearts), dest: ref(8, card.Clubs), expected: false},
		{name: "different suit one higher", src: ref(9, card.Hearts), dest: ref(8, card.Clubs), expected: false},
		{name: "missing source", src: nil, dest: ref(8, card.Clubs), expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, CanMoveToTableau(tc.src, tc.dest))
		})
	}
}

func (s *RulesTestSuite) TestValidRun() {
	down := card.Card{Rank: 9, Suit: card.Clubs}

	testCases := []struct {
		name     string
		run      []card.Card
		expected bool
	}{
		{name: "empty", run: nil, expected: false},
		{name: "single face-up card", run: []card.Card{card.New(4, card.Spades)}, expected: true},
		{name: "single face-down card", run: []card.Card{down}, expected: false},
		{
			name:     "descending alternating suits",
			run:      []card.Card{card.New(10, card.Spades), card.New(9, card.Hearts), card.New(8, card.Clubs)},
			expected: true,
		},
		{
			name:     "repeated suit",
			run:      []card.Card{card.New(10, card.Spades), card.New(9, card.Spades)},
			expected: false,
		},
		{
			name:     "rank gap",
			run:      []card.Card{card.New(10, card.Spades), card.New(8, card.Hearts)},
			expected: false,
		},
		{
			name:     "face-down base",
			run:      []card.Card{down, card.New(8, card.Hearts)},
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, ValidRun(tc.run))
		})
	}
}
