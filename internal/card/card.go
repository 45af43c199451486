package card

import "fmt"

// Suit is one of the four French suits
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

var suitSymbols = []string{"♣", "♦", "♥", "♠"}

var suitLetters = []string{"c", "d", "h", "s"}

// String returns the suit name
func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Symbol returns the suit glyph, or a single lower-case letter when ascii is set
func (s Suit) Symbol(ascii bool) string {
	if s < Clubs || s > Spades {
		return "?"
	}
	if ascii {
		return suitLetters[s]
	}
	return suitSymbols[s]
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Rank is a card rank from Ace (1) to King (13)
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// String returns the short rank label (A, 2..10, J, Q, K)
func (r Rank) String() string {
	switch {
	case r == Ace:
		return "A"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r > Ace && r < Jack:
		return fmt.Sprintf("%d", int(r))
	default:
		return fmt.Sprintf("Rank(%d)", int(r))
	}
}

// Valid reports whether r is within Ace..King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Card represents a playing card. Rank and Suit never change once the card
// has been created; only the orientation does.
type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool
}

// New creates a face-up card
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit, FaceUp: true}
}

// Flip turns the card over
func (c *Card) Flip() {
	c.FaceUp = !c.FaceUp
}

// Same reports whether two cards are the same card, ignoring orientation
func (c Card) Same(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// Label renders the card face regardless of its orientation
func (c Card) Label(ascii bool) string {
	return c.Rank.String() + c.Suit.Symbol(ascii)
}

// String renders face-down cards as XX
func (c Card) String() string {
	if !c.FaceUp {
		return "XX"
	}
	return c.Label(false)
}
