package card

import (
	"errors"
	"math/rand/v2"
	"time"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// ErrDeckEmpty is returned when dealing from an exhausted deck
var ErrDeckEmpty = errors.New("deck is empty")

// RNG abstracts random number generation so shuffles can be replayed
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// NewRNG returns a PCG-backed generator. A zero seed is replaced by the
// current time.
func NewRNG(seed uint64) RNG {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Deck is an ordered stack of cards dealt from the end of the slice
type Deck struct {
	cards []Card
}

// NewDeck creates a deck of 52 face-up cards, one of each rank and suit
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, New(rank, suit))
		}
	}
	return &Deck{cards: cards}
}

// NewShuffledDeck creates a full deck and shuffles it with rng
func NewShuffledDeck(rng RNG) *Deck {
	d := NewDeck()
	d.Shuffle(rng)
	return d
}

// Shuffle reorders the deck in place (Fisher-Yates)
func (d *Deck) Shuffle(rng RNG) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card of the deck
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckEmpty
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
