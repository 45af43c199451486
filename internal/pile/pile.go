package pile

import (
	"errors"
	"fmt"

	"github.com/arcanaland/thumbpouch/internal/card"
)

const (
	// FoundationCount is the number of foundation piles
	FoundationCount = 4
	// TableauCount is the number of tableau columns
	TableauCount = 7
)

// ErrEmpty is returned when taking cards from an empty pile
var ErrEmpty = errors.New("pile is empty")

// Pile is an ordered sequence of cards. Index 0 is the bottom, the last
// index is the top; cards are only added or removed at the top.
type Pile struct {
	cards []card.Card
}

// Len returns the number of cards in the pile
func (p *Pile) Len() int {
	return len(p.cards)
}

// Empty reports whether the pile holds no cards
func (p *Pile) Empty() bool {
	return len(p.cards) == 0
}

// Top returns a copy of the top card, or nil when the pile is empty
func (p *Pile) Top() *card.Card {
	if len(p.cards) == 0 {
		return nil
	}
	c := p.cards[len(p.cards)-1]
	return &c
}

// Cards returns a copy of the pile contents, bottom first
func (p *Pile) Cards() []card.Card {
	out := make([]card.Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// Push places cards on top of the pile in order
func (p *Pile) Push(cards ...card.Card) {
	p.cards = append(p.cards, cards...)
}

// Pop removes and returns the top card
func (p *Pile) Pop() (card.Card, error) {
	if len(p.cards) == 0 {
		return card.Card{}, ErrEmpty
	}
	c := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return c, nil
}

// Clear removes every card
func (p *Pile) Clear() {
	p.cards = nil
}

// Foundation is built up from Ace to King in a single suit
type Foundation struct {
	Pile
}

// Suit returns the suit of the foundation; ok is false until the first card lands
func (f *Foundation) Suit() (suit card.Suit, ok bool) {
	if f.Empty() {
		return 0, false
	}
	return f.cards[0].Suit, true
}

// Complete reports whether a King sits on top
func (f *Foundation) Complete() bool {
	top := f.Top()
	return top != nil && top.Rank == card.King
}

// Tableau is a working column: face-down cards below a face-up run
type Tableau struct {
	Pile
}

// Run returns a copy of the top n cards without removing them
func (t *Tableau) Run(n int) ([]card.Card, error) {
	if n < 1 || n > len(t.cards) {
		return nil, fmt.Errorf("run of %d requested from a column of %d cards", n, len(t.cards))
	}
	run := make([]card.Card, n)
	copy(run, t.cards[len(t.cards)-n:])
	return run, nil
}

// TakeRun removes the top n cards and returns them bottom first
func (t *Tableau) TakeRun(n int) ([]card.Card, error) {
	run, err := t.Run(n)
	if err != nil {
		return nil, err
	}
	t.cards = t.cards[:len(t.cards)-n]
	return run, nil
}

// RevealTop turns a face-down top card face-up and reports whether it did
func (t *Tableau) RevealTop() bool {
	if len(t.cards) == 0 {
		return false
	}
	top := &t.cards[len(t.cards)-1]
	if top.FaceUp {
		return false
	}
	top.Flip()
	return true
}

// FaceDown returns the number of face-down cards below the run
func (t *Tableau) FaceDown() int {
	n := 0
	for _, c := range t.cards {
		if c.FaceUp {
			break
		}
		n++
	}
	return n
}

// Stock is the face-down draw pile
type Stock struct {
	Pile
}

// Deal removes the top card and turns it face-up
func (s *Stock) Deal() (card.Card, error) {
	c, err := s.Pop()
	if err != nil {
		return card.Card{}, err
	}
	if !c.FaceUp {
		c.Flip()
	}
	return c, nil
}

// Waste receives cards dealt from the stock; only its top card is playable
type Waste struct {
	Pile
}
