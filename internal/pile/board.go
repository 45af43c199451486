package pile

import "github.com/arcanaland/thumbpouch/internal/card"

// Board is a read-only snapshot of every pile in a game
type Board struct {
	Foundations [FoundationCount][]card.Card
	Tableau     [TableauCount][]card.Card
	Stock       []card.Card
	Waste       []card.Card
}

// AllCards returns every card on the board
func (b Board) AllCards() []card.Card {
	var all []card.Card
	for _, f := range b.Foundations {
		all = append(all, f...)
	}
	for _, t := range b.Tableau {
		all = append(all, t...)
	}
	all = append(all, b.Stock...)
	return append(all, b.Waste...)
}

// Equal reports whether two snapshots hold the same cards in the same
// places and orientations
func (b Board) Equal(other Board) bool {
	for i := range b.Foundations {
		if !sameCards(b.Foundations[i], other.Foundations[i]) {
			return false
		}
	}
	for i := range b.Tableau {
		if !sameCards(b.Tableau[i], other.Tableau[i]) {
			return false
		}
	}
	return sameCards(b.Stock, other.Stock) && sameCards(b.Waste, other.Waste)
}

func sameCards(a, b []card.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
