package validator

import "github.com/arcanaland/thumbpouch/internal/card"

// CanMoveToFoundation reports whether src may be placed on a foundation whose
// top card is dest. A nil dest means the foundation is empty. Foundations only
// accept the next card of their own suit, starting from the Ace.
func CanMoveToFoundation(src, dest *card.Card) bool {
	if src == nil {
		return false
	}
	if dest == nil {
		return src.Rank == card.Ace
	}
	return src.Suit == dest.Suit && src.Rank == dest.Rank+1
}

// CanMoveToTableau reports whether src may be placed on a tableau column whose
// top card is dest. Any card may start an empty column; otherwise the card
// must be one rank lower and of a different suit.
func CanMoveToTableau(src, dest *card.Card) bool {
	if src == nil {
		return false
	}
	if dest == nil {
		return true
	}
	return src.Suit != dest.Suit && src.Rank == dest.Rank-1
}

// ValidRun reports whether cards (bottom first) form a movable run: all face-up,
// each card one rank below and of a different suit than the one beneath it.
func ValidRun(cards []card.Card) bool {
	if len(cards) == 0 {
		return false
	}
	for i := range cards {
		if !cards[i].FaceUp {
			return false
		}
		if i > 0 && !CanMoveToTableau(&cards[i], &cards[i-1]) {
			return false
		}
	}
	return true
}
