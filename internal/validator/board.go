package validator

import (
	"fmt"

	"github.com/arcanaland/thumbpouch/internal/card"
	"github.com/arcanaland/thumbpouch/internal/pile"
)

type ValidationResults struct {
	Errors []string
}

// Valid reports whether no violation was found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Board   pile.Board
	Results ValidationResults
}

func NewValidator(board pile.Board) *Validator {
	return &Validator{
		Board:   board,
		Results: ValidationResults{},
	}
}

// CheckBoard audits a snapshot against the layout invariants of the game
func CheckBoard(board pile.Board) ValidationResults {
	return NewValidator(board).Validate()
}

func (v *Validator) Validate() ValidationResults {
	v.validateDeck()
	v.validateFoundations()
	v.validateTableau()
	v.validateStock()
	v.validateWaste()

	return v.Results
}

func (v *Validator) errorf(format string, args ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

// validateDeck checks that the board holds exactly one standard deck
func (v *Validator) validateDeck() {
	all := v.Board.AllCards()
	if len(all) != card.DeckSize {
		v.errorf("board holds %d cards, expected %d", len(all), card.DeckSize)
	}

	seen := make(map[card.Card]int)
	for _, c := range all {
		if !c.Rank.Valid() {
			v.errorf("card with invalid rank %d", int(c.Rank))
			continue
		}
		seen[card.New(c.Rank, c.Suit)]++
	}

	for _, suit := range card.Suits {
		for rank := card.Ace; rank <= card.King; rank++ {
			key := card.New(rank, suit)
			switch n := seen[key]; {
			case n == 0:
				v.errorf("%s is missing", key.Label(true))
			case n > 1:
				v.errorf("%s appears %d times", key.Label(true), n)
			}
		}
	}
}

// validateFoundations checks that each foundation climbs from the Ace in one suit
func (v *Validator) validateFoundations() {
	for i, cards := range v.Board.Foundations {
		for j, c := range cards {
			if c.Rank != card.Rank(j+1) {
				v.errorf("foundation %d: position %d holds %s", i+1, j+1, c.Label(true))
			}
			if c.Suit != cards[0].Suit {
				v.errorf("foundation %d: %s breaks the %s chain", i+1, c.Label(true), cards[0].Suit)
			}
			if !c.FaceUp {
				v.errorf("foundation %d: %s is face-down", i+1, c.Label(true))
			}
		}
	}
}

// validateTableau checks the single face-down/face-up boundary of each column
// and that the face-up part is a valid run
func (v *Validator) validateTableau() {
	for i, cards := range v.Board.Tableau {
		if len(cards) == 0 {
			continue
		}
		if !cards[len(cards)-1].FaceUp {
			v.errorf("tableau %d: top card is face-down", i+1)
		}

		boundary := len(cards)
		for j, c := range cards {
			if c.FaceUp {
				boundary = j
				break
			}
		}
		mixed := false
		for _, c := range cards[boundary:] {
			if !c.FaceUp {
				v.errorf("tableau %d: face-down %s above the face-up run", i+1, c.Label(true))
				mixed = true
			}
		}
		if !mixed && boundary < len(cards) && !ValidRun(cards[boundary:]) {
			v.errorf("tableau %d: face-up cards are not a descending run of alternating suits", i+1)
		}
	}
}

func (v *Validator) validateStock() {
	for _, c := range v.Board.Stock {
		if c.FaceUp {
			v.errorf("stock: %s is face-up", c.Label(true))
		}
	}
}

func (v *Validator) validateWaste() {
	for _, c := range v.Board.Waste {
		if !c.FaceUp {
			v.errorf("waste: %s is face-down", c.Label(true))
		}
	}
}
