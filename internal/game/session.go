package game

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/arcanaland/thumbpouch/internal/card"
	"github.com/arcanaland/thumbpouch/internal/pile"
	"github.com/arcanaland/thumbpouch/internal/types"
)

// Dealer hands out the cards of one shuffled deck
type Dealer interface {
	Deal() (card.Card, error)
	Len() int
}

// DeckFactory returns a freshly shuffled deck for every new deal
type DeckFactory func() Dealer

// ShuffledDecks returns a DeckFactory that shuffles a standard deck with rng
func ShuffledDecks(rng card.RNG) DeckFactory {
	return func() Dealer {
		return card.NewShuffledDeck(rng)
	}
}

// Session owns every pile of one game. It is not safe for concurrent use;
// the console applies one command at a time.
type Session struct {
	ID string

	foundations [pile.FoundationCount]pile.Foundation
	tableau     [pile.TableauCount]pile.Tableau
	stock       pile.Stock
	waste       pile.Waste
	won         bool

	decks  DeckFactory
	base   *slog.Logger
	logger *slog.Logger
}

// New deals a new game from decks
func New(decks DeckFactory, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{
		decks: decks,
		base:  logger,
	}
	if err := s.deal(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart throws the current game away and deals a fresh shuffle
func (s *Session) Restart() error {
	previous := s.ID
	if err := s.deal(); err != nil {
		return err
	}
	s.logger.Info("game restarted", "previous", previous)
	return nil
}

// deal lays out a new game. One card goes to each column from left to right,
// face-up on the column it starts and face-down on every column to its right,
// until column i holds i+1 cards. The rest of the deck becomes the stock and
// its top card is turned onto the waste. The session is only replaced once
// the whole layout has been dealt.
func (s *Session) deal() error {
	deck := s.decks()

	var (
		tableau [pile.TableauCount]pile.Tableau
		stock   pile.Stock
		waste   pile.Waste
	)

	for i := range tableau {
		c, err := deck.Deal()
		if err != nil {
			return types.WrapError(types.ErrInternalError, "not enough cards to deal the tableau", err)
		}
		c.FaceUp = true
		tableau[i].Push(c)

		for j := i + 1; j < len(tableau); j++ {
			c, err := deck.Deal()
			if err != nil {
				return types.WrapError(types.ErrInternalError, "not enough cards to deal the tableau", err)
			}
			c.FaceUp = false
			tableau[j].Push(c)
		}
	}

	for deck.Len() > 0 {
		c, err := deck.Deal()
		if err != nil {
			return types.WrapError(types.ErrInternalError, "dealing the stock failed", err)
		}
		c.FaceUp = false
		stock.Push(c)
	}

	first, err := stock.Deal()
	if err != nil {
		return types.WrapError(types.ErrInternalError, "no card left for the waste", err)
	}
	waste.Push(first)

	s.ID = uuid.New().String()
	s.logger = s.base.With("session", s.ID)
	s.foundations = [pile.FoundationCount]pile.Foundation{}
	s.tableau = tableau
	s.stock = stock
	s.waste = waste
	s.won = false

	s.logger.Info("game dealt", "stock", s.stock.Len())
	return nil
}

// Snapshot returns a copy of every pile
func (s *Session) Snapshot() pile.Board {
	var b pile.Board
	for i := range s.foundations {
		b.Foundations[i] = s.foundations[i].Cards()
	}
	for i := range s.tableau {
		b.Tableau[i] = s.tableau[i].Cards()
	}
	b.Stock = s.stock.Cards()
	b.Waste = s.waste.Cards()
	return b
}

// IsWin reports whether every foundation has a King on top
func (s *Session) IsWin() bool {
	for i := range s.foundations {
		if !s.foundations[i].Complete() {
			return false
		}
	}
	return true
}

// Won reports whether the last foundation move finished the game
func (s *Session) Won() bool {
	return s.won
}

// checkWin runs after every move onto a foundation
func (s *Session) checkWin() {
	if s.won || !s.IsWin() {
		return
	}
	s.won = true
	s.logger.Info("game won")
}
