package game

import (
	"fmt"

	"github.com/arcanaland/thumbpouch/internal/card"
	"github.com/arcanaland/thumbpouch/internal/command"
	"github.com/arcanaland/thumbpouch/internal/pile"
	"github.com/arcanaland/thumbpouch/internal/types"
	"github.com/arcanaland/thumbpouch/internal/validator"
)

// Every move validates against copies of the cards involved before any pile
// is touched, so a rejected move leaves the board exactly as it was.

// TableauToFoundation moves the top card of tableau x onto foundation y
func (s *Session) TableauToFoundation(x, y int) error {
	if err := checkIndex("tableau", x, pile.TableauCount); err != nil {
		return err
	}
	if err := checkIndex("foundation", y, pile.FoundationCount); err != nil {
		return err
	}

	src, dest := &s.tableau[x], &s.foundations[y]
	top := src.Top()
	if top == nil {
		return s.reject(types.ErrEmptySource, "tableau %d is empty", x+1)
	}
	if !validator.CanMoveToFoundation(top, dest.Top()) {
		return s.reject(types.ErrIllegalMove, "%s cannot go on %s", top, describe("foundation", y, dest.Top()))
	}

	c, err := src.Pop()
	if err != nil {
		return types.WrapError(types.ErrInternalError, "tableau changed during a move", err)
	}
	dest.Push(c)
	revealed := src.RevealTop()

	s.logger.Debug("tableau to foundation", "card", c.String(), "from", x+1, "to", y+1, "revealed", revealed)
	s.checkWin()
	return nil
}

// TableauToTableau moves the top n cards of tableau x onto tableau y as one run
func (s *Session) TableauToTableau(x, y, n int) error {
	if err := checkIndex("tableau", x, pile.TableauCount); err != nil {
		return err
	}
	if err := checkIndex("tableau", y, pile.TableauCount); err != nil {
		return err
	}
	if n < 1 {
		return types.Errorf(types.ErrInvalidCommand, "run length must be at least 1, got %d", n)
	}
	if x == y {
		return s.reject(types.ErrIllegalMove, "cannot move tableau %d onto itself", x+1)
	}

	src, dest := &s.tableau[x], &s.tableau[y]
	if src.Empty() {
		return s.reject(types.ErrEmptySource, "tableau %d is empty", x+1)
	}
	run, err := src.Run(n)
	if err != nil {
		return s.reject(types.ErrEmptySource, "tableau %d has only %d card(s), cannot move %d", x+1, src.Len(), n)
	}

	base := &run[0]
	if !base.FaceUp {
		return s.reject(types.ErrIllegalMove, "run of %d from tableau %d starts on a face-down card", n, x+1)
	}
	if !validator.ValidRun(run) {
		return s.reject(types.ErrIllegalMove, "top %d cards of tableau %d are not a run", n, x+1)
	}
	if !validator.CanMoveToTableau(base, dest.Top()) {
		return s.reject(types.ErrIllegalMove, "%s cannot go on %s", base, describe("tableau", y, dest.Top()))
	}

	moved, err := src.TakeRun(n)
	if err != nil {
		return types.WrapError(types.ErrInternalError, "tableau changed during a move", err)
	}
	dest.Push(moved...)
	revealed := src.RevealTop()

	s.logger.Debug("tableau to tableau", "base", base.String(), "count", n, "from", x+1, "to", y+1, "revealed", revealed)
	return nil
}

// WasteToFoundation moves the top waste card onto foundation y
func (s *Session) WasteToFoundation(y int) error {
	if err := checkIndex("foundation", y, pile.FoundationCount); err != nil {
		return err
	}

	dest := &s.foundations[y]
	top := s.waste.Top()
	if top == nil {
		return s.reject(types.ErrEmptySource, "the waste is empty")
	}
	if !validator.CanMoveToFoundation(top, dest.Top()) {
		return s.reject(types.ErrIllegalMove, "%s cannot go on %s", top, describe("foundation", y, dest.Top()))
	}

	c, err := s.waste.Pop()
	if err != nil {
		return types.WrapError(types.ErrInternalError, "waste changed during a move", err)
	}
	dest.Push(c)

	s.logger.Debug("waste to foundation", "card", c.String(), "to", y+1)
	s.checkWin()
	return nil
}

// WasteToTableau moves the top waste card onto tableau x
func (s *Session) WasteToTableau(x int) error {
	if err := checkIndex("tableau", x, pile.TableauCount); err != nil {
		return err
	}

	dest := &s.tableau[x]
	top := s.waste.Top()
	if top == nil {
		return s.reject(types.ErrEmptySource, "the waste is empty")
	}
	if !validator.CanMoveToTableau(top, dest.Top()) {
		return s.reject(types.ErrIllegalMove, "%s cannot go on %s", top, describe("tableau", x, dest.Top()))
	}

	c, err := s.waste.Pop()
	if err != nil {
		return types.WrapError(types.ErrInternalError, "waste changed during a move", err)
	}
	dest.Push(c)

	s.logger.Debug("waste to tableau", "card", c.String(), "to", x+1)
	return nil
}

// StockToWaste turns the top stock card onto the waste
func (s *Session) StockToWaste() error {
	c, err := s.stock.Deal()
	if err != nil {
		return s.reject(types.ErrStockExhausted, "the stock is empty")
	}
	s.waste.Push(c)

	s.logger.Debug("stock to waste", "card", c.String(), "stock", s.stock.Len())
	return nil
}

// Execute applies a parsed move or restart command
func (s *Session) Execute(cmd command.Command) error {
	switch cmd.Kind {
	case command.TableauToFoundation:
		return s.TableauToFoundation(cmd.From, cmd.To)
	case command.TableauToTableau:
		return s.TableauToTableau(cmd.From, cmd.To, cmd.Count)
	case command.WasteToFoundation:
		return s.WasteToFoundation(cmd.To)
	case command.WasteToTableau:
		return s.WasteToTableau(cmd.To)
	case command.StockToWaste:
		return s.StockToWaste()
	case command.Restart:
		return s.Restart()
	default:
		return types.Errorf(types.ErrInvalidCommand, "%s does not change the board", cmd.Kind)
	}
}

// reject logs and builds the error for a refused move
func (s *Session) reject(code types.ErrorCode, format string, args ...interface{}) error {
	err := types.Errorf(code, format, args...)
	s.logger.Debug("move rejected", "code", string(code), "reason", err.Message)
	return err
}

func checkIndex(name string, i, count int) error {
	if i < 0 || i >= count {
		return types.Errorf(types.ErrInvalidCommand, "%s column must be between 1 and %d, got %d", name, count, i+1)
	}
	return nil
}

// describe names a destination pile by its top card
func describe(name string, i int, top *card.Card) string {
	if top == nil {
		return fmt.Sprintf("empty %s %d", name, i+1)
	}
	return fmt.Sprintf("%s on %s %d", top, name, i+1)
}
