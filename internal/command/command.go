package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/thumbpouch/internal/pile"
	"github.com/arcanaland/thumbpouch/internal/types"
)

// Kind identifies a player command
type Kind int

const (
	TableauToFoundation Kind = iota + 1
	TableauToTableau
	WasteToFoundation
	WasteToTableau
	StockToWaste
	Restart
	Help
	Quit
)

var verbs = map[string]Kind{
	"tf": TableauToFoundation,
	"tt": TableauToTableau,
	"wf": WasteToFoundation,
	"wt": WasteToTableau,
	"sw": StockToWaste,
	"r":  Restart,
	"h":  Help,
	"q":  Quit,
}

// String returns the verb as typed by the player
func (k Kind) String() string {
	for verb, kind := range verbs {
		if kind == k {
			return strings.ToUpper(verb)
		}
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is a parsed player command. Pile indices are 0-based.
type Command struct {
	Kind  Kind
	From  int
	To    int
	Count int
}

// String renders the command the way the player would type it
func (c Command) String() string {
	switch c.Kind {
	case TableauToFoundation:
		return fmt.Sprintf("TF %d %d", c.From+1, c.To+1)
	case TableauToTableau:
		return fmt.Sprintf("TT %d %d %d", c.From+1, c.To+1, c.Count)
	case WasteToFoundation, WasteToTableau:
		return fmt.Sprintf("%s %d", c.Kind, c.To+1)
	default:
		return c.Kind.String()
	}
}

// Parse reads one line of player input. Verbs are case-insensitive and
// operands are 1-based column numbers.
func Parse(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, types.NewGameError(types.ErrInvalidCommand, "no command given")
	}

	kind, ok := verbs[fields[0]]
	if !ok {
		return Command{}, types.Errorf(types.ErrInvalidCommand, "unknown command %q", fields[0])
	}
	args := fields[1:]

	switch kind {
	case TableauToFoundation:
		if err := arity(kind, args, 2); err != nil {
			return Command{}, err
		}
		from, err := column(args[0], "tableau", pile.TableauCount)
		if err != nil {
			return Command{}, err
		}
		to, err := column(args[1], "foundation", pile.FoundationCount)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, From: from, To: to, Count: 1}, nil

	case TableauToTableau:
		if err := arity(kind, args, 3); err != nil {
			return Command{}, err
		}
		from, err := column(args[0], "tableau", pile.TableauCount)
		if err != nil {
			return Command{}, err
		}
		to, err := column(args[1], "tableau", pile.TableauCount)
		if err != nil {
			return Command{}, err
		}
		n, err := strconv.Atoi(args[2])
		if err != nil || n < 1 {
			return Command{}, types.Errorf(types.ErrInvalidCommand, "run length must be a number >= 1, got %q", args[2])
		}
		return Command{Kind: kind, From: from, To: to, Count: n}, nil

	case WasteToFoundation:
		if err := arity(kind, args, 1); err != nil {
			return Command{}, err
		}
		to, err := column(args[0], "foundation", pile.FoundationCount)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, To: to, Count: 1}, nil

	case WasteToTableau:
		if err := arity(kind, args, 1); err != nil {
			return Command{}, err
		}
		to, err := column(args[0], "tableau", pile.TableauCount)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, To: to, Count: 1}, nil

	default:
		if err := arity(kind, args, 0); err != nil {
			return Command{}, err
		}
		return Command{Kind: kind}, nil
	}
}

func arity(kind Kind, args []string, want int) error {
	if len(args) != want {
		return types.Errorf(types.ErrInvalidCommand, "%s takes %d operand(s), got %d", kind, want, len(args))
	}
	return nil
}

// column converts a 1-based column operand into a 0-based index
func column(arg, name string, count int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > count {
		return 0, types.Errorf(types.ErrInvalidCommand, "%s column must be between 1 and %d, got %q", name, count, arg)
	}
	return n - 1, nil
}
