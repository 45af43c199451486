package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/arcanaland/thumbpouch/internal/command"
	"github.com/arcanaland/thumbpouch/internal/game"
	"github.com/arcanaland/thumbpouch/internal/render"
	"github.com/arcanaland/thumbpouch/internal/types"
	"github.com/arcanaland/thumbpouch/internal/validator"
)

// Options tunes the console
type Options struct {
	Prompt    string
	ShowRules bool
}

// Console reads player commands and applies them to a session, one at a time
type Console struct {
	session  *game.Session
	renderer *render.Renderer
	in       io.Reader
	out      io.Writer
	logger   *slog.Logger
	opts     Options
}

func New(session *game.Session, renderer *render.Renderer, in io.Reader, out io.Writer, logger *slog.Logger, opts Options) *Console {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Prompt == "" {
		opts.Prompt = "prompt :> "
	}
	return &Console{
		session:  session,
		renderer: renderer,
		in:       in,
		out:      out,
		logger:   logger,
		opts:     opts,
	}
}

// Run plays until the player quits, wins, or input ends. Rejected commands
// are reported to the player and never end the loop.
func (c *Console) Run(ctx context.Context) error {
	if c.opts.ShowRules {
		c.renderer.Rules(c.out)
	}
	c.renderer.Board(c.out, c.session.Snapshot())
	c.renderer.Menu(c.out)

	scanner := bufio.NewScanner(c.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, c.opts.Prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading command: %w", err)
			}
			fmt.Fprintln(c.out)
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, err := command.Parse(line)
		if err != nil {
			c.logger.Debug("command rejected", "input", line, "error", err)
			c.renderer.Error(c.out, types.MessageOf(err))
			continue
		}

		if done := c.dispatch(cmd); done {
			return nil
		}
	}
}

// dispatch applies one parsed command and reports whether the game is over
func (c *Console) dispatch(cmd command.Command) bool {
	c.logger.Debug("command", "session", c.session.ID, "command", cmd.String())

	switch cmd.Kind {
	case command.Quit:
		return true

	case command.Help:
		c.renderer.Board(c.out, c.session.Snapshot())
		c.renderer.Menu(c.out)

	case command.Restart:
		if err := c.session.Restart(); err != nil {
			c.logger.Error("restart failed", "error", err)
			c.renderer.Error(c.out, types.MessageOf(err))
			return false
		}
		c.renderer.Rules(c.out)
		c.renderer.Board(c.out, c.session.Snapshot())
		c.renderer.Menu(c.out)

	default:
		if err := c.session.Execute(cmd); err != nil {
			c.renderer.Error(c.out, types.MessageOf(err))
		}
		c.renderer.Board(c.out, c.session.Snapshot())
		c.audit()

		if c.session.Won() {
			c.renderer.Win(c.out)
			return true
		}
	}
	return false
}

// audit logs any broken board invariant
func (c *Console) audit() {
	results := validator.CheckBoard(c.session.Snapshot())
	if !results.Valid() {
		c.logger.Error("board invariant violated", "session", c.session.ID, "errors", results.Errors)
	}
}
