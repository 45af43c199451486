package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/thumbpouch/internal/card"
	"github.com/arcanaland/thumbpouch/internal/config"
	"github.com/arcanaland/thumbpouch/internal/console"
	"github.com/arcanaland/thumbpouch/internal/game"
	"github.com/arcanaland/thumbpouch/internal/logging"
	"github.com/arcanaland/thumbpouch/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Deal a new game and play it",
	Long: `Play deals a new game and reads commands from standard input until you
quit, win, or the input ends.

Examples:
  thumbpouch play
  thumbpouch play --seed 42 --ascii
  echo "sw" | thumbpouch play --color never`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	results := cfg.Validate()
	if len(results.Errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(results.Errors, "; "))
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Open(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closeLog()

	seed, _ := cmd.Flags().GetUint64("seed")
	session, err := game.New(game.ShuffledDecks(card.NewRNG(seed)), logger)
	if err != nil {
		return fmt.Errorf("error dealing game: %w", err)
	}

	out := cmd.OutOrStdout()
	renderer := render.New(renderOptions(cfg, out))
	c := console.New(session, renderer, cmd.InOrStdin(), out, logger, console.Options{
		Prompt:    cfg.Prompt,
		ShowRules: cfg.ShowRules,
	})
	return c.Run(cmd.Context())
}

// loadConfig reads the file named by --config, or the default one
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// applyFlags lets explicitly set flags override the config file
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("color") {
		value, _ := flags.GetString("color")
		if err := cfg.Set("color", value); err != nil {
			return err
		}
	}
	if ascii, _ := flags.GetBool("ascii"); ascii {
		cfg.Symbols = config.SymbolsASCII
	}
	if flags.Changed("log-level") {
		value, _ := flags.GetString("log-level")
		if err := cfg.Set("log_level", value); err != nil {
			return err
		}
	}
	return nil
}

// renderOptions resolves colour and width against the terminal behind out
func renderOptions(cfg *config.Config, out io.Writer) render.Options {
	opts := render.Options{
		ASCII:  cfg.Symbols == config.SymbolsASCII,
		Red:    cfg.Theme.Red,
		Black:  cfg.Theme.Black,
		Header: cfg.Theme.Header,
	}

	isTerminal := false
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		isTerminal = true
		width, _, err := term.GetSize(int(f.Fd()))
		if err != nil || width <= 0 {
			width = 80 // Default if we can't get terminal width
		}
		opts.Width = width
	}

	switch cfg.Color {
	case config.ColorAlways:
		opts.Color = true
	case config.ColorNever:
		opts.Color = false
	default:
		opts.Color = isTerminal && os.Getenv("NO_COLOR") == ""
	}
	return opts
}
