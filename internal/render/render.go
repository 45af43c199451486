package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/thumbpouch/internal/card"
	"github.com/arcanaland/thumbpouch/internal/pile"
)

const (
	minColumnWidth     = 6
	maxColumnWidth     = 10
	defaultColumnWidth = 8
)

// Options controls how the board is drawn
type Options struct {
	Color bool
	ASCII bool
	// Width is the terminal width; zero uses a default layout.
	Width int

	// Hex colours; empty values fall back to the standard ANSI palette.
	Red    string
	Black  string
	Header string
}

// Renderer draws boards and texts for a terminal
type Renderer struct {
	opts   Options
	column int

	red    paint
	black  paint
	header paint
	dim    paint
}

type paint func(string) string

func plain(s string) string { return s }

// New builds a renderer for opts
func New(opts Options) *Renderer {
	column := defaultColumnWidth
	if opts.Width > 0 {
		column = opts.Width / pile.TableauCount
		if column < minColumnWidth {
			column = minColumnWidth
		}
		if column > maxColumnWidth {
			column = maxColumnWidth
		}
	}

	return &Renderer{
		opts:   opts,
		column: column,
		red:    newPaint(opts.Color, opts.Red, colorize.New(colorize.FgHiRed)),
		black:  newPaint(opts.Color, opts.Black, nil),
		header: newPaint(opts.Color, opts.Header, colorize.New(colorize.FgCyan, colorize.Bold)),
		dim:    newPaint(opts.Color, "", colorize.New(colorize.FgHiBlack)),
	}
}

// newPaint prefers a 24-bit hex colour and falls back to an ANSI colour
func newPaint(enabled bool, hex string, fallback *colorize.Color) paint {
	if !enabled {
		return plain
	}
	if hex != "" {
		if c, err := colorful.Hex(hex); err == nil {
			r, g, b := c.RGB255()
			return func(s string) string {
				return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
			}
		}
	}
	if fallback == nil {
		return plain
	}
	fallback.EnableColor()
	return func(s string) string { return fallback.Sprint(s) }
}

// Card renders one card, XX for face-down cards
func (r *Renderer) Card(c card.Card) string {
	if !c.FaceUp {
		return r.dim("XX")
	}
	label := c.Label(r.opts.ASCII)
	if c.Suit.IsRed() {
		return r.red(label)
	}
	return r.black(label)
}

// slot renders the top of a pile as [card], or an empty slot
func (r *Renderer) slot(cards []card.Card) string {
	if len(cards) == 0 {
		return "[   ]"
	}
	return "[" + padLeft(r.Card(cards[len(cards)-1]), 3) + "]"
}

// Board draws every pile: the foundation tops, the tableau columns top to
// bottom, then the stock count and the top of the waste
func (r *Renderer) Board(w io.Writer, b pile.Board) {
	width := r.column * pile.TableauCount

	fmt.Fprintln(w, r.banner("FOUNDATION", width))
	var labels, slots strings.Builder
	for i := range b.Foundations {
		labels.WriteString(padRight(fmt.Sprintf("f%d", i+1), r.column))
		slots.WriteString(padRight(r.slot(b.Foundations[i]), r.column))
	}
	fmt.Fprintln(w, strings.TrimRight(labels.String(), " "))
	fmt.Fprintln(w, strings.TrimRight(slots.String(), " "))

	fmt.Fprintln(w, r.banner("TABLEAU", width))
	labels.Reset()
	height := 0
	for i, col := range b.Tableau {
		labels.WriteString(padRight(fmt.Sprintf("t%d", i+1), r.column))
		if len(col) > height {
			height = len(col)
		}
	}
	fmt.Fprintln(w, strings.TrimRight(labels.String(), " "))
	for row := 0; row < height; row++ {
		var line strings.Builder
		for _, col := range b.Tableau {
			cell := ""
			if row < len(col) {
				cell = r.Card(col[row])
			}
			line.WriteString(padRight(cell, r.column))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}

	fmt.Fprintln(w, r.banner("STOCK/WASTE", width))
	fmt.Fprintf(w, "Stock #(%d) --> %s\n", len(b.Stock), r.slot(b.Waste))
}

// banner centres a title in a line of '='
func (r *Renderer) banner(title string, width int) string {
	title = " " + title + " "
	left := (width - len(title)) / 2
	if left < 3 {
		left = 3
	}
	right := width - len(title) - left
	if right < 3 {
		right = 3
	}
	return r.header(strings.Repeat("=", left) + title + strings.Repeat("=", right))
}

// Rules prints the rules of the game
func (r *Renderer) Rules(w io.Writer) {
	fmt.Fprintln(w, r.header(rulesTitle))
	fmt.Fprint(w, rulesText)
}

// Menu prints the command summary
func (r *Renderer) Menu(w io.Writer) {
	fmt.Fprint(w, menuText)
}

// Win prints the victory banner
func (r *Renderer) Win(w io.Writer) {
	fmt.Fprint(w, r.header(winBanner))
}

// Error prints a rejected command
func (r *Renderer) Error(w io.Writer, message string) {
	fmt.Fprintf(w, "%s\nTry again.\n", r.red(message))
}

// visibleWidth counts the runes a string occupies once ANSI escapes are removed
func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

func padRight(s string, width int) string {
	if n := visibleWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s + " "
}

func padLeft(s string, width int) string {
	if n := visibleWidth(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
