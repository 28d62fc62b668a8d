package exporter

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/badele/gridscan/internal/processor"
	"github.com/badele/gridscan/internal/types"
)

var (
	styleBlank  = tcell.StyleDefault.Dim(true)
	styleNumber = tcell.StyleDefault
	stylePart   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleSymbol = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleGear   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Highlighter draws a board on an off-screen tcell buffer, part numbers and
// gears in their own styles, and reads it back as text.
//
// Every board column takes one screen cell. Wide glyphs (CJK, emoji) still
// round-trip as text, but a terminal renders them two columns wide, so
// colored output of such grids does not line up.
type Highlighter struct {
	screen tcell.SimulationScreen
	width  int
	height int
	blank  rune
}

func NewHighlighter(width, height int, blank rune) (*Highlighter, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("error initializing screen: %w", err)
	}

	screen.SetSize(width, height)

	return &Highlighter{
		screen: screen,
		width:  width,
		height: height,
		blank:  blank,
	}, nil
}

func (h *Highlighter) Close() {
	h.screen.Fini()
}

// Draw paints the board. Rows shorter than the board width are padded with
// the blank glyph.
func (h *Highlighter) Draw(board *types.Board, parts []processor.PartNumber, gears []processor.Gear) {
	isPart := make(map[types.Number]bool, len(parts))
	for _, p := range parts {
		isPart[p.Number] = true
	}
	isGear := make(map[types.Symbol]bool, len(gears))
	for _, g := range gears {
		isGear[g.Symbol] = true
	}

	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			h.screen.SetContent(x, y, h.blank, nil, styleBlank)
		}
	}

	for _, n := range board.Numbers {
		style := styleNumber
		if isPart[n] {
			style = stylePart
		}
		// Zero padding restores leading zeros of the original run
		digits := fmt.Sprintf("%0*d", n.Len(), n.Value)
		for i, r := range digits {
			h.screen.SetContent(n.ColStart+i, n.Row, r, nil, style)
		}
	}

	for _, s := range board.Symbols {
		style := styleSymbol
		if isGear[s] {
			style = styleGear
		}
		h.screen.SetContent(s.Col, s.Row, s.Glyph, nil, style)
	}

	h.screen.Show()
}

// PlainText returns the buffer without styles, one line per row.
func (h *Highlighter) PlainText() string {
	var sb strings.Builder

	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			mainc, _, _, _ := h.screen.GetContent(x, y)
			sb.WriteRune(mainc)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ANSIText returns the buffer with SGR sequences emitted on style changes.
// Every line ends with a reset when it is not already in the default style.
func (h *Highlighter) ANSIText() string {
	var sb strings.Builder

	for y := 0; y < h.height; y++ {
		current := tcell.StyleDefault
		for x := 0; x < h.width; x++ {
			mainc, _, style, _ := h.screen.GetContent(x, y)
			if style != current {
				sb.WriteString(styleToSGR(style))
				current = style
			}
			sb.WriteRune(mainc)
		}
		if current != tcell.StyleDefault {
			sb.WriteString("\x1b[0m")
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// styleToSGR always starts from a reset so sequences never depend on the
// previous cell.
func styleToSGR(style tcell.Style) string {
	fg, bg, attrs := style.Decompose()
	codes := []string{"0"}

	if attrs&tcell.AttrBold != 0 {
		codes = append(codes, "1")
	}
	if attrs&tcell.AttrDim != 0 {
		codes = append(codes, "2")
	}
	if attrs&tcell.AttrUnderline != 0 {
		codes = append(codes, "4")
	}
	if attrs&tcell.AttrReverse != 0 {
		codes = append(codes, "7")
	}
	if code, ok := colorCodes[fg]; ok {
		codes = append(codes, fmt.Sprintf("%d", code))
	}
	if code, ok := colorCodes[bg]; ok {
		codes = append(codes, fmt.Sprintf("%d", code+10))
	}

	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// colorCodes maps the 16 named tcell colors to SGR foreground codes
var colorCodes = map[tcell.Color]int{
	tcell.ColorBlack:   30,
	tcell.ColorMaroon:  31,
	tcell.ColorGreen:   32,
	tcell.ColorOlive:   33,
	tcell.ColorNavy:    34,
	tcell.ColorPurple:  35,
	tcell.ColorTeal:    36,
	tcell.ColorSilver:  37,
	tcell.ColorGray:    90,
	tcell.ColorRed:     91,
	tcell.ColorLime:    92,
	tcell.ColorYellow:  93,
	tcell.ColorBlue:    94,
	tcell.ColorFuchsia: 95,
	tcell.ColorAqua:    96,
	tcell.ColorWhite:   97,
}

// ExportHighlighted renders the board as text, colored when useColor is set.
func ExportHighlighted(board *types.Board, parts []processor.PartNumber, gears []processor.Gear, blank rune, useColor bool) (string, error) {
	if board.Rows == 0 || board.Width == 0 {
		return "", nil
	}

	h, err := NewHighlighter(board.Width, board.Rows, blank)
	if err != nil {
		return "", fmt.Errorf("error creating highlighter: %w", err)
	}
	defer h.Close()

	h.Draw(board, parts, gears)

	if useColor {
		return h.ANSIText(), nil
	}
	return h.PlainText(), nil
}
