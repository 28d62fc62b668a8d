package grid

// Grid format
//   Each line of the input is one row of the grid. Columns are counted in
//   characters (runes), starting at 0.
//
//   0-9      digit, part of a number
//   .        blank cell (configurable with WithBlank)
//   other    symbol
//
// Example:
//   467..114..     -> 467 at 0:0-2, 114 at 0:5-7
//   ...*......     -> '*' at 1:3

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/badele/gridscan/internal/trace"
	"github.com/badele/gridscan/internal/types"
)

const DefaultBlank = '.'

var _ types.TokenizerWithStats = (*Tokenizer)(nil)

type Tokenizer struct {
	input []byte
	blank rune
	trace *trace.Trace
	Board *types.Board     `json:"board"`
	Stats types.BoardStats `json:"stats"`
}

type Option func(*Tokenizer)

// WithBlank sets the glyph treated as empty space.
func WithBlank(r rune) Option {
	return func(t *Tokenizer) {
		t.blank = r
	}
}

// WithTrace sets the buffer receiving one line per row and per token.
func WithTrace(tr *trace.Trace) Option {
	return func(t *Tokenizer) {
		t.trace = tr
	}
}

func NewGridTokenizer(input []byte, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		input: input,
		blank: DefaultBlank,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize scans the whole input and builds a fresh board. The only error is
// a digit run that does not fit in an int.
func (t *Tokenizer) Tokenize() (*types.Board, error) {
	board := types.NewBoard()

	for row, line := range SplitLines(t.input) {
		if err := t.scanLine(board, row, line); err != nil {
			return nil, err
		}
		board.Rows++
	}

	t.Board = board
	t.Stats = board.Stats()
	return board, nil
}

func (t *Tokenizer) GetStats() types.BoardStats {
	return t.Stats
}

// SplitLines splits on LF or CRLF. A final line terminator does not produce
// an extra empty row, and a CR not followed by LF stays in the line.
func SplitLines(input []byte) []string {
	if len(input) == 0 {
		return nil
	}

	lines := strings.Split(string(input), "\n")
	last := len(lines) - 1
	if lines[last] == "" {
		lines = lines[:last]
	}
	for i := range lines {
		if i < last {
			lines[i] = strings.TrimSuffix(lines[i], "\r")
		}
	}
	return lines
}

/////////////////////////////////////////////////////////////////////////////
// SCAN STATE
/////////////////////////////////////////////////////////////////////////////

// scanState is closed over outside and inside.
type scanState interface {
	isScanState()
}

type outside struct{}

type inside struct {
	start  int
	digits []byte
}

func (outside) isScanState() {}
func (inside) isScanState()  {}

func (t *Tokenizer) scanLine(board *types.Board, row int, line string) error {
	t.trace.Printf("row %d: %s", row, line)

	cells := []rune(line)
	var state scanState = outside{}

	for col, r := range cells {
		switch s := state.(type) {
		case inside:
			if isDigit(r) {
				s.digits = append(s.digits, byte(r))
				state = s
				continue
			}
			if err := t.emitNumber(board, row, s, col-1); err != nil {
				return err
			}
			state = t.stepOutside(board, row, col, r)

		case outside:
			state = t.stepOutside(board, row, col, r)
		}
	}

	// Numbers touching the right edge
	if s, ok := state.(inside); ok {
		if err := t.emitNumber(board, row, s, len(cells)-1); err != nil {
			return err
		}
	}

	board.Width = max(board.Width, len(cells))
	return nil
}

func (t *Tokenizer) stepOutside(board *types.Board, row, col int, r rune) scanState {
	switch {
	case isDigit(r):
		return inside{start: col, digits: []byte{byte(r)}}
	case r == t.blank:
		return outside{}
	}

	symbol := types.Symbol{Glyph: r, Row: row, Col: col}
	board.Symbols = append(board.Symbols, symbol)
	t.trace.Printf("  symbol %q at row %d col %d", r, row, col)
	return outside{}
}

func (t *Tokenizer) emitNumber(board *types.Board, row int, s inside, colEnd int) error {
	value, err := strconv.Atoi(string(s.digits))
	if err != nil {
		return fmt.Errorf("%w: %q at row %d cols %d-%d: %v",
			types.ErrMalformedNumber, s.digits, row, s.start, colEnd, err)
	}

	number := types.Number{Value: value, Row: row, ColStart: s.start, ColEnd: colEnd}
	board.Numbers = append(board.Numbers, number)
	t.trace.Printf("  number %d at row %d cols %d-%d", value, row, s.start, colEnd)
	return nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
