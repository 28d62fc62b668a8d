package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrMalformedNumber is returned when a digit run cannot be parsed as an int.
// Only digits are ever accumulated, so in practice this means overflow.
var ErrMalformedNumber = errors.New("malformed number")

/////////////////////////////////////////////////////////////////////////////
// TOKEN TYPE
/////////////////////////////////////////////////////////////////////////////

type TokenType int

const (
	TokenNumber TokenType = iota
	TokenSymbol
)

func (t TokenType) String() string {
	switch t {
	case TokenNumber:
		return "TokenNumber"
	case TokenSymbol:
		return "TokenSymbol"
	default:
		return fmt.Sprintf("TokenType(%d)", t)
	}
}

func (t TokenType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TokenType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "TokenNumber":
		*t = TokenNumber
	case "TokenSymbol":
		*t = TokenSymbol
	default:
		return fmt.Errorf("unknown TokenType: %s", s)
	}

	return nil
}

func (t TokenType) MarshalYAML() (any, error) {
	return t.String(), nil
}

/////////////////////////////////////////////////////////////////////////////
// NUMBER / SYMBOL
/////////////////////////////////////////////////////////////////////////////

// Number is a maximal run of digits on a single row. ColStart and ColEnd are
// inclusive, zero-based column indexes.
type Number struct {
	Value    int
	Row      int
	ColStart int
	ColEnd   int
}

// Len returns the number of cells covered by the run.
func (n Number) Len() int {
	return n.ColEnd - n.ColStart + 1
}

func (n Number) String() string {
	return fmt.Sprintf("%d@%d:%d-%d", n.Value, n.Row, n.ColStart, n.ColEnd)
}

// Symbol is a single non-digit, non-blank cell.
type Symbol struct {
	Glyph rune
	Row   int
	Col   int
}

func (s Symbol) String() string {
	return fmt.Sprintf("%q@%d:%d", s.Glyph, s.Row, s.Col)
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN
/////////////////////////////////////////////////////////////////////////////

// Token is the flattened view of a Number or Symbol, used by exporters.
type Token struct {
	Type   TokenType `json:"type" yaml:"type"`
	Row    int       `json:"row" yaml:"row"`
	Col    int       `json:"col" yaml:"col"`
	ColEnd int       `json:"col_end" yaml:"col_end"`
	Raw    string    `json:"raw" yaml:"raw"`
	Value  int       `json:"value,omitempty" yaml:"value,omitempty"`
}

func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return fmt.Sprintf("NUMBER: %d", t.Value)
	case TokenSymbol:
		return "SYMBOL: " + t.Raw
	default:
		return "UNKNOWN"
	}
}

/////////////////////////////////////////////////////////////////////////////
// BOARD
/////////////////////////////////////////////////////////////////////////////

// Board holds every token recognized in one text snapshot, in scan order.
type Board struct {
	Numbers []Number
	Symbols []Symbol
	Rows    int
	Width   int
}

func NewBoard() *Board {
	return &Board{
		Numbers: make([]Number, 0),
		Symbols: make([]Symbol, 0),
	}
}

// Tokens merges numbers and symbols back into row-major, left-to-right order.
func (b *Board) Tokens() []Token {
	tokens := make([]Token, 0, len(b.Numbers)+len(b.Symbols))

	for _, n := range b.Numbers {
		tokens = append(tokens, Token{
			Type:   TokenNumber,
			Row:    n.Row,
			Col:    n.ColStart,
			ColEnd: n.ColEnd,
			Raw:    fmt.Sprintf("%d", n.Value),
			Value:  n.Value,
		})
	}
	for _, s := range b.Symbols {
		tokens = append(tokens, Token{
			Type:   TokenSymbol,
			Row:    s.Row,
			Col:    s.Col,
			ColEnd: s.Col,
			Raw:    string(s.Glyph),
		})
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].Row != tokens[j].Row {
			return tokens[i].Row < tokens[j].Row
		}
		return tokens[i].Col < tokens[j].Col
	})

	return tokens
}

/////////////////////////////////////////////////////////////////////////////
// BOARD STATS
/////////////////////////////////////////////////////////////////////////////

type BoardStats struct {
	Rows           int            `json:"rows" yaml:"rows"`
	Width          int            `json:"width" yaml:"width"`
	TotalNumbers   int            `json:"total_numbers" yaml:"total_numbers"`
	TotalSymbols   int            `json:"total_symbols" yaml:"total_symbols"`
	TotalDigits    int            `json:"total_digits" yaml:"total_digits"`
	SymbolsByGlyph map[string]int `json:"symbols_by_glyph" yaml:"symbols_by_glyph"`
}

// Stats computes statistics over the board contents.
func (b *Board) Stats() BoardStats {
	stats := BoardStats{
		Rows:           b.Rows,
		Width:          b.Width,
		TotalNumbers:   len(b.Numbers),
		TotalSymbols:   len(b.Symbols),
		SymbolsByGlyph: make(map[string]int),
	}

	for _, n := range b.Numbers {
		stats.TotalDigits += n.Len()
	}
	for _, s := range b.Symbols {
		stats.SymbolsByGlyph[string(s.Glyph)]++
	}

	return stats
}
