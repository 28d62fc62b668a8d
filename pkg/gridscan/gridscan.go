// Package gridscan provides a public API for extracting numbers and symbols
// from a character grid and querying their adjacency.
//
// This package provides functions to:
//   - Convert input from legacy code pages (CP437, CP850, ISO-8859-1) to UTF-8
//   - Tokenize a grid into numbers and symbols
//   - Sum part numbers (numbers touching a symbol) and gear ratios
//   - Run both queries through a Session that keeps a diagnostic log
//
// Example usage:
//
//	import "github.com/badele/gridscan/pkg/gridscan"
//
//	data, _ := os.ReadFile("schematic.txt")
//	utf8Data, _ := gridscan.ConvertToUTF8(data, "utf8")
//	s := gridscan.NewSession()
//	s.SetInput(string(utf8Data))
//	_ = s.ProcessPart1()
//	sum, _ := s.Part1Answer()
package gridscan

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/badele/gridscan/internal/importer/grid"
	"github.com/badele/gridscan/internal/processor"
	"github.com/badele/gridscan/internal/session"
	"github.com/badele/gridscan/internal/trace"
	"github.com/badele/gridscan/internal/types"
)

// Type aliases for public API
type (
	// Number is a run of digits on one row
	Number = types.Number

	// Symbol is a single non-digit, non-blank cell
	Symbol = types.Symbol

	// Board holds the numbers and symbols of one text snapshot
	Board = types.Board

	// BoardStats contains statistics about a board
	BoardStats = types.BoardStats

	// Token is the flattened view of a number or symbol
	Token = types.Token

	// TokenType represents the type of a token
	TokenType = types.TokenType

	// Tokenizer is the interface for all tokenizers
	Tokenizer = types.Tokenizer

	// TokenizerWithStats is a tokenizer that also provides statistics
	TokenizerWithStats = types.TokenizerWithStats

	// GridTokenizer turns raw text into a Board
	GridTokenizer = grid.Tokenizer

	// Trace is the append-only diagnostic buffer
	Trace = trace.Trace

	// CountMode selects how part numbers touching several symbols are summed
	CountMode = processor.CountMode

	// PartNumber is a number with the symbols touching it
	PartNumber = processor.PartNumber

	// Gear is a symbol bridging exactly two numbers
	Gear = processor.Gear

	// GearOptions restricts which symbols may act as gears
	GearOptions = processor.GearOptions

	// Session keeps the input snapshot, answers and log between passes
	Session = session.Session
)

// Token type constants
const (
	TokenNumber = types.TokenNumber
	TokenSymbol = types.TokenSymbol
)

// Count mode constants
const (
	CountPerNumber = processor.CountPerNumber
	CountPerSymbol = processor.CountPerSymbol
)

var (
	ErrMalformedNumber     = types.ErrMalformedNumber
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "utf8" {
		return stripUTF8BOM(data), nil
	}

	var decoder *encoding.Decoder

	switch sourceEncoding {
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	// Strip BOM if present after conversion
	return stripUTF8BOM(utf8Data), nil
}

// NormalizeInput turns CRLF line endings into LF. A lone CR is not a line
// terminator and stays in place as a grid cell.
func NormalizeInput(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
}

// NewGridTokenizer creates a tokenizer with '.' as blank glyph.
func NewGridTokenizer(input []byte) *GridTokenizer {
	return grid.NewGridTokenizer(input)
}

// NewGridTokenizerWithBlank creates a tokenizer using another blank glyph.
func NewGridTokenizerWithBlank(input []byte, blank rune) *GridTokenizer {
	return grid.NewGridTokenizer(input, grid.WithBlank(blank))
}

// Tokenize builds a board from text with the default blank glyph.
func Tokenize(text string) (*Board, error) {
	return grid.NewGridTokenizer([]byte(text)).Tokenize()
}

// IsAdjacent reports whether the symbol touches any cell of the number,
// diagonals included.
func IsAdjacent(n Number, s Symbol) bool {
	return processor.IsAdjacent(n, s)
}

// SumPartNumbers sums the numbers adjacent to at least one symbol.
func SumPartNumbers(board *Board, mode CountMode, tr *Trace) int {
	sum, _ := processor.SumPartNumbers(board, mode, tr)
	return sum
}

// SumGearRatios sums the products of the number pairs around every gear.
func SumGearRatios(board *Board, opts GearOptions, tr *Trace) int {
	sum, _ := processor.SumGearRatios(board, opts, tr)
	return sum
}

// NewTrace creates an empty diagnostic buffer.
func NewTrace() *Trace {
	return trace.New()
}

// NewSession creates a session with the default blank glyph, per-number
// counting and every symbol accepted as a gear.
func NewSession() *Session {
	return session.New()
}

// NewSessionWithOptions creates a session with explicit query settings.
// A zero gearGlyph accepts every symbol.
func NewSessionWithOptions(blank rune, mode CountMode, gearGlyph rune) *Session {
	return session.New(
		session.WithBlank(blank),
		session.WithCountMode(mode),
		session.WithGearGlyph(gearGlyph),
	)
}
