package processor

import (
	"fmt"

	"github.com/badele/gridscan/internal/trace"
	"github.com/badele/gridscan/internal/types"
)

///////////////////////////////////////////////////////////////////////////////
// Adjacency
///////////////////////////////////////////////////////////////////////////////

// IsAdjacent reports whether the symbol lies in the king's-move neighborhood
// of any cell covered by the number.
func IsAdjacent(n types.Number, s types.Symbol) bool {
	return s.Row >= satDec(n.Row) && s.Row <= n.Row+1 &&
		s.Col >= satDec(n.ColStart) && s.Col <= n.ColEnd+1
}

// satDec decrements without going below zero.
func satDec(v int) int {
	if v <= 0 {
		return 0
	}
	return v - 1
}

///////////////////////////////////////////////////////////////////////////////
// Row index
///////////////////////////////////////////////////////////////////////////////

// Index buckets board tokens by row. Lookups walk neighbor rows in ascending
// order, so they yield the same pairs in the same order as a nested scan over
// the board slices.
type Index struct {
	board   *types.Board
	numbers map[int][]int
	symbols map[int][]int
}

func NewIndex(board *types.Board) *Index {
	idx := &Index{
		board:   board,
		numbers: make(map[int][]int),
		symbols: make(map[int][]int),
	}

	for i, n := range board.Numbers {
		idx.numbers[n.Row] = append(idx.numbers[n.Row], i)
	}
	for i, s := range board.Symbols {
		idx.symbols[s.Row] = append(idx.symbols[s.Row], i)
	}

	return idx
}

// SymbolsAround returns the symbols adjacent to the number, in scan order.
func (idx *Index) SymbolsAround(n types.Number) []types.Symbol {
	var found []types.Symbol
	for row := satDec(n.Row); row <= n.Row+1; row++ {
		for _, i := range idx.symbols[row] {
			if s := idx.board.Symbols[i]; IsAdjacent(n, s) {
				found = append(found, s)
			}
		}
	}
	return found
}

// NumbersAround returns the numbers adjacent to the symbol, in scan order.
func (idx *Index) NumbersAround(s types.Symbol) []types.Number {
	var found []types.Number
	for row := satDec(s.Row); row <= s.Row+1; row++ {
		for _, i := range idx.numbers[row] {
			if n := idx.board.Numbers[i]; IsAdjacent(n, s) {
				found = append(found, n)
			}
		}
	}
	return found
}

///////////////////////////////////////////////////////////////////////////////
// Query A: part numbers
///////////////////////////////////////////////////////////////////////////////

type CountMode int

const (
	// CountPerNumber adds a number once when at least one symbol touches it.
	CountPerNumber CountMode = iota
	// CountPerSymbol adds a number once for every symbol touching it.
	CountPerSymbol
)

func (m CountMode) String() string {
	switch m {
	case CountPerNumber:
		return "per-number"
	case CountPerSymbol:
		return "per-symbol"
	default:
		return fmt.Sprintf("CountMode(%d)", m)
	}
}

// ParseCountMode accepts the names returned by CountMode.String.
func ParseCountMode(s string) (CountMode, error) {
	switch s {
	case "per-number", "":
		return CountPerNumber, nil
	case "per-symbol":
		return CountPerSymbol, nil
	}
	return CountPerNumber, fmt.Errorf("unknown count mode: %s", s)
}

// PartNumber is a number together with the symbols touching it.
type PartNumber struct {
	Number  types.Number
	Symbols []types.Symbol
}

// Contribution is what the part number adds to the query A total.
func (p PartNumber) Contribution(mode CountMode) int {
	if mode == CountPerSymbol {
		return p.Number.Value * len(p.Symbols)
	}
	return p.Number.Value
}

// PartNumbers returns every number touching at least one symbol.
func PartNumbers(board *types.Board) []PartNumber {
	idx := NewIndex(board)

	var parts []PartNumber
	for _, n := range board.Numbers {
		if symbols := idx.SymbolsAround(n); len(symbols) > 0 {
			parts = append(parts, PartNumber{Number: n, Symbols: symbols})
		}
	}
	return parts
}

// SumPartNumbers sums the values of the numbers adjacent to any symbol.
func SumPartNumbers(board *types.Board, mode CountMode, tr *trace.Trace) (int, []PartNumber) {
	parts := PartNumbers(board)

	sum := 0
	for _, p := range parts {
		for _, s := range p.Symbols {
			tr.Printf("number %d (row %d, cols %d-%d) touches %q at row %d col %d",
				p.Number.Value, p.Number.Row, p.Number.ColStart, p.Number.ColEnd, s.Glyph, s.Row, s.Col)
		}
		sum += p.Contribution(mode)
	}

	tr.Printf("Part numbers: %d of %d (%s)", len(parts), len(board.Numbers), mode)
	return sum, parts
}

///////////////////////////////////////////////////////////////////////////////
// Query B: gears
///////////////////////////////////////////////////////////////////////////////

// GearOptions restricts which symbols may act as gears. A zero Glyph accepts
// every symbol.
type GearOptions struct {
	Glyph rune
}

func (o GearOptions) accepts(s types.Symbol) bool {
	return o.Glyph == 0 || o.Glyph == s.Glyph
}

// Gear is a symbol bridging exactly two numbers.
type Gear struct {
	Symbol  types.Symbol
	Numbers [2]types.Number
}

func (g Gear) Ratio() int {
	return g.Numbers[0].Value * g.Numbers[1].Value
}

// Gears returns the symbols adjacent to exactly two numbers.
func Gears(board *types.Board, opts GearOptions) []Gear {
	idx := NewIndex(board)

	var gears []Gear
	for _, s := range board.Symbols {
		if !opts.accepts(s) {
			continue
		}
		if numbers := idx.NumbersAround(s); len(numbers) == 2 {
			gears = append(gears, Gear{Symbol: s, Numbers: [2]types.Number{numbers[0], numbers[1]}})
		}
	}
	return gears
}

// SumGearRatios sums the products of the two numbers around every gear.
func SumGearRatios(board *types.Board, opts GearOptions, tr *trace.Trace) (int, []Gear) {
	gears := Gears(board, opts)

	sum := 0
	for _, g := range gears {
		tr.Printf("gear %q at row %d col %d: %d x %d = %d",
			g.Symbol.Glyph, g.Symbol.Row, g.Symbol.Col, g.Numbers[0].Value, g.Numbers[1].Value, g.Ratio())
		sum += g.Ratio()
	}

	tr.Printf("Gears: %d of %d symbols", len(gears), len(board.Symbols))
	return sum, gears
}
