package types

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestBoardTokensScanOrder(t *testing.T) {
	board := &Board{
		Numbers: []Number{
			{Value: 467, Row: 0, ColStart: 0, ColEnd: 2},
			{Value: 35, Row: 2, ColStart: 2, ColEnd: 3},
		},
		Symbols: []Symbol{
			{Glyph: '#', Row: 0, Col: 4},
			{Glyph: '*', Row: 1, Col: 3},
		},
	}

	var raws []string
	for _, tok := range board.Tokens() {
		raws = append(raws, tok.Raw)
	}

	expected := []string{"467", "#", "*", "35"}
	if !reflect.DeepEqual(raws, expected) {
		t.Fatalf("Expected %v, got %v", expected, raws)
	}
}

func TestBoardStats(t *testing.T) {
	board := &Board{
		Numbers: []Number{{Value: 12, Row: 0, ColStart: 0, ColEnd: 1}, {Value: 7, Row: 1, ColStart: 3, ColEnd: 3}},
		Symbols: []Symbol{{Glyph: '*', Row: 0, Col: 2}, {Glyph: '*', Row: 1, Col: 0}, {Glyph: 'é', Row: 1, Col: 1}},
		Rows:    2,
		Width:   4,
	}

	stats := board.Stats()
	if stats.TotalDigits != 3 || stats.TotalNumbers != 2 || stats.TotalSymbols != 3 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if !reflect.DeepEqual(stats.SymbolsByGlyph, map[string]int{"*": 2, "é": 1}) {
		t.Errorf("Unexpected glyph counts %v", stats.SymbolsByGlyph)
	}
}

func TestTokenTypeJSON(t *testing.T) {
	for _, tt := range []TokenType{TokenNumber, TokenSymbol} {
		data, err := json.Marshal(tt)
		if err != nil {
			t.Fatalf("unexpected marshal error: %v", err)
		}

		var decoded TokenType
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unexpected unmarshal error: %v", err)
		}
		if decoded != tt {
			t.Errorf("Expected %v, got %v", tt, decoded)
		}
	}

	var decoded TokenType
	if err := json.Unmarshal([]byte(`"TokenText"`), &decoded); err == nil {
		t.Errorf("Expected error for unknown token type")
	}
}

func TestNumberLen(t *testing.T) {
	if n := (Number{Value: 598, Row: 9, ColStart: 5, ColEnd: 7}); n.Len() != 3 {
		t.Errorf("Expected length 3, got %d", n.Len())
	}
}
