package gridscan

import (
	"errors"
	"testing"
)

const sampleGrid = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func TestConvertToUTF8_StripsBOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("12*")...)
	got, err := ConvertToUTF8(input, "utf8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(got) != "12*" {
		t.Fatalf("expected %q, got %q", "12*", got)
	}
}

func TestConvertToUTF8_CP437(t *testing.T) {
	// 0xB0 is LIGHT SHADE in CP437
	got, err := ConvertToUTF8([]byte{'1', 0xB0, '2'}, "cp437")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(got) != "1░2" {
		t.Fatalf("expected %q, got %q", "1░2", got)
	}

	board, err := Tokenize(string(got))
	if err != nil {
		t.Fatalf("unexpected tokenize error: %v", err)
	}
	if len(board.Numbers) != 2 || board.Numbers[1].ColStart != 2 {
		t.Fatalf("expected decoded glyph to occupy a single column, got %v", board.Numbers)
	}
}

func TestConvertToUTF8_UnsupportedEncoding(t *testing.T) {
	if _, err := ConvertToUTF8([]byte("x"), "ebcdic"); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Fatalf("expected ErrUnsupportedEncoding, got %v", err)
	}
}

func TestNormalizeInput(t *testing.T) {
	got := NormalizeInput([]byte("12.\r\n.*.\r..3"))
	want := "12.\n.*.\r..3"

	if string(got) != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLoneCarriageReturnIsSymbol(t *testing.T) {
	board, err := Tokenize(string(NormalizeInput([]byte("5\r5"))))
	if err != nil {
		t.Fatalf("unexpected tokenize error: %v", err)
	}

	if board.Rows != 1 || len(board.Numbers) != 2 {
		t.Fatalf("expected one row with two numbers, got %d rows %v", board.Rows, board.Numbers)
	}
	if len(board.Symbols) != 1 || board.Symbols[0] != (Symbol{Glyph: '\r', Row: 0, Col: 1}) {
		t.Fatalf("expected '\\r' symbol at 0:1, got %v", board.Symbols)
	}
	if sum := SumPartNumbers(board, CountPerNumber, nil); sum != 10 {
		t.Errorf("expected 10, got %d", sum)
	}
}

func TestPublicQueries(t *testing.T) {
	board, err := Tokenize(sampleGrid)
	if err != nil {
		t.Fatalf("unexpected tokenize error: %v", err)
	}

	tr := NewTrace()
	if sum := SumPartNumbers(board, CountPerNumber, tr); sum != 4361 {
		t.Errorf("expected 4361, got %d", sum)
	}
	if sum := SumGearRatios(board, GearOptions{}, tr); sum != 467835 {
		t.Errorf("expected 467835, got %d", sum)
	}
	if tr.Len() == 0 {
		t.Errorf("expected trace output")
	}

	if !IsAdjacent(board.Numbers[0], board.Symbols[0]) {
		t.Errorf("expected 467 adjacent to the first '*'")
	}
}

func TestNewSessionWithOptions(t *testing.T) {
	s := NewSessionWithOptions(' ', CountPerSymbol, '*')
	s.SetInput("*5*\n   ")

	if err := s.ProcessPart1(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := s.Part1Answer(); !ok || got != 10 {
		t.Fatalf("expected 10, got %d (set=%v)", got, ok)
	}
}

func TestNewGridTokenizerWithBlank(t *testing.T) {
	board, err := NewGridTokenizerWithBlank([]byte("1 .2"), ' ').Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(board.Symbols) != 1 || board.Symbols[0].Glyph != '.' {
		t.Fatalf("expected '.' to be a symbol, got %v", board.Symbols)
	}
}
