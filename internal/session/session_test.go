package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/badele/gridscan/internal/processor"
	"github.com/badele/gridscan/internal/types"
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

func TestAnswersUnsetUntilProcessed(t *testing.T) {
	s := New()
	s.SetInput(sampleGrid)

	if _, ok := s.Part1Answer(); ok {
		t.Errorf("Expected part 1 answer to be unset")
	}
	if _, ok := s.Part2Answer(); ok {
		t.Errorf("Expected part 2 answer to be unset")
	}
	if s.Board() != nil {
		t.Errorf("Expected no board before processing")
	}
}

func TestProcessSample(t *testing.T) {
	s := New()
	s.SetInput(sampleGrid)

	if err := s.ProcessPart1(); err != nil {
		t.Fatalf("unexpected part 1 error: %v", err)
	}
	if err := s.ProcessPart2(); err != nil {
		t.Fatalf("unexpected part 2 error: %v", err)
	}

	if got, ok := s.Part1Answer(); !ok || got != 4361 {
		t.Errorf("Expected part 1 answer 4361, got %d (set=%v)", got, ok)
	}
	if got, ok := s.Part2Answer(); !ok || got != 467835 {
		t.Errorf("Expected part 2 answer 467835, got %d (set=%v)", got, ok)
	}

	log := s.Log()
	for _, want := range []string{
		"Processing as part 1",
		"Processing as part 2",
		"Run: ",
		"row 0: 467..114..",
		"Final sum: 4361",
		"Final sum: 467835",
	} {
		if !strings.Contains(log, want) {
			t.Errorf("Expected log to contain %q", want)
		}
	}
}

func TestProcessUsesCurrentSnapshot(t *testing.T) {
	s := New()
	s.SetInput(sampleGrid)
	if err := s.ProcessPart1(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.SetInput("12*")
	if err := s.ProcessPart1(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, _ := s.Part1Answer(); got != 12 {
		t.Errorf("Expected 12 from the new snapshot, got %d", got)
	}
	if n := len(s.Board().Numbers); n != 1 {
		t.Errorf("Expected board rebuilt with 1 number, got %d", n)
	}
}

func TestSessionOptions(t *testing.T) {
	s := New(
		WithBlank(' '),
		WithCountMode(processor.CountPerSymbol),
		WithGearGlyph('*'),
	)
	s.SetInput("#12*\n    \n3 4 \n +  ")

	if err := s.ProcessPart1(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.ProcessPart2(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, _ := s.Part1Answer(); got != 31 {
		t.Errorf("Expected 12*2 + 3 + 4 = 31, got %d", got)
	}
	// '+' bridges 3 and 4 but only '*' may act as a gear.
	if got, _ := s.Part2Answer(); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestProcessMalformedNumber(t *testing.T) {
	s := New()
	s.SetInput(sampleGrid)
	if err := s.ProcessPart1(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.ProcessPart2(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.SetInput("*99999999999999999999999999")
	err := s.ProcessPart2()
	if !errors.Is(err, types.ErrMalformedNumber) {
		t.Fatalf("Expected ErrMalformedNumber, got %v", err)
	}

	if s.Board() != nil {
		t.Errorf("Expected previous board to be discarded")
	}
	if got, ok := s.Part2Answer(); ok {
		t.Errorf("Expected part 2 answer cleared after failure, got %d", got)
	}
	// Only the failed part is cleared
	if got, ok := s.Part1Answer(); !ok || got != 4361 {
		t.Errorf("Expected part 1 answer untouched, got %d (set=%v)", got, ok)
	}
	if !strings.Contains(s.Log(), "ERROR: ") {
		t.Errorf("Expected error in log")
	}
}
