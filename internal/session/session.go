// Package session runs processing passes over a raw text snapshot and keeps
// the answers and the diagnostic log between passes.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/badele/gridscan/internal/importer/grid"
	"github.com/badele/gridscan/internal/processor"
	"github.com/badele/gridscan/internal/trace"
	"github.com/badele/gridscan/internal/types"
)

// Session is not safe for concurrent use.
type Session struct {
	input     string
	blank     rune
	countMode processor.CountMode
	gear      processor.GearOptions
	log       *trace.Trace
	board     *types.Board

	part1 *int
	part2 *int
}

type Option func(*Session)

func WithBlank(r rune) Option {
	return func(s *Session) {
		s.blank = r
	}
}

func WithCountMode(mode processor.CountMode) Option {
	return func(s *Session) {
		s.countMode = mode
	}
}

// WithGearGlyph restricts query B to one glyph. Zero accepts every symbol.
func WithGearGlyph(r rune) Option {
	return func(s *Session) {
		s.gear = processor.GearOptions{Glyph: r}
	}
}

func New(opts ...Option) *Session {
	s := &Session{
		blank:     grid.DefaultBlank,
		countMode: processor.CountPerNumber,
		log:       trace.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetInput replaces the snapshot used by the next processing pass.
func (s *Session) SetInput(text string) {
	s.input = text
}

func (s *Session) Input() string {
	return s.input
}

// ProcessPart1 sums the numbers adjacent to any symbol.
func (s *Session) ProcessPart1() error {
	board, err := s.begin(1)
	if err != nil {
		s.part1 = nil
		return err
	}

	sum, _ := processor.SumPartNumbers(board, s.countMode, s.log)
	s.log.Printf("Final sum: %d", sum)
	s.part1 = &sum
	return nil
}

// ProcessPart2 sums the gear ratios of symbols adjacent to exactly two
// numbers.
func (s *Session) ProcessPart2() error {
	board, err := s.begin(2)
	if err != nil {
		s.part2 = nil
		return err
	}

	sum, _ := processor.SumGearRatios(board, s.gear, s.log)
	s.log.Printf("Final sum: %d", sum)
	s.part2 = &sum
	return nil
}

// begin re-tokenizes the current snapshot. The previous board is dropped even
// when tokenizing fails, and the caller clears the answer of the failed part.
func (s *Session) begin(part int) (*types.Board, error) {
	s.board = nil

	s.log.Printf("Processing as part %d", part)
	s.log.Printf("Run: %s", uuid.NewString())
	s.log.Printf("Input text: ")
	s.log.Printf("%s", s.input)

	tok := grid.NewGridTokenizer([]byte(s.input), grid.WithBlank(s.blank), grid.WithTrace(s.log))
	board, err := tok.Tokenize()
	if err != nil {
		s.log.Printf("ERROR: %v", err)
		return nil, fmt.Errorf("part %d: %w", part, err)
	}

	s.board = board
	return board, nil
}

// Part1Answer returns the last part 1 result, ok is false until computed or
// after a failed pass.
func (s *Session) Part1Answer() (int, bool) {
	return answer(s.part1)
}

func (s *Session) Part2Answer() (int, bool) {
	return answer(s.part2)
}

func answer(v *int) (int, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Log returns the whole diagnostic log accumulated by this session.
func (s *Session) Log() string {
	return s.log.String()
}

// Board returns the board built by the last processing pass, or nil.
func (s *Session) Board() *types.Board {
	return s.board
}
