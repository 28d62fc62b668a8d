package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/badele/gridscan/internal/config"
	"github.com/badele/gridscan/internal/exporter"
	"github.com/badele/gridscan/internal/importer/grid"
	"github.com/badele/gridscan/internal/processor"
	"github.com/badele/gridscan/internal/session"
	"github.com/badele/gridscan/internal/types"
	"github.com/badele/gridscan/pkg/gridscan"
)

type Globals struct {
	Config    string `help:"Config file (TOML or YAML)." short:"c" type:"path"`
	Encoding  string `help:"Input encoding: utf8, cp437, cp850, iso-8859-1." short:"e"`
	Blank     string `help:"Glyph treated as empty space (default '.')." short:"b"`
	CountMode string `help:"Part number counting: per-number or per-symbol." name:"count-mode"`
	Gear      string `help:"Only this glyph may act as a gear." short:"g"`
	Trace     bool   `help:"Print the diagnostic log to stderr." short:"t"`
	Verbose   bool   `help:"Enable debug logging." short:"v"`

	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

type InputArg struct {
	File string `arg:"" optional:"" help:"Input grid file. Reads stdin (pipe) when omitted." type:"path"`
}

type CLI struct {
	Globals

	Solve     SolveCmd     `cmd:"" default:"withargs" help:"Run both queries (default)."`
	Part1     Part1Cmd     `cmd:"" name:"part1" help:"Sum the numbers adjacent to any symbol."`
	Part2     Part2Cmd     `cmd:"" name:"part2" help:"Sum the gear ratios of symbols touching exactly two numbers."`
	Tokens    TokensCmd    `cmd:"" help:"Display recognized numbers and symbols."`
	Stats     StatsCmd     `cmd:"" help:"Display board statistics."`
	Highlight HighlightCmd `cmd:"" help:"Display the grid with part numbers and gears highlighted."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gridscan"),
		kong.Description("Extract numbers and symbols from a character grid and query their adjacency."),
		kong.UsageOnError(),
	)

	cli.Globals.out = os.Stdout
	cli.Globals.errOut = os.Stderr
	cli.Globals.logger = newLogger(os.Stderr, cli.Verbose)

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

/////////////////////////////////////////////////////////////////////////////
// Input and settings
/////////////////////////////////////////////////////////////////////////////

// settings resolves flags over the config file over the defaults.
func (g *Globals) settings() (config.Config, error) {
	cfg := config.Default()
	if g.Config != "" {
		loaded, err := config.Load(g.Config)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		g.logger.Debug("config loaded", "path", g.Config, "format", config.DetectFormat(g.Config))
	}

	cfg = cfg.Merge(config.Config{
		Encoding:  g.Encoding,
		Blank:     g.Blank,
		CountMode: g.CountMode,
		GearGlyph: g.Gear,
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func (g *Globals) readInput(file string, cfg config.Config) ([]byte, error) {
	var data []byte
	var err error

	// Read from stdin if no file argument is provided
	if file == "" {
		stat, err := os.Stdin.Stat()
		if err != nil {
			return nil, fmt.Errorf("error checking stdin: %w", err)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, fmt.Errorf("no input file and nothing piped on stdin")
		}

		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading from stdin: %w", err)
		}
		file = "stdin"
	} else {
		data, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file: %w", err)
		}
	}

	data, err = gridscan.ConvertToUTF8(data, cfg.Encoding)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("input read", "source", file, "bytes", len(data), "encoding", cfg.Encoding)
	return gridscan.NormalizeInput(data), nil
}

func (g *Globals) newSession(file string) (*session.Session, error) {
	cfg, err := g.settings()
	if err != nil {
		return nil, err
	}

	data, err := g.readInput(file, cfg)
	if err != nil {
		return nil, err
	}

	s := session.New(
		session.WithBlank(cfg.BlankRune()),
		session.WithCountMode(cfg.Mode()),
		session.WithGearGlyph(cfg.GearRune()),
	)
	s.SetInput(string(data))
	return s, nil
}

func (g *Globals) tokenize(file string) (*types.Board, config.Config, error) {
	cfg, err := g.settings()
	if err != nil {
		return nil, cfg, err
	}

	data, err := g.readInput(file, cfg)
	if err != nil {
		return nil, cfg, err
	}

	board, err := grid.NewGridTokenizer(data, grid.WithBlank(cfg.BlankRune())).Tokenize()
	if err != nil {
		return nil, cfg, err
	}

	g.logger.Debug("board tokenized", "rows", board.Rows, "numbers", len(board.Numbers), "symbols", len(board.Symbols))
	return board, cfg, nil
}

func (g *Globals) flushLog(s *session.Session) {
	if g.Trace {
		fmt.Fprint(g.errOut, s.Log())
	}
}

/////////////////////////////////////////////////////////////////////////////
// Commands
/////////////////////////////////////////////////////////////////////////////

type SolveCmd struct {
	InputArg `embed:""`
}

func (c *SolveCmd) Run(g *Globals) error {
	s, err := g.newSession(c.File)
	if err != nil {
		return err
	}
	defer g.flushLog(s)

	if err := s.ProcessPart1(); err != nil {
		return err
	}
	if err := s.ProcessPart2(); err != nil {
		return err
	}

	part1, _ := s.Part1Answer()
	part2, _ := s.Part2Answer()
	fmt.Fprintf(g.out, "Part 1: %d\n", part1)
	fmt.Fprintf(g.out, "Part 2: %d\n", part2)
	return nil
}

type Part1Cmd struct {
	InputArg `embed:""`
}

func (c *Part1Cmd) Run(g *Globals) error {
	s, err := g.newSession(c.File)
	if err != nil {
		return err
	}
	defer g.flushLog(s)

	if err := s.ProcessPart1(); err != nil {
		return err
	}

	answer, _ := s.Part1Answer()
	fmt.Fprintf(g.out, "Part 1: %d\n", answer)
	return nil
}

type Part2Cmd struct {
	InputArg `embed:""`
}

func (c *Part2Cmd) Run(g *Globals) error {
	s, err := g.newSession(c.File)
	if err != nil {
		return err
	}
	defer g.flushLog(s)

	if err := s.ProcessPart2(); err != nil {
		return err
	}

	answer, _ := s.Part2Answer()
	fmt.Fprintf(g.out, "Part 2: %d\n", answer)
	return nil
}

type TokensCmd struct {
	InputArg `embed:""`
	Format   string `help:"Output format: table, json, yaml." short:"f"`
}

func (c *TokensCmd) Run(g *Globals) error {
	board, cfg, err := g.tokenize(c.File)
	if err != nil {
		return err
	}

	cfg = cfg.Merge(config.Config{Format: c.Format})
	if err := cfg.Validate(); err != nil {
		return err
	}

	partSum, _ := processor.SumPartNumbers(board, cfg.Mode(), nil)
	gearSum, _ := processor.SumGearRatios(board, processor.GearOptions{Glyph: cfg.GearRune()}, nil)
	report := exporter.NewReport(board, &partSum, &gearSum)

	switch cfg.Format {
	case "json":
		return exporter.ExportJSON(report, g.out)
	case "yaml":
		return exporter.ExportYAML(report, g.out)
	default:
		fmt.Fprintf(g.out, "=== Grid: %d rows x %d cols ===\n", board.Rows, board.Width)
		return exporter.ExportTokensToTable(report.Tokens, g.out)
	}
}

type StatsCmd struct {
	InputArg `embed:""`
}

func (c *StatsCmd) Run(g *Globals) error {
	board, _, err := g.tokenize(c.File)
	if err != nil {
		return err
	}

	exporter.DisplayStats(board.Stats(), g.out)
	return nil
}

type HighlightCmd struct {
	InputArg `embed:""`
	NoColor  bool `help:"Disable ANSI colors."`
}

func (c *HighlightCmd) Run(g *Globals) error {
	board, cfg, err := g.tokenize(c.File)
	if err != nil {
		return err
	}

	parts := processor.PartNumbers(board)
	gears := processor.Gears(board, processor.GearOptions{Glyph: cfg.GearRune()})

	text, err := exporter.ExportHighlighted(board, parts, gears, cfg.BlankRune(), cfg.UseColor() && !c.NoColor)
	if err != nil {
		return fmt.Errorf("error displaying highlighted grid: %w", err)
	}

	fmt.Fprint(g.out, text)
	return nil
}
