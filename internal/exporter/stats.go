package exporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/badele/gridscan/internal/types"
)

func DisplayStats(stats types.BoardStats, writer io.Writer) {
	fmt.Fprintf(writer, "=== Board Statistics ===\n\n")
	fmt.Fprintf(writer, "  Grid size: %d rows x %d cols\n", stats.Rows, stats.Width)
	fmt.Fprintf(writer, "  Numbers: %d (%d digits)\n", stats.TotalNumbers, stats.TotalDigits)
	fmt.Fprintf(writer, "  Symbols: %d\n", stats.TotalSymbols)

	if len(stats.SymbolsByGlyph) > 0 {
		fmt.Fprintf(writer, "\n--- Most Used Symbols\n")
		displayTopN(writer, stats.SymbolsByGlyph, stats.TotalSymbols, 10)
	}
}

func displayTopN(writer io.Writer, data map[string]int, total, n int) {
	type entry struct {
		Key   string
		Count int
	}

	var entries []entry
	for k, v := range data {
		entries = append(entries, entry{k, v})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})

	for i, e := range entries {
		if i >= n {
			break
		}
		percentage := float64(e.Count) / float64(total) * 100
		fmt.Fprintf(writer, "  %-6q:  %5d (%.1f%%)\n", e.Key, e.Count, percentage)
	}
}
