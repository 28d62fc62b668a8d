package exporter

import (
	"fmt"
	"io"

	"github.com/badele/gridscan/internal/types"
)

func ExportTokensToTable(tokens []types.Token, writer io.Writer) error {
	fmt.Fprintln(writer, "┌─────────┬──────────────┬────────┬───────────┬──────────────────────┐")
	fmt.Fprintf(writer, "│ %-7s │ %-12s │ %-6s │ %-9s │ %-20s │\n", "Token", "Type", "Row", "Cols", "Raw")
	fmt.Fprintln(writer, "├─────────┼──────────────┼────────┼───────────┼──────────────────────┤")

	for i, token := range tokens {
		var kind, cols string

		switch token.Type {
		case types.TokenNumber:
			kind = "NUMBER"
			cols = fmt.Sprintf("%d-%d", token.Col, token.ColEnd)
		case types.TokenSymbol:
			kind = "SYMBOL"
			cols = fmt.Sprintf("%d", token.Col)
		default:
			kind = "UNKNOWN"
			cols = "-"
		}

		fmt.Fprintf(writer, "│ %-7d │ %-12s │ %-6d │ %-9s │ %-20s │\n",
			i+1, kind, token.Row, cols, truncate(token.Raw, 20))
	}

	_, err := fmt.Fprintln(writer, "└─────────┴──────────────┴────────┴───────────┴──────────────────────┘")
	return err
}

func truncate(s string, maxLen int) string {
	s = fmt.Sprintf("%q", s)

	// Remove quote added by %q
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
