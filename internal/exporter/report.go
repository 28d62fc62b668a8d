package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/badele/gridscan/internal/types"
)

// Report is the serialized view of a board and its answers.
type Report struct {
	Tokens        []types.Token    `json:"tokens" yaml:"tokens"`
	Stats         types.BoardStats `json:"stats" yaml:"stats"`
	PartNumberSum *int             `json:"part_number_sum,omitempty" yaml:"part_number_sum,omitempty"`
	GearRatioSum  *int             `json:"gear_ratio_sum,omitempty" yaml:"gear_ratio_sum,omitempty"`
}

// NewReport builds a report; nil sums are left out of the output.
func NewReport(board *types.Board, partNumberSum, gearRatioSum *int) Report {
	return Report{
		Tokens:        board.Tokens(),
		Stats:         board.Stats(),
		PartNumberSum: partNumberSum,
		GearRatioSum:  gearRatioSum,
	}
}

func ExportJSON(report Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}

func ExportYAML(report Report, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("YAML serialization error: %w", err)
	}
	return encoder.Close()
}
