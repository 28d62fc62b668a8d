package trace

import (
	"fmt"
	"reflect"
	"testing"
)

func TestPrintfAppendsLines(t *testing.T) {
	tr := New()
	tr.Printf("row %d", 0)
	tr.Printf("number %d", 467)

	expected := []string{"row 0", "number 467"}
	if got := tr.Lines(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("Expected %v, got %v", expected, got)
	}

	if tr.String() != "row 0\nnumber 467\n" {
		t.Errorf("Unexpected buffer %q", tr.String())
	}
}

func TestNilTraceIsNoop(t *testing.T) {
	var tr *Trace
	tr.Printf("ignored %d", 1)
	fmt.Fprintf(tr, "also ignored")

	if tr.String() != "" || tr.Len() != 0 || tr.Lines() != nil {
		t.Fatalf("Expected nil trace to stay empty")
	}
}

func TestWriteImplementsWriter(t *testing.T) {
	tr := New()
	fmt.Fprintf(tr, "a\nb\n")

	if got := tr.Lines(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Expected [a b], got %v", got)
	}
}
