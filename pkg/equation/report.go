package equation

import (
	"encoding/json"
	"fmt"
	"io"
)

// StepReport is the JSON-serializable view of an EquationStep, mirroring
// solver.StepReport's flat display-string shape.
type StepReport struct {
	Before string `json:"before"`
	After  string `json:"after"`
	Kind   string `json:"kind"`
}

// Report converts a trace to its serializable form.
func Report(trace []EquationStep) []StepReport {
	reports := make([]StepReport, len(trace))
	for i, s := range trace {
		reports[i] = StepReport{Before: s.Before.String(), After: s.After.String(), Kind: s.Kind}
	}
	return reports
}

// WriteTextTrace writes one line per step in human-readable form, following
// solver.WriteTextTrace's convention.
func WriteTextTrace(w io.Writer, trace []EquationStep) {
	for i, s := range trace {
		fmt.Fprintf(w, "%2d. %-24s %s -> %s\n", i+1, s.Kind, s.Before.String(), s.After.String())
	}
}

// WriteJSONTrace writes the trace as an indented JSON array, following
// solver.WriteJSONTrace's convention.
func WriteJSONTrace(w io.Writer, trace []EquationStep) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Report(trace))
}
