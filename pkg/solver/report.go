package solver

import (
	"encoding/json"
	"fmt"
	"io"
)

// StepReport is the JSON-serializable view of a single Step, grounded in
// the teacher's GenerationReport shape (pkg/engine/output.go): a flat
// struct of display strings rather than the live expression tree.
type StepReport struct {
	Before string `json:"before"`
	After  string `json:"after"`
	Kind   string `json:"kind"`
}

// Report converts a trace to its serializable form.
func Report(trace []Step) []StepReport {
	reports := make([]StepReport, len(trace))
	for i, s := range trace {
		reports[i] = StepReport{Before: s.Before.String(), After: s.After.String(), Kind: s.Kind.String()}
	}
	return reports
}

// WriteTextTrace writes one line per step in human-readable form,
// following the teacher's WriteTextReport convention of one fmt.Fprintf
// call per record (pkg/engine/output.go).
func WriteTextTrace(w io.Writer, trace []Step) {
	for i, s := range trace {
		fmt.Fprintf(w, "%2d. %-24s %s -> %s\n", i+1, s.Kind.String(), s.Before.String(), s.After.String())
	}
}

// WriteJSONTrace writes the trace as an indented JSON array, following
// the teacher's WriteJSONFinal convention (pkg/engine/output.go).
func WriteJSONTrace(w io.Writer, trace []Step) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Report(trace))
}
